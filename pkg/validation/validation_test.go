package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	require.NoError(t, Email("alice@example.com"))
	require.NoError(t, Email("a.b+tag@sub.example.org"))

	require.ErrorIs(t, Email(""), ErrEmailRequired)
	require.ErrorIs(t, Email("not-an-email"), ErrEmailMalformed)
	require.ErrorIs(t, Email("missing@"), ErrEmailMalformed)
	require.ErrorIs(t, Email(strings.Repeat("a", 250)+"@x.co"), ErrEmailTooLong)
}

func TestName(t *testing.T) {
	t.Parallel()

	require.NoError(t, Name("Alice"))
	require.NoError(t, Name("  Bo  ")) // trimmed before length check

	require.ErrorIs(t, Name(""), ErrNameRequired)
	require.ErrorIs(t, Name("   "), ErrNameRequired)
	require.ErrorIs(t, Name("A"), ErrNameLength)
	require.ErrorIs(t, Name(strings.Repeat("a", 51)), ErrNameLength)
}

func TestPassword(t *testing.T) {
	t.Parallel()

	require.NoError(t, Password("tr0ub4dor&3horse"))
	require.NoError(t, Password("My-Str0ng-Pass"))

	require.ErrorIs(t, Password("short"), ErrPasswordTooShort)
	require.ErrorIs(t, Password(strings.Repeat("Xy9!", 40)), ErrPasswordTooLong)
	require.ErrorIs(t, Password("aaaaaaaa"), ErrPasswordWeak)
	require.ErrorIs(t, Password("111111"), ErrPasswordWeak)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/certmint/certmint/internal/api/domain"
	"github.com/certmint/certmint/internal/api/store"
	"github.com/certmint/certmint/pkg/cryptox"
	"github.com/certmint/certmint/pkg/idx"
	"github.com/certmint/certmint/pkg/jwtx"
	"github.com/certmint/certmint/pkg/slogx"
	"github.com/certmint/certmint/pkg/validation"
)

var (
	ErrAccountExists         = errors.New("an account with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailNotVerified      = errors.New("email address has not been verified")
	ErrTokenRequired         = errors.New("token is required")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrAlreadyVerified       = errors.New("email is already verified")
	ErrUserNotFound          = errors.New("user not found")
)

// Mailer dispatches account emails. Implementations must not block the
// calling flow on provider errors; failures are logged by the caller and
// never surfaced to the client.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendPasswordResetEmail(ctx context.Context, to, name, token string) error
}

type AuthService struct {
	Store  store.Store
	Tokens *jwtx.HS256
	Mailer Mailer

	// RequireVerifiedEmail gates login on a verified address when set.
	// Off by default so freshly registered users can sign in immediately.
	RequireVerifiedEmail bool

	// Zero values fall back to the jwtx defaults.
	SessionTTL       time.Duration
	EmailVerifyTTL   time.Duration
	PasswordResetTTL time.Duration
}

// normalizeEmail is applied before every lookup and insert so the unique
// index sees one canonical form per address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new unverified student account and dispatches the
// verification email.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input shape.
	email = normalizeEmail(email)
	if err := validation.Email(email); err != nil {
		return domain.User{}, err
	}
	if err := validation.Name(name); err != nil {
		return domain.User{}, err
	}
	if err := validation.Password(password); err != nil {
		return domain.User{}, err
	}

	// 2. Advisory existence check. The unique index is the real guard; this
	// just gives the common case a clean error without burning a ULID.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("registration attempted with existing email")
		return domain.User{}, ErrAccountExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Create the user. A concurrent registration of the same address
	// loses here on the unique index, not on the check above.
	now := time.Now().UTC()
	user := domain.User{
		ID:            idx.New().String(),
		Email:         email,
		Name:          strings.TrimSpace(name),
		PasswordHash:  &passwordHash,
		Role:          domain.RoleStudent,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration lost race on unique email index")
			return domain.User{}, ErrAccountExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 5. Issue the verification token and dispatch the email. A mail
	// provider outage must not fail the registration.
	token, err := s.Tokens.SignFor(user.ID, "", s.emailVerifyTTL())
	if err != nil {
		log.Error("failed to sign verification token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	if err := s.Mailer.SendVerificationEmail(ctx, user.Email, user.Name, token); err != nil {
		log.Error("failed to send verification email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// VerifyEmail redeems a verification token and marks the account verified.
// Verification happens exactly once; replays of a still-valid token are
// rejected.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if token == "" {
		return ErrTokenRequired
	}

	// 2. Verify the token. The real reason stays in the logs; the caller
	// only ever learns "invalid or expired".
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		log.Warn("email verification attempted with bad token", slog.Any("error", err))
		return ErrInvalidOrExpiredToken
	}

	// 3. Flip the flag in a transaction so the read-check-update is atomic.
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("email verification for unknown user",
					slog.String("user_id", claims.Subject),
				)
				return ErrUserNotFound
			}
			log.Error("failed to fetch user", slog.Any("error", err))
			return err
		}

		if user.EmailVerified {
			log.Warn("email verification replayed",
				slog.String("user_id", user.ID),
			)
			return ErrAlreadyVerified
		}

		if err := tx.Users().SetEmailVerified(ctx, user.ID, true); err != nil {
			log.Error("failed to mark email verified",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
			return err
		}

		log.Info("email verified", slog.String("user_id", user.ID))
		return nil
	})
}

// Login authenticates an email/password pair and mints a session token.
// Unknown email, wallet-only account and wrong password all collapse into
// ErrInvalidCredentials so responses never reveal which one happened.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}

	// 2. Look up the account.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown email")
			return "", domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", domain.User{}, err
	}

	// 3. Wallet-provisioned accounts have no password to check.
	if !user.HasPassword() {
		log.Warn("password login attempted on wallet-only account",
			slog.String("user_id", user.ID),
		)
		return "", domain.User{}, ErrInvalidCredentials
	}

	// 4. Verify the password.
	if err := cryptox.VerifyPassword(password, *user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempted with wrong password",
				slog.String("user_id", user.ID),
			)
			return "", domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return "", domain.User{}, err
	}

	// 5. Optional verified-email gate.
	if s.RequireVerifiedEmail && !user.EmailVerified {
		log.Warn("login blocked pending email verification",
			slog.String("user_id", user.ID),
		)
		return "", domain.User{}, ErrEmailNotVerified
	}

	// 6. Mint the session token carrying the user's role.
	token, err := s.Tokens.SignFor(user.ID, string(user.Role), s.sessionTTL())
	if err != nil {
		log.Error("failed to sign session token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return "", domain.User{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return token, user, nil
}

// ForgotPassword starts the reset flow. The outcome is identical whether or
// not the address exists; only the logs know the difference.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input shape. A malformed address is a client bug, not an
	// enumeration signal.
	email = normalizeEmail(email)
	if err := validation.Email(email); err != nil {
		return err
	}

	// 2. Look up the account. Unknown addresses succeed silently.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 3. Issue the reset token and dispatch the email.
	token, err := s.Tokens.SignFor(user.ID, "", s.passwordResetTTL())
	if err != nil {
		log.Error("failed to sign reset token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.Mailer.SendPasswordResetEmail(ctx, user.Email, user.Name, token); err != nil {
		log.Error("failed to send reset email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	log.Info("password reset requested", slog.String("user_id", user.ID))
	return nil
}

// ResetPassword redeems a reset token and replaces the stored hash. Tokens
// minted before the reset remain valid until they expire.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if token == "" {
		return ErrTokenRequired
	}
	if err := validation.Password(newPassword); err != nil {
		return err
	}

	// 2. Verify the token, collapsing failures for the caller.
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		log.Warn("password reset attempted with bad token", slog.Any("error", err))
		return ErrInvalidOrExpiredToken
	}

	// 3. Confirm the account still exists.
	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset for unknown user",
				slog.String("user_id", claims.Subject),
			)
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 4. Hash with a fresh salt and persist.
	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		log.Error("failed to update password hash",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset completed", slog.String("user_id", user.ID))
	return nil
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *AuthService) emailVerifyTTL() time.Duration {
	if s.EmailVerifyTTL > 0 {
		return s.EmailVerifyTTL
	}
	return jwtx.DefaultEmailVerifyTTL
}

func (s *AuthService) passwordResetTTL() time.Duration {
	if s.PasswordResetTTL > 0 {
		return s.PasswordResetTTL
	}
	return jwtx.DefaultPasswordResetTTL
}

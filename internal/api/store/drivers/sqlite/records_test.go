package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/certmint/certmint/internal/api/domain"
	"github.com/certmint/certmint/internal/api/store"
	"github.com/certmint/certmint/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestQuizRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	author := newTestUser("author@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, author))

	quiz := domain.Quiz{
		ID:           idx.New().String(),
		Title:        "Go Fundamentals",
		Description:  "Slices, maps and goroutines",
		CreatedBy:    author.ID,
		Duration:     30 * time.Minute,
		PassingScore: 70,
		Published:    true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Quizzes().CreateQuiz(ctx, quiz))

	got, err := st.Quizzes().GetQuizByID(ctx, quiz.ID)
	require.NoError(t, err)
	require.Equal(t, quiz.Title, got.Title)
	require.Equal(t, 30*time.Minute, got.Duration)
	require.True(t, got.Published)

	published, err := st.Quizzes().ListPublishedQuizzes(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)

	_, err = st.Quizzes().GetQuizByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuestionOptionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	author := newTestUser("quizauthor@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, author))

	quiz := domain.Quiz{
		ID:        idx.New().String(),
		Title:     "Networking",
		CreatedBy: author.ID,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Quizzes().CreateQuiz(ctx, quiz))

	question := domain.Question{
		ID:     idx.New().String(),
		QuizID: quiz.ID,
		Text:   "Which protocol is connection oriented?",
		Type:   domain.QuestionMultipleChoice,
		Options: []domain.Option{
			{Text: "TCP", IsCorrect: true},
			{Text: "UDP", IsCorrect: false},
		},
		Marks: 2,
	}
	require.NoError(t, st.Quizzes().CreateQuestion(ctx, question))

	questions, err := st.Quizzes().ListQuestionsByQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Len(t, questions[0].Options, 2)
	require.Equal(t, "TCP", questions[0].Options[0].Text)
	require.True(t, questions[0].Options[0].IsCorrect)
}

func TestSubmissionAndCertificateRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	student := newTestUser("student@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, student))

	quiz := domain.Quiz{
		ID:        idx.New().String(),
		Title:     "Certification Quiz",
		CreatedBy: student.ID,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Quizzes().CreateQuiz(ctx, quiz))

	sub := domain.Submission{
		ID:        idx.New().String(),
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Answers: []domain.Answer{
			{QuestionID: idx.New().String(), Response: json.RawMessage(`"TCP"`), IsCorrect: true, MarksAwarded: 2},
		},
		Score:       2,
		Percentage:  100,
		Passed:      true,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Submissions().CreateSubmission(ctx, sub))

	got, err := st.Submissions().GetSubmissionByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Nil(t, got.CertificateID)
	require.Len(t, got.Answers, 1)
	require.True(t, got.Passed)

	cert := domain.Certificate{
		ID:           idx.New().String(),
		StudentID:    student.ID,
		SubmissionID: sub.ID,
		MetadataURI:  "ipfs://bafy.../metadata.json",
		TokenID:      42,
		TxHash:       "0xdeadbeef",
		IssuedAt:     time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Certificates().CreateCertificate(ctx, cert))
	require.NoError(t, st.Submissions().LinkCertificate(ctx, sub.ID, cert.ID))

	got, err = st.Submissions().GetSubmissionByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CertificateID)
	require.Equal(t, cert.ID, *got.CertificateID)

	byStudent, err := st.Certificates().ListCertificatesByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	require.Equal(t, int64(42), byStudent[0].TokenID)

	subs, err := st.Submissions().ListSubmissionsByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
}

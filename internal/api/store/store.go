package store

import (
	"context"
	"errors"

	"github.com/certmint/certmint/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Quizzes() Quizzes
	Submissions() Submissions
	Certificates() Certificates

	ApplyMigrations() error

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back; otherwise it
	// is committed. Use it for multi-step operations that must be atomic
	// (e.g. read-check-update of the verified flag).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped view of the store.
type Tx interface {
	Users() Users
	Quizzes() Quizzes
	Submissions() Submissions
	Certificates() Certificates
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// The email unique index is the real duplicate guard; violations come
	// back as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// SetEmailVerified flips the verified flag and bumps updated_at.
	SetEmailVerified(ctx context.Context, userID string, verified bool) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// ListUsers returns all users ordered by creation date (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Quizzes interface {
	// CreateQuiz inserts a new quiz.
	CreateQuiz(ctx context.Context, q domain.Quiz) error

	// GetQuizByID returns a quiz by id.
	GetQuizByID(ctx context.Context, id string) (domain.Quiz, error)

	// ListPublishedQuizzes returns published quizzes, newest first.
	ListPublishedQuizzes(ctx context.Context) ([]domain.Quiz, error)

	// CreateQuestion inserts a question belonging to a quiz.
	CreateQuestion(ctx context.Context, q domain.Question) error

	// ListQuestionsByQuiz returns the questions of a quiz in insertion order.
	ListQuestionsByQuiz(ctx context.Context, quizID string) ([]domain.Question, error)
}

type Submissions interface {
	// CreateSubmission inserts a graded attempt record.
	CreateSubmission(ctx context.Context, s domain.Submission) error

	// GetSubmissionByID returns a submission by id.
	GetSubmissionByID(ctx context.Context, id string) (domain.Submission, error)

	// ListSubmissionsByStudent returns a student's attempts, newest first.
	ListSubmissionsByStudent(ctx context.Context, studentID string) ([]domain.Submission, error)

	// LinkCertificate sets the certificate id on a submission.
	LinkCertificate(ctx context.Context, submissionID, certificateID string) error
}

type Certificates interface {
	// CreateCertificate inserts a minted credential record.
	CreateCertificate(ctx context.Context, c domain.Certificate) error

	// GetCertificateByID returns a certificate by id.
	GetCertificateByID(ctx context.Context, id string) (domain.Certificate, error)

	// ListCertificatesByStudent returns a student's credentials, newest first.
	ListCertificatesByStudent(ctx context.Context, studentID string) ([]domain.Certificate, error)
}

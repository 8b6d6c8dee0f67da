package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/certmint/certmint/internal/api/domain"
)

type submissionsRepo struct {
	db DBTX
}

const submissionColumns = `id, quiz_id, student_id, answers, score, percentage, passed, certificate_id, submitted_at`

func (r *submissionsRepo) CreateSubmission(ctx context.Context, s domain.Submission) error {
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return fmt.Errorf("sqlite: marshal submission answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO submissions (`+submissionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.QuizID,
		s.StudentID,
		string(answers),
		s.Score,
		s.Percentage,
		s.Passed,
		mapOptionalString(s.CertificateID),
		s.SubmittedAt,
	)
	return mapConstraint(err)
}

func (r *submissionsRepo) GetSubmissionByID(ctx context.Context, id string) (domain.Submission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)

	s, err := scanSubmission(row)
	if err != nil {
		return domain.Submission{}, mapNotFound(err)
	}
	return s, nil
}

func (r *submissionsRepo) ListSubmissionsByStudent(ctx context.Context, studentID string) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions
		 WHERE student_id = ? ORDER BY submitted_at DESC, id DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (r *submissionsRepo) LinkCertificate(ctx context.Context, submissionID, certificateID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE submissions SET certificate_id = ? WHERE id = ?`,
		certificateID, submissionID)
	return err
}

func scanSubmission(row interface{ Scan(...any) error }) (domain.Submission, error) {
	var (
		s             domain.Submission
		rawAnswers    string
		certificateID sql.NullString
	)
	err := row.Scan(
		&s.ID,
		&s.QuizID,
		&s.StudentID,
		&rawAnswers,
		&s.Score,
		&s.Percentage,
		&s.Passed,
		&certificateID,
		&s.SubmittedAt,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	if err := json.Unmarshal([]byte(rawAnswers), &s.Answers); err != nil {
		return domain.Submission{}, fmt.Errorf("sqlite: unmarshal submission answers: %w", err)
	}
	s.CertificateID = mapNullString(certificateID)
	return s, nil
}

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/certmint/certmint/internal/api/domain"
)

type quizzesRepo struct {
	db DBTX
}

func (r *quizzesRepo) CreateQuiz(ctx context.Context, q domain.Quiz) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, description, created_by, duration_secs, passing_score, published, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID,
		q.Title,
		q.Description,
		q.CreatedBy,
		int64(q.Duration.Seconds()),
		q.PassingScore,
		q.Published,
		q.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *quizzesRepo) GetQuizByID(ctx context.Context, id string) (domain.Quiz, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, created_by, duration_secs, passing_score, published, created_at
		 FROM quizzes WHERE id = ?`, id)

	q, err := scanQuiz(row)
	if err != nil {
		return domain.Quiz{}, mapNotFound(err)
	}
	return q, nil
}

func (r *quizzesRepo) ListPublishedQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, created_by, duration_secs, passing_score, published, created_at
		 FROM quizzes WHERE published = 1 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (r *quizzesRepo) CreateQuestion(ctx context.Context, q domain.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("sqlite: marshal question options: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO questions (id, quiz_id, text, type, options, marks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID,
		q.QuizID,
		q.Text,
		string(q.Type),
		string(options),
		q.Marks,
	)
	return mapConstraint(err)
}

func (r *quizzesRepo) ListQuestionsByQuiz(ctx context.Context, quizID string) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, quiz_id, text, type, options, marks
		 FROM questions WHERE quiz_id = ? ORDER BY id`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			q          domain.Question
			qType      string
			rawOptions string
		)
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Text, &qType, &rawOptions, &q.Marks); err != nil {
			return nil, err
		}
		q.Type = domain.QuestionType(qType)
		if err := json.Unmarshal([]byte(rawOptions), &q.Options); err != nil {
			return nil, fmt.Errorf("sqlite: unmarshal question options: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func scanQuiz(row interface{ Scan(...any) error }) (domain.Quiz, error) {
	var (
		q            domain.Quiz
		durationSecs int64
		createdAt    time.Time
	)
	err := row.Scan(
		&q.ID,
		&q.Title,
		&q.Description,
		&q.CreatedBy,
		&durationSecs,
		&q.PassingScore,
		&q.Published,
		&createdAt,
	)
	if err != nil {
		return domain.Quiz{}, err
	}
	q.Duration = time.Duration(durationSecs) * time.Second
	q.CreatedAt = createdAt
	return q, nil
}

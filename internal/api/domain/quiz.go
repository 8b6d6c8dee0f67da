package domain

import "time"

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionShortAnswer    QuestionType = "short-answer"
)

// Quiz is an assessment authored by an instructor. Questions are linked by
// quiz id, not embedded.
type Quiz struct {
	ID           string
	Title        string
	Description  string
	CreatedBy    string // user id of the authoring instructor
	Duration     time.Duration
	PassingScore int
	Published    bool
	CreatedAt    time.Time
}

// Option is one selectable answer of a multiple-choice question.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question belongs to a quiz. Options are only meaningful for
// multiple-choice and true-false questions.
type Question struct {
	ID      string
	QuizID  string
	Text    string
	Type    QuestionType
	Options []Option
	Marks   int
}

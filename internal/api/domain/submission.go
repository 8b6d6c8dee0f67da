package domain

import (
	"encoding/json"
	"time"
)

// Answer is a student's response to a single question, with the grading
// outcome once graded. Response is free-form: a selected option index, a
// boolean, or short-answer text.
type Answer struct {
	QuestionID   string          `json:"question"`
	Response     json.RawMessage `json:"response"`
	IsCorrect    bool            `json:"isCorrect"`
	MarksAwarded int             `json:"marksAwarded"`
}

// Submission records one attempt of a quiz by a student. CertificateID is
// set once a credential has been issued for a passing attempt.
type Submission struct {
	ID            string
	QuizID        string
	StudentID     string
	Answers       []Answer
	Score         int
	Percentage    float64
	Passed        bool
	CertificateID *string
	SubmittedAt   time.Time
}

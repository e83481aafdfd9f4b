package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionFillBlank      QuestionKind = "fill_blank"
	QuestionTranslation    QuestionKind = "translation"
	QuestionConversation   QuestionKind = "conversation"
	QuestionGrammar        QuestionKind = "grammar"
)

type QuizQuestion struct {
	ID            string       `json:"id" validate:"required"`
	Kind          QuestionKind `json:"kind" validate:"required"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Points        int          `json:"points" validate:"min=0"`
}

// QuizAnswer is one submitted answer, matched to a question by ID.
type QuizAnswer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

type QuizSubmission struct {
	QuizID     uuid.UUID      `json:"quiz_id"`
	Language   string         `json:"language" validate:"required"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
	Answers    []QuizAnswer   `json:"answers" validate:"dive"`
}

// GradedAnswer is the per-question grading outcome stored with the score.
type GradedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
	Points     int    `json:"points"`
}

type GradedAnswers []GradedAnswer

func (a GradedAnswers) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *GradedAnswers) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return fmt.Errorf("unsupported graded answers column type %T", src)
	}
}

// QuizScore is the append-only result of one completed quiz.
type QuizScore struct {
	ID             int64         `db:"id" json:"id"`
	UserID         string        `db:"user_id" json:"user_id"`
	QuizID         uuid.UUID     `db:"quiz_id" json:"quiz_id"`
	Language       string        `db:"language" json:"language"`
	Difficulty     string        `db:"difficulty" json:"difficulty"`
	Score          int           `db:"score" json:"score"`
	TotalQuestions int           `db:"total_questions" json:"total_questions"`
	CorrectAnswers int           `db:"correct_answers" json:"correct_answers"`
	Answers        GradedAnswers `db:"answers" json:"answers"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}

type QuizStats struct {
	Count      int     `db:"count" json:"count"`
	TotalScore int     `db:"total_score" json:"total_score"`
	AvgScore   float64 `db:"avg_score" json:"avg_score"`
}

package models

import "time"

type Flashcard struct {
	ID           int64      `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	SourceText   string     `db:"source_text" json:"source_text"`
	TargetText   string     `db:"target_text" json:"target_text"`
	SourceLang   string     `db:"source_lang" json:"source_lang"`
	TargetLang   string     `db:"target_lang" json:"target_lang"`
	Difficulty   string     `db:"difficulty" json:"difficulty"`
	Category     string     `db:"category" json:"category"`
	ReviewCount  int        `db:"review_count" json:"review_count"`
	MasteryLevel int        `db:"mastery_level" json:"mastery_level"`
	SuccessRate  float64    `db:"success_rate" json:"success_rate"`
	NextReview   time.Time  `db:"next_review" json:"next_review"`
	LastReview   *time.Time `db:"last_review" json:"last_review,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// FlashcardReview is an append-only record of one graded attempt.
type FlashcardReview struct {
	ID           int64     `db:"id" json:"id"`
	FlashcardID  int64     `db:"flashcard_id" json:"flashcard_id"`
	Correct      bool      `db:"correct" json:"correct"`
	TimeTakenSec int       `db:"time_taken_sec" json:"time_taken_sec"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type FlashcardStats struct {
	Total          int     `db:"total" json:"total"`
	DueForReview   int     `db:"due" json:"due_for_review"`
	Mastered       int     `db:"mastered" json:"mastered"`
	AvgSuccessRate float64 `db:"avg_success" json:"avg_success_rate"`
}

type CategoryStat struct {
	Category       string  `db:"category" json:"category"`
	Total          int     `db:"total" json:"total"`
	Mastered       int     `db:"mastered" json:"mastered"`
	AvgSuccessRate float64 `db:"avg_success" json:"avg_success_rate"`
}

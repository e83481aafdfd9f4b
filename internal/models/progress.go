package models

import "time"

// TimeRange selects the aggregation window for a progress summary.
type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

func (r TimeRange) Valid() bool {
	switch r {
	case RangeAll, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// Cutoff returns the inclusive lower bound for the range, or nil when
// the range covers all history.
func (r TimeRange) Cutoff(now time.Time) *time.Time {
	var days int
	switch r {
	case RangeWeek:
		days = 7
	case RangeMonth:
		days = 30
	default:
		return nil
	}
	t := now.AddDate(0, 0, -days)
	return &t
}

// DailyCount is one day of a grouped-by-date aggregate.
type DailyCount struct {
	Day   string `db:"day" json:"day"`
	Count int    `db:"n" json:"count"`
}

type DailyActivity struct {
	Date    string `json:"date"`
	Reviews int    `json:"reviews"`
	Quizzes int    `json:"quizzes"`
}

type XPBreakdown struct {
	Quiz        int `json:"quiz"`
	Flashcards  int `json:"flashcards"`
	Practice    int `json:"practice"`
	StreakBonus int `json:"streak_bonus"`
}

// ProgressSummary is the single consistent snapshot derived from stored
// review, quiz and practice history. It carries no state of its own.
type ProgressSummary struct {
	UserID        string          `json:"user_id"`
	Range         TimeRange       `json:"range"`
	Language      string          `json:"language,omitempty"`
	TotalXP       int             `json:"total_xp"`
	Level         int             `json:"level"`
	CurrentStreak int             `json:"current_streak"`
	XP            XPBreakdown     `json:"xp"`
	Flashcards    FlashcardStats  `json:"flashcards"`
	Categories    []CategoryStat  `json:"categories,omitempty"`
	Quizzes       QuizStats       `json:"quizzes"`
	Practice      PracticeStats   `json:"practice"`
	LastTopic     string          `json:"last_conversation_topic"`
	DailyActivity []DailyActivity `json:"daily_activity"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

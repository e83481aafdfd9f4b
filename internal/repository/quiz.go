package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{db: db}
}

func (q *QuizR) AddQuizScore(ctx context.Context, score models.QuizScore) error {
	query := `
		INSERT INTO quiz_scores (user_id, quiz_id, language, difficulty, score,
			total_questions, correct_answers, answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.db.ExecContext(ctx, query,
		score.UserID, score.QuizID, score.Language, score.Difficulty, score.Score,
		score.TotalQuestions, score.CorrectAnswers, score.Answers, score.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add quiz score: %w", err)
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context, userID, language string, since *time.Time) (models.QuizStats, error) {
	query := `
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(score), 0) AS total_score,
			COALESCE(AVG(score), 0) AS avg_score
		FROM quiz_scores
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3 = '' OR language = $3)
	`

	var stats models.QuizStats
	if err := q.db.GetContext(ctx, &stats, query, userID, since, language); err != nil {
		return models.QuizStats{}, fmt.Errorf("failed to get quiz stats: %w", err)
	}
	return stats, nil
}

// QuizDates returns the distinct UTC calendar dates with at least one
// completed quiz, formatted YYYY-MM-DD.
func (q *QuizR) QuizDates(ctx context.Context, userID string, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day
		FROM quiz_scores
		WHERE user_id = $1 AND created_at >= $2
	`

	var days []string
	if err := q.db.SelectContext(ctx, &days, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to get quiz dates: %w", err)
	}
	return days, nil
}

func (q *QuizR) DailyQuizzes(ctx context.Context, userID, language string, since time.Time) ([]models.DailyCount, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS n
		FROM quiz_scores
		WHERE user_id = $1 AND created_at >= $2
			AND ($3 = '' OR language = $3)
		GROUP BY day
		ORDER BY day
	`

	var counts []models.DailyCount
	if err := q.db.SelectContext(ctx, &counts, query, userID, since, language); err != nil {
		return nil, fmt.Errorf("failed to get daily quizzes: %w", err)
	}
	return counts, nil
}

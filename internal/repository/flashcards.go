package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adityar2309/ttsai-progress/internal/models"
	"github.com/adityar2309/ttsai-progress/internal/spacing"
)

const flashcardColumns = `id, user_id, source_text, target_text, source_lang, target_lang,
		difficulty, category, review_count, mastery_level, success_rate,
		next_review, last_review, created_at, updated_at`

type FlashcardsR struct {
	db DBI
}

func NewFlashcardsRepository(db DBI) *FlashcardsR {
	return &FlashcardsR{db: db}
}

func (f *FlashcardsR) CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error) {
	query := `
		INSERT INTO flashcards (user_id, source_text, target_text, source_lang, target_lang,
			difficulty, category, next_review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $8)
		RETURNING id
	`

	var id int64
	err := f.db.GetContext(ctx, &id, query,
		card.UserID, card.SourceText, card.TargetText, card.SourceLang, card.TargetLang,
		card.Difficulty, card.Category, card.NextReview, card.CreatedAt)
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to create flashcard: %w", err)
	}

	card.ID = id
	card.UpdatedAt = card.CreatedAt
	return card, nil
}

func (f *FlashcardsR) Flashcard(ctx context.Context, userID string, id int64) (models.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = $1 AND user_id = $2`

	var card models.Flashcard
	err := f.db.GetContext(ctx, &card, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flashcard{}, models.ErrNotFound
	}
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to get flashcard %d: %w", id, err)
	}
	return card, nil
}

func (f *FlashcardsR) DueFlashcards(ctx context.Context, userID string, now time.Time, limit int) ([]models.Flashcard, error) {
	query := `
		SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE user_id = $1 AND next_review <= $2
		ORDER BY next_review ASC
		LIMIT $3
	`

	cards := make([]models.Flashcard, 0, limit)
	if err := f.db.SelectContext(ctx, &cards, query, userID, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due flashcards: %w", err)
	}
	return cards, nil
}

// DeleteFlashcard purges the card's review history and the card itself
// in one transaction; reviews never outlive their card.
func (f *FlashcardsR) DeleteFlashcard(ctx context.Context, userID string, id int64) error {
	tx, err := f.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM flashcard_reviews WHERE flashcard_id = $1
			AND EXISTS (SELECT 1 FROM flashcards WHERE id = $1 AND user_id = $2)`,
		id, userID); err != nil {
		return fmt.Errorf("failed to purge reviews for flashcard %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM flashcards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete flashcard %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	return tx.Commit()
}

// RecordReview appends one graded review and reschedules the card in a
// single transaction. The row is locked for the read-modify-write so
// concurrent reviews of the same card serialize instead of losing
// updates.
func (f *FlashcardsR) RecordReview(ctx context.Context, userID string, id int64, correct bool, timeTakenSec int, now time.Time) (models.Flashcard, error) {
	tx, err := f.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to begin review tx: %w", err)
	}
	defer tx.Rollback()

	var card models.Flashcard
	err = tx.GetContext(ctx, &card,
		`SELECT `+flashcardColumns+` FROM flashcards WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flashcard{}, models.ErrNotFound
	}
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to lock flashcard %d: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO flashcard_reviews (flashcard_id, correct, time_taken_sec, created_at)
			VALUES ($1, $2, $3, $4)`,
		id, correct, timeTakenSec, now); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to insert review: %w", err)
	}

	var counts struct {
		Total   int `db:"total"`
		Correct int `db:"correct"`
	}
	err = tx.GetContext(ctx, &counts,
		`SELECT COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0) AS correct
		FROM flashcard_reviews WHERE flashcard_id = $1`, id)
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to count reviews: %w", err)
	}

	outcome := spacing.Next(card.MasteryLevel, correct)

	card.ReviewCount = counts.Total
	card.MasteryLevel = outcome.MasteryLevel
	card.SuccessRate = 0
	if counts.Total > 0 {
		card.SuccessRate = float64(counts.Correct) / float64(counts.Total)
	}
	card.NextReview = outcome.NextReviewAt(now)
	card.LastReview = &now
	card.UpdatedAt = now

	if _, err := tx.ExecContext(ctx,
		`UPDATE flashcards SET review_count = $1, mastery_level = $2, success_rate = $3,
			next_review = $4, last_review = $5, updated_at = $5
		WHERE id = $6`,
		card.ReviewCount, card.MasteryLevel, card.SuccessRate,
		card.NextReview, now, id); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to update flashcard %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to commit review tx: %w", err)
	}
	return card, nil
}

func (f *FlashcardsR) FlashcardStats(ctx context.Context, userID, language string, now time.Time) (models.FlashcardStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN next_review <= $2 THEN 1 ELSE 0 END), 0) AS due,
			COALESCE(SUM(CASE WHEN mastery_level >= 5 THEN 1 ELSE 0 END), 0) AS mastered,
			COALESCE(AVG(CASE WHEN review_count > 0 THEN success_rate END), 0) AS avg_success
		FROM flashcards
		WHERE user_id = $1 AND ($3 = '' OR target_lang = $3)
	`

	var stats models.FlashcardStats
	if err := f.db.GetContext(ctx, &stats, query, userID, now, language); err != nil {
		return models.FlashcardStats{}, fmt.Errorf("failed to get flashcard stats: %w", err)
	}
	return stats, nil
}

func (f *FlashcardsR) CategoryStats(ctx context.Context, userID, language string) ([]models.CategoryStat, error) {
	query := `
		SELECT
			category,
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN mastery_level >= 5 THEN 1 ELSE 0 END), 0) AS mastered,
			COALESCE(AVG(CASE WHEN review_count > 0 THEN success_rate END), 0) AS avg_success
		FROM flashcards
		WHERE user_id = $1 AND ($2 = '' OR target_lang = $2)
		GROUP BY category
		ORDER BY category
	`

	var stats []models.CategoryStat
	if err := f.db.SelectContext(ctx, &stats, query, userID, language); err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	return stats, nil
}

// ReviewXP sums per-review points (2 correct / 1 incorrect) plus the
// mastery bonus for correct reviews of cards whose current mastery is
// at least 1.
func (f *FlashcardsR) ReviewXP(ctx context.Context, userID, language string, since *time.Time) (int, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN r.correct THEN 2 ELSE 1 END), 0)
			+ COALESCE(SUM(CASE WHEN r.correct AND c.mastery_level >= 1 THEN c.mastery_level * 2 ELSE 0 END), 0)
		FROM flashcard_reviews r
		JOIN flashcards c ON c.id = r.flashcard_id
		WHERE c.user_id = $1
			AND ($2::timestamptz IS NULL OR r.created_at >= $2)
			AND ($3 = '' OR c.target_lang = $3)
	`

	var xp int
	if err := f.db.GetContext(ctx, &xp, query, userID, since, language); err != nil {
		return 0, fmt.Errorf("failed to sum review xp: %w", err)
	}
	return xp, nil
}

// ReviewDates returns the distinct UTC calendar dates with at least one
// review, formatted YYYY-MM-DD.
func (f *FlashcardsR) ReviewDates(ctx context.Context, userID string, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(r.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day
		FROM flashcard_reviews r
		JOIN flashcards c ON c.id = r.flashcard_id
		WHERE c.user_id = $1 AND r.created_at >= $2
	`

	var days []string
	if err := f.db.SelectContext(ctx, &days, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to get review dates: %w", err)
	}
	return days, nil
}

func (f *FlashcardsR) DailyReviews(ctx context.Context, userID, language string, since time.Time) ([]models.DailyCount, error) {
	query := `
		SELECT to_char(r.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS n
		FROM flashcard_reviews r
		JOIN flashcards c ON c.id = r.flashcard_id
		WHERE c.user_id = $1 AND r.created_at >= $2
			AND ($3 = '' OR c.target_lang = $3)
		GROUP BY day
		ORDER BY day
	`

	var counts []models.DailyCount
	if err := f.db.SelectContext(ctx, &counts, query, userID, since, language); err != nil {
		return nil, fmt.Errorf("failed to get daily reviews: %w", err)
	}
	return counts, nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

var flashcardCols = []string{
	"id", "user_id", "source_text", "target_text", "source_lang", "target_lang",
	"difficulty", "category", "review_count", "mastery_level", "success_rate",
	"next_review", "last_review", "created_at", "updated_at",
}

func newSQLMock(t *testing.T) (*FlashcardsR, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewFlashcardsRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func cardRow(now time.Time, mastery int) *sqlmock.Rows {
	return sqlmock.NewRows(flashcardCols).AddRow(
		int64(7), "user-1", "house", "la maison", "en", "fr",
		"beginner", "home", 2, mastery, 0.5,
		now, now.AddDate(0, 0, -1), now.AddDate(0, 0, -10), now.AddDate(0, 0, -1),
	)
}

func TestFlashcardsR_RecordReview(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("correct review advances mastery and schedules ahead", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM flashcards WHERE id = \\$1 AND user_id = \\$2 FOR UPDATE").
			WithArgs(int64(7), "user-1").
			WillReturnRows(cardRow(now, 2))
		mock.ExpectExec("INSERT INTO flashcard_reviews").
			WithArgs(int64(7), true, 4, now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"total", "correct"}).AddRow(3, 2))
		mock.ExpectExec("UPDATE flashcards SET").
			WithArgs(3, 3, 2.0/3.0, now.AddDate(0, 0, 14), now, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		card, err := repo.RecordReview(context.Background(), "user-1", 7, true, 4, now)
		require.NoError(t, err)

		assert.Equal(t, 3, card.MasteryLevel)
		assert.Equal(t, 3, card.ReviewCount)
		assert.InDelta(t, 2.0/3.0, card.SuccessRate, 1e-9)
		assert.Equal(t, now.AddDate(0, 0, 14), card.NextReview)
		require.NotNil(t, card.LastReview)
		assert.Equal(t, now, *card.LastReview)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incorrect review drops mastery and retries tomorrow", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FOR UPDATE").
			WithArgs(int64(7), "user-1").
			WillReturnRows(cardRow(now, 1))
		mock.ExpectExec("INSERT INTO flashcard_reviews").
			WithArgs(int64(7), false, 9, now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) AS total").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"total", "correct"}).AddRow(3, 1))
		mock.ExpectExec("UPDATE flashcards SET").
			WithArgs(3, 0, 1.0/3.0, now.AddDate(0, 0, 1), now, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		card, err := repo.RecordReview(context.Background(), "user-1", 7, false, 9, now)
		require.NoError(t, err)

		assert.Equal(t, 0, card.MasteryLevel)
		assert.Equal(t, now.AddDate(0, 0, 1), card.NextReview)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown card rolls back with not found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FOR UPDATE").
			WithArgs(int64(404), "user-1").
			WillReturnRows(sqlmock.NewRows(flashcardCols))
		mock.ExpectRollback()

		_, err := repo.RecordReview(context.Background(), "user-1", 404, true, 0, now)
		require.True(t, errors.Is(err, models.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed review insert rolls back the whole update", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FOR UPDATE").
			WithArgs(int64(7), "user-1").
			WillReturnRows(cardRow(now, 2))
		mock.ExpectExec("INSERT INTO flashcard_reviews").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.RecordReview(context.Background(), "user-1", 7, true, 4, now)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlashcardsR_DeleteFlashcard(t *testing.T) {
	t.Parallel()

	t.Run("purges reviews before the card", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM flashcard_reviews").
			WithArgs(int64(7), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM flashcards").
			WithArgs(int64(7), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteFlashcard(context.Background(), "user-1", 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown card is not found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM flashcard_reviews").
			WithArgs(int64(404), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM flashcards").
			WithArgs(int64(404), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteFlashcard(context.Background(), "user-1", 404)
		require.True(t, errors.Is(err, models.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlashcardsR_Flashcard_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newSQLMock(t)

	mock.ExpectQuery("SELECT (.+) FROM flashcards WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(404), "user-1").
		WillReturnRows(sqlmock.NewRows(flashcardCols))

	_, err := repo.Flashcard(context.Background(), "user-1", 404)
	require.True(t, errors.Is(err, models.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

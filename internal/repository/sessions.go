package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

type SessionsR struct {
	db QueryI
}

func NewSessionsRepository(db QueryI) *SessionsR {
	return &SessionsR{db: db}
}

func (s *SessionsR) AddSession(ctx context.Context, session models.PracticeSession) error {
	query := `
		INSERT INTO practice_sessions (id, user_id, kind, language, duration_sec,
			performance, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.Kind, session.Language,
		session.DurationSec, session.Performance, session.Payload, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add practice session: %w", err)
	}

	return nil
}

func (s *SessionsR) SessionStats(ctx context.Context, userID, language string, since *time.Time) (models.PracticeStats, error) {
	query := `
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN kind = 'avatar_conversation' THEN 1 ELSE 0 END), 0) AS conversations,
			COALESCE(AVG(duration_sec), 0) AS avg_duration
		FROM practice_sessions
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3 = '' OR language = $3)
	`

	var stats models.PracticeStats
	if err := s.db.GetContext(ctx, &stats, query, userID, since, language); err != nil {
		return models.PracticeStats{}, fmt.Errorf("failed to get session stats: %w", err)
	}
	return stats, nil
}

// LatestConversation returns the most recent conversation session for
// the user, or ErrNotFound when none exists.
func (s *SessionsR) LatestConversation(ctx context.Context, userID string) (models.PracticeSession, error) {
	query := `
		SELECT id, user_id, kind, language, duration_sec, performance, payload, created_at
		FROM practice_sessions
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var session models.PracticeSession
	err := s.db.GetContext(ctx, &session, query, userID, models.SessionKindConversation)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PracticeSession{}, models.ErrNotFound
	}
	if err != nil {
		return models.PracticeSession{}, fmt.Errorf("failed to get latest conversation: %w", err)
	}
	return session, nil
}

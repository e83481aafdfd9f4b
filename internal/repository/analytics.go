package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

type AnalyticsR struct {
	db QueryI
}

func NewAnalyticsRepository(db QueryI) *AnalyticsR {
	return &AnalyticsR{db: db}
}

func (a *AnalyticsR) AddEvent(ctx context.Context, event models.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (id, user_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := a.db.ExecContext(ctx, query,
		event.ID, event.UserID, event.EventType, event.Payload, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add analytics event: %w", err)
	}

	return nil
}

// ActivityDates returns the distinct UTC calendar dates on which the
// user produced at least one event of the given types, formatted
// YYYY-MM-DD.
func (a *AnalyticsR) ActivityDates(ctx context.Context, userID string, eventTypes []string, since *time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day
		FROM analytics_events
		WHERE user_id = $1 AND event_type = ANY($2)
			AND ($3::timestamptz IS NULL OR created_at >= $3)
	`

	var days []string
	if err := a.db.SelectContext(ctx, &days, query, userID, pq.Array(eventTypes), since); err != nil {
		return nil, fmt.Errorf("failed to get activity dates: %w", err)
	}
	return days, nil
}

// ActiveUsers returns the users with any event since the given time.
func (a *AnalyticsR) ActiveUsers(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT user_id
		FROM analytics_events
		WHERE user_id <> '' AND created_at >= $1
	`

	var users []string
	if err := a.db.SelectContext(ctx, &users, query, since); err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	return users, nil
}

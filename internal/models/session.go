package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	SessionKindConversation = "avatar_conversation"

	// DefaultConversationTopic is reported when a conversation session
	// carries no topic in its payload.
	DefaultConversationTopic = "General conversation"
)

// SessionPayload is the structured per-kind payload of a practice session.
// All fields are optional; unknown producers may leave it empty.
type SessionPayload struct {
	Topic        string `json:"topic,omitempty"`
	AvatarID     string `json:"avatar_id,omitempty"`
	MessageCount int    `json:"message_count,omitempty"`
}

func (p SessionPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *SessionPayload) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = SessionPayload{}
		return nil
	default:
		return fmt.Errorf("unsupported session payload column type %T", src)
	}
}

// PracticeSession is an append-only record of one practice activity.
type PracticeSession struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"user_id"`
	Kind        string         `db:"kind" json:"kind"`
	Language    string         `db:"language" json:"language"`
	DurationSec int            `db:"duration_sec" json:"duration_sec"`
	Performance float64        `db:"performance" json:"performance"`
	Payload     SessionPayload `db:"payload" json:"payload"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// Topic returns the conversation topic from the payload, or the
// generic label when the producer did not record one.
func (s PracticeSession) Topic() string {
	if s.Payload.Topic != "" {
		return s.Payload.Topic
	}
	return DefaultConversationTopic
}

type PracticeStats struct {
	Count         int     `db:"count" json:"count"`
	Conversations int     `db:"conversations" json:"conversations"`
	AvgDuration   float64 `db:"avg_duration" json:"avg_duration_sec"`
}

// AnalyticsEvent is the append-only activity signal consumed by the
// streak calculation. UserID may be empty for anonymous events.
type AnalyticsEvent struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	UserID    string       `db:"user_id" json:"user_id"`
	EventType string       `db:"event_type" json:"event_type"`
	Payload   EventPayload `db:"payload" json:"payload"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// EventPayload is an opaque key/value blob attached to an event.
type EventPayload map[string]interface{}

func (p EventPayload) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(EventPayload{})
	}
	return json.Marshal(p)
}

func (p *EventPayload) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("unsupported event payload column type %T", src)
	}
}

// Event types that count as learning activity for streak purposes.
const (
	EventFlashcardReview      = "flashcard_review"
	EventQuizCompleted        = "quiz_completed"
	EventTranslationCompleted = "translation_completed"
	EventAvatarConversation   = "avatar_conversation"
)

// ActivityEventTypes is the set of event types the streak walk recognizes.
var ActivityEventTypes = []string{
	EventTranslationCompleted,
	EventFlashcardReview,
	EventAvatarConversation,
	EventQuizCompleted,
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

// PracticeS ingests practice-session records.
type PracticeS struct {
	store  SessionStoreI
	events AnalyticsStoreI
	cache  SummaryCacheI
	log    *zap.Logger
	now    func() time.Time
}

func NewPracticeService(store SessionStoreI, events AnalyticsStoreI, cache SummaryCacheI, log *zap.Logger) *PracticeS {
	return &PracticeS{
		store:  store,
		events: events,
		cache:  cache,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// AddSession appends one practice session. Conversation sessions also
// emit the avatar_conversation activity event.
func (s *PracticeS) AddSession(ctx context.Context, userID string, session models.PracticeSession) (models.PracticeSession, error) {
	if userID == "" || session.Kind == "" {
		return models.PracticeSession{}, fmt.Errorf("%w: user id and session kind are required", models.ErrValidation)
	}
	if session.DurationSec < 0 {
		session.DurationSec = 0
	}

	session.ID = uuid.New()
	session.UserID = userID
	session.CreatedAt = s.now()

	if err := s.store.AddSession(ctx, session); err != nil {
		return models.PracticeSession{}, err
	}

	if session.Kind == models.SessionKindConversation {
		event := models.AnalyticsEvent{
			ID:        uuid.New(),
			UserID:    userID,
			EventType: models.EventAvatarConversation,
			Payload: models.EventPayload{
				"session_id": session.ID.String(),
				"topic":      session.Topic(),
			},
			CreatedAt: session.CreatedAt,
		}
		if err := s.events.AddEvent(ctx, event); err != nil {
			s.log.Warn("failed to record conversation event",
				zap.String("user_id", userID), zap.Error(err))
		}
	}

	s.cache.InvalidateUser(userID)
	return session, nil
}

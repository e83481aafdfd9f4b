package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

// FlashcardsS owns the flashcard lifecycle and the review scheduling
// entry point.
type FlashcardsS struct {
	store  FlashcardStoreI
	events AnalyticsStoreI
	cache  SummaryCacheI
	log    *zap.Logger
	now    func() time.Time
}

func NewFlashcardsService(store FlashcardStoreI, events AnalyticsStoreI, cache SummaryCacheI, log *zap.Logger) *FlashcardsS {
	return &FlashcardsS{
		store:  store,
		events: events,
		cache:  cache,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateFlashcard saves a new card, due for review immediately.
func (s *FlashcardsS) CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error) {
	card.SourceText = strings.TrimSpace(card.SourceText)
	card.TargetText = strings.TrimSpace(card.TargetText)
	if card.UserID == "" || card.SourceText == "" || card.TargetText == "" {
		return models.Flashcard{}, fmt.Errorf("%w: user id and both text sides are required", models.ErrValidation)
	}

	now := s.now()
	card.ReviewCount = 0
	card.MasteryLevel = 0
	card.SuccessRate = 0
	card.NextReview = now
	card.LastReview = nil
	card.CreatedAt = now
	card.UpdatedAt = now

	created, err := s.store.CreateFlashcard(ctx, card)
	if err != nil {
		return models.Flashcard{}, err
	}

	s.cache.InvalidateUser(card.UserID)
	return created, nil
}

func (s *FlashcardsS) Flashcard(ctx context.Context, userID string, id int64) (models.Flashcard, error) {
	return s.store.Flashcard(ctx, userID, id)
}

func (s *FlashcardsS) DueFlashcards(ctx context.Context, userID string, limit int) ([]models.Flashcard, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.DueFlashcards(ctx, userID, s.now(), limit)
}

func (s *FlashcardsS) DeleteFlashcard(ctx context.Context, userID string, id int64) error {
	if err := s.store.DeleteFlashcard(ctx, userID, id); err != nil {
		return err
	}
	s.cache.InvalidateUser(userID)
	return nil
}

// RecordReview grades one attempt at a card: the review row is
// appended and the card rescheduled atomically by the store. A
// negative time taken is clamped to zero rather than rejected.
func (s *FlashcardsS) RecordReview(ctx context.Context, userID string, id int64, correct bool, timeTakenSec int) (models.Flashcard, error) {
	if userID == "" || id <= 0 {
		return models.Flashcard{}, fmt.Errorf("%w: user id and flashcard id are required", models.ErrValidation)
	}
	if timeTakenSec < 0 {
		timeTakenSec = 0
	}

	now := s.now()
	card, err := s.store.RecordReview(ctx, userID, id, correct, timeTakenSec, now)
	if err != nil {
		return models.Flashcard{}, err
	}

	event := models.AnalyticsEvent{
		ID:        uuid.New(),
		UserID:    userID,
		EventType: models.EventFlashcardReview,
		Payload: models.EventPayload{
			"flashcard_id": id,
			"correct":      correct,
		},
		CreatedAt: now,
	}
	if err := s.events.AddEvent(ctx, event); err != nil {
		// The review is already committed; a lost streak signal is
		// recoverable from review timestamps.
		s.log.Warn("failed to record review event",
			zap.String("user_id", userID), zap.Int64("flashcard_id", id), zap.Error(err))
	}

	s.cache.InvalidateUser(userID)
	return card, nil
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock_service

type FlashcardStoreI interface {
	CreateFlashcard(ctx context.Context, card models.Flashcard) (models.Flashcard, error)
	Flashcard(ctx context.Context, userID string, id int64) (models.Flashcard, error)
	DueFlashcards(ctx context.Context, userID string, now time.Time, limit int) ([]models.Flashcard, error)
	DeleteFlashcard(ctx context.Context, userID string, id int64) error
	RecordReview(ctx context.Context, userID string, id int64, correct bool, timeTakenSec int, now time.Time) (models.Flashcard, error)
	FlashcardStats(ctx context.Context, userID, language string, now time.Time) (models.FlashcardStats, error)
	CategoryStats(ctx context.Context, userID, language string) ([]models.CategoryStat, error)
	ReviewXP(ctx context.Context, userID, language string, since *time.Time) (int, error)
	ReviewDates(ctx context.Context, userID string, since time.Time) ([]string, error)
	DailyReviews(ctx context.Context, userID, language string, since time.Time) ([]models.DailyCount, error)
}

type QuizStoreI interface {
	AddQuizScore(ctx context.Context, score models.QuizScore) error
	QuizStats(ctx context.Context, userID, language string, since *time.Time) (models.QuizStats, error)
	QuizDates(ctx context.Context, userID string, since time.Time) ([]string, error)
	DailyQuizzes(ctx context.Context, userID, language string, since time.Time) ([]models.DailyCount, error)
}

type SessionStoreI interface {
	AddSession(ctx context.Context, session models.PracticeSession) error
	SessionStats(ctx context.Context, userID, language string, since *time.Time) (models.PracticeStats, error)
	LatestConversation(ctx context.Context, userID string) (models.PracticeSession, error)
}

type AnalyticsStoreI interface {
	AddEvent(ctx context.Context, event models.AnalyticsEvent) error
	ActivityDates(ctx context.Context, userID string, eventTypes []string, since *time.Time) ([]string, error)
	ActiveUsers(ctx context.Context, since time.Time) ([]string, error)
}

type StoreI interface {
	FlashcardStoreI
	QuizStoreI
	SessionStoreI
	AnalyticsStoreI
}

// SummaryCacheI is the injected progress-summary cache. Write paths
// invalidate per user; the cache owns its own eviction and shutdown.
type SummaryCacheI interface {
	Summary(userID string, rng models.TimeRange, language string) (models.ProgressSummary, bool)
	SetSummary(userID string, rng models.TimeRange, language string, summary models.ProgressSummary)
	InvalidateUser(userID string)
}

type StreakI interface {
	CurrentStreak(ctx context.Context, userID string, cutoff *time.Time) (int, error)
}

type Service struct {
	*FlashcardsS
	*QuizzesS
	*PracticeS
	*StreakS
	*ProgressS
}

func InitServices(store StoreI, cache SummaryCacheI, log *zap.Logger) *Service {
	streak := NewStreakService(store, store, store, log)
	return &Service{
		FlashcardsS: NewFlashcardsService(store, store, cache, log),
		QuizzesS:    NewQuizzesService(store, store, cache, log),
		PracticeS:   NewPracticeService(store, store, cache, log),
		StreakS:     streak,
		ProgressS:   NewProgressService(store, store, store, streak, cache, log),
	}
}

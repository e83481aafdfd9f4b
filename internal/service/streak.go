package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

const (
	// streakCeiling bounds the backward walk over analytics events.
	streakCeiling = 365
	// fallbackWindowDays is how far back the review/quiz fallback looks
	// when no analytics events exist; it also bounds that walk.
	fallbackWindowDays = 30

	dayFormat = "2006-01-02"
)

// StreakS computes the consecutive-day activity streak.
type StreakS struct {
	analytics AnalyticsStoreI
	reviews   FlashcardStoreI
	quizzes   QuizStoreI
	log       *zap.Logger
	now       func() time.Time
}

func NewStreakService(analytics AnalyticsStoreI, reviews FlashcardStoreI, quizzes QuizStoreI, log *zap.Logger) *StreakS {
	return &StreakS{
		analytics: analytics,
		reviews:   reviews,
		quizzes:   quizzes,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CurrentStreak returns the number of consecutive UTC calendar days up
// to and including today with qualifying activity. Analytics events
// are the primary signal; when the user has none, review and quiz
// timestamps over the trailing 30 days stand in, so deployments without
// event instrumentation still report an honest streak.
func (s *StreakS) CurrentStreak(ctx context.Context, userID string, cutoff *time.Time) (int, error) {
	days, err := s.analytics.ActivityDates(ctx, userID, models.ActivityEventTypes, cutoff)
	if err != nil {
		return 0, err
	}
	if len(days) > 0 {
		return consecutiveDays(days, s.now(), streakCeiling), nil
	}

	since := s.now().AddDate(0, 0, -fallbackWindowDays)
	reviewDays, err := s.reviews.ReviewDates(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	quizDays, err := s.quizzes.QuizDates(ctx, userID, since)
	if err != nil {
		return 0, err
	}

	return consecutiveDays(append(reviewDays, quizDays...), s.now(), fallbackWindowDays), nil
}

// consecutiveDays walks backward from today over the set of active
// dates and stops at the first gap.
func consecutiveDays(days []string, now time.Time, ceiling int) int {
	active := make(map[string]struct{}, len(days))
	for _, d := range days {
		active[d] = struct{}{}
	}

	streak := 0
	for i := 0; i < ceiling; i++ {
		day := now.AddDate(0, 0, -i).Format(dayFormat)
		if _, ok := active[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

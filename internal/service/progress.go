package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

const (
	xpPerConversation  = 15
	streakBonusPerWeek = 50
	defaultSeriesDays  = 7
)

// ProgressS re-derives the progress snapshot from stored history. It is
// read-only over the store and keeps no state beyond the injected cache.
type ProgressS struct {
	flashcards FlashcardStoreI
	quizzes    QuizStoreI
	sessions   SessionStoreI
	streak     StreakI
	cache      SummaryCacheI
	log        *zap.Logger
	now        func() time.Time
}

func NewProgressService(flashcards FlashcardStoreI, quizzes QuizStoreI, sessions SessionStoreI, streak StreakI, cache SummaryCacheI, log *zap.Logger) *ProgressS {
	return &ProgressS{
		flashcards: flashcards,
		quizzes:    quizzes,
		sessions:   sessions,
		streak:     streak,
		cache:      cache,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Summary aggregates quiz, flashcard and practice history into one
// snapshot. Every XP component is summed, never averaged, and the
// streak bonus always uses the all-time streak, whatever the requested
// range.
func (p *ProgressS) Summary(ctx context.Context, userID string, rng models.TimeRange, language string) (models.ProgressSummary, error) {
	if userID == "" {
		return models.ProgressSummary{}, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}
	if rng == "" {
		rng = models.RangeAll
	}
	if !rng.Valid() {
		return models.ProgressSummary{}, fmt.Errorf("%w: unknown time range %q", models.ErrValidation, rng)
	}

	if cached, ok := p.cache.Summary(userID, rng, language); ok {
		return cached, nil
	}

	now := p.now()
	cutoff := rng.Cutoff(now)

	flashStats, err := p.flashcards.FlashcardStats(ctx, userID, language, now)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	categories, err := p.flashcards.CategoryStats(ctx, userID, language)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	reviewXP, err := p.flashcards.ReviewXP(ctx, userID, language, cutoff)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	quizStats, err := p.quizzes.QuizStats(ctx, userID, language, cutoff)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	practiceStats, err := p.sessions.SessionStats(ctx, userID, language, cutoff)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	streak, err := p.streak.CurrentStreak(ctx, userID, nil)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	lastTopic := models.DefaultConversationTopic
	lastConv, err := p.sessions.LatestConversation(ctx, userID)
	switch {
	case err == nil:
		lastTopic = lastConv.Topic()
	case !errors.Is(err, models.ErrNotFound):
		return models.ProgressSummary{}, err
	}

	daily, err := p.dailyActivity(ctx, userID, language, cutoff, now)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	xp := models.XPBreakdown{
		Quiz:        quizStats.TotalScore,
		Flashcards:  reviewXP,
		Practice:    practiceStats.Conversations * xpPerConversation,
		StreakBonus: streak / 7 * streakBonusPerWeek,
	}

	summary := models.ProgressSummary{
		UserID:        userID,
		Range:         rng,
		Language:      language,
		TotalXP:       xp.Quiz + xp.Flashcards + xp.Practice + xp.StreakBonus,
		CurrentStreak: streak,
		XP:            xp,
		Flashcards:    flashStats,
		Categories:    categories,
		Quizzes:       quizStats,
		Practice:      practiceStats,
		LastTopic:     lastTopic,
		DailyActivity: daily,
		GeneratedAt:   now,
	}
	summary.Level = Level(summary.TotalXP)

	p.cache.SetSummary(userID, rng, language, summary)
	return summary, nil
}

// Level converts accumulated XP to the gamified level, always >= 1 and
// non-decreasing in XP.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := int(math.Floor(math.Log2(float64(totalXP)/1000+1))) + 1
	if level < 1 {
		level = 1
	}
	return level
}

// dailyActivity builds a continuous per-day series of review and quiz
// counts over the requested range, or the trailing week for the
// all-time range.
func (p *ProgressS) dailyActivity(ctx context.Context, userID, language string, cutoff *time.Time, now time.Time) ([]models.DailyActivity, error) {
	since := now.AddDate(0, 0, -(defaultSeriesDays - 1))
	if cutoff != nil {
		since = *cutoff
	}
	since = time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)

	reviews, err := p.flashcards.DailyReviews(ctx, userID, language, since)
	if err != nil {
		return nil, err
	}
	quizzes, err := p.quizzes.DailyQuizzes(ctx, userID, language, since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*models.DailyActivity)
	for day := since; !day.After(now); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayFormat)
		byDay[key] = &models.DailyActivity{Date: key}
	}
	for _, r := range reviews {
		if d, ok := byDay[r.Day]; ok {
			d.Reviews = r.Count
		}
	}
	for _, q := range quizzes {
		if d, ok := byDay[q.Day]; ok {
			d.Quizzes = q.Count
		}
	}

	series := make([]models.DailyActivity, 0, len(byDay))
	for _, d := range byDay {
		series = append(series, *d)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series, nil
}

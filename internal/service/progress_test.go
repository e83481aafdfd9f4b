package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
	mock_service "github.com/adityar2309/ttsai-progress/internal/service/mock"
)

type progressMocks struct {
	flashcards *mock_service.MockFlashcardStoreI
	quizzes    *mock_service.MockQuizStoreI
	sessions   *mock_service.MockSessionStoreI
	streak     *mock_service.MockStreakI
	cache      *mock_service.MockSummaryCacheI
}

func newProgressServiceMock(ctrl *gomock.Controller, setupMock func(progressMocks)) *ProgressS {
	m := progressMocks{
		flashcards: mock_service.NewMockFlashcardStoreI(ctrl),
		quizzes:    mock_service.NewMockQuizStoreI(ctrl),
		sessions:   mock_service.NewMockSessionStoreI(ctrl),
		streak:     mock_service.NewMockStreakI(ctrl),
		cache:      mock_service.NewMockSummaryCacheI(ctrl),
	}
	if setupMock != nil {
		setupMock(m)
	}

	return &ProgressS{
		flashcards: m.flashcards,
		quizzes:    m.quizzes,
		sessions:   m.sessions,
		streak:     m.streak,
		cache:      m.cache,
		log:        zap.NewNop(),
		now:        func() time.Time { return testNow },
	}
}

// expectActiveUser wires the store responses for a user with quiz,
// review, practice and streak history.
func expectActiveUser(m progressMocks, times int) {
	for i := 0; i < times; i++ {
		m.cache.EXPECT().Summary("user-1", models.RangeAll, "").Return(models.ProgressSummary{}, false)
		m.flashcards.EXPECT().
			FlashcardStats(gomock.Any(), "user-1", "", testNow).
			Return(models.FlashcardStats{Total: 12, DueForReview: 3, Mastered: 2, AvgSuccessRate: 0.75}, nil)
		m.flashcards.EXPECT().
			CategoryStats(gomock.Any(), "user-1", "").
			Return([]models.CategoryStat{{Category: "food", Total: 5, Mastered: 1, AvgSuccessRate: 0.8}}, nil)
		m.flashcards.EXPECT().ReviewXP(gomock.Any(), "user-1", "", nil).Return(120, nil)
		m.quizzes.EXPECT().
			QuizStats(gomock.Any(), "user-1", "", nil).
			Return(models.QuizStats{Count: 4, TotalScore: 310, AvgScore: 77.5}, nil)
		m.sessions.EXPECT().
			SessionStats(gomock.Any(), "user-1", "", nil).
			Return(models.PracticeStats{Count: 6, Conversations: 2, AvgDuration: 240}, nil)
		m.streak.EXPECT().CurrentStreak(gomock.Any(), "user-1", nil).Return(16, nil)
		m.sessions.EXPECT().
			LatestConversation(gomock.Any(), "user-1").
			Return(models.PracticeSession{
				Kind:    models.SessionKindConversation,
				Payload: models.SessionPayload{Topic: "ordering food"},
			}, nil)
		m.flashcards.EXPECT().
			DailyReviews(gomock.Any(), "user-1", "", gomock.Any()).
			Return([]models.DailyCount{{Day: testNow.Format("2006-01-02"), Count: 5}}, nil)
		m.quizzes.EXPECT().
			DailyQuizzes(gomock.Any(), "user-1", "", gomock.Any()).
			Return([]models.DailyCount{{Day: testNow.Format("2006-01-02"), Count: 1}}, nil)
		m.cache.EXPECT().SetSummary("user-1", models.RangeAll, "", gomock.Any())
	}
}

func TestProgressS_Summary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newProgressServiceMock(ctrl, func(m progressMocks) { expectActiveUser(m, 1) })

	got, err := svc.Summary(context.Background(), "user-1", models.RangeAll, "")
	require.NoError(t, err)

	// quiz 310 + reviews 120 + conversations 2*15 + streak floor(16/7)*50.
	assert.Equal(t, models.XPBreakdown{Quiz: 310, Flashcards: 120, Practice: 30, StreakBonus: 100}, got.XP)
	assert.Equal(t, 560, got.TotalXP)
	assert.Equal(t, 16, got.CurrentStreak)
	assert.Equal(t, Level(560), got.Level)
	assert.Equal(t, "ordering food", got.LastTopic)
	assert.Equal(t, 12, got.Flashcards.Total)
	assert.Equal(t, 4, got.Quizzes.Count)

	// Trailing week, zero-filled, today last.
	require.Len(t, got.DailyActivity, 7)
	assert.Equal(t, testNow.Format("2006-01-02"), got.DailyActivity[6].Date)
	assert.Equal(t, 5, got.DailyActivity[6].Reviews)
	assert.Equal(t, 1, got.DailyActivity[6].Quizzes)
	assert.Equal(t, 0, got.DailyActivity[0].Reviews)
}

func TestProgressS_Summary_Idempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newProgressServiceMock(ctrl, func(m progressMocks) { expectActiveUser(m, 2) })

	first, err := svc.Summary(context.Background(), "user-1", models.RangeAll, "")
	require.NoError(t, err)
	second, err := svc.Summary(context.Background(), "user-1", models.RangeAll, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProgressS_Summary_ZeroActivity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newProgressServiceMock(ctrl, func(m progressMocks) {
		m.cache.EXPECT().Summary("user-2", models.RangeAll, "").Return(models.ProgressSummary{}, false)
		m.flashcards.EXPECT().FlashcardStats(gomock.Any(), "user-2", "", testNow).Return(models.FlashcardStats{}, nil)
		m.flashcards.EXPECT().CategoryStats(gomock.Any(), "user-2", "").Return(nil, nil)
		m.flashcards.EXPECT().ReviewXP(gomock.Any(), "user-2", "", nil).Return(0, nil)
		m.quizzes.EXPECT().QuizStats(gomock.Any(), "user-2", "", nil).Return(models.QuizStats{}, nil)
		m.sessions.EXPECT().SessionStats(gomock.Any(), "user-2", "", nil).Return(models.PracticeStats{}, nil)
		m.streak.EXPECT().CurrentStreak(gomock.Any(), "user-2", nil).Return(0, nil)
		m.sessions.EXPECT().LatestConversation(gomock.Any(), "user-2").Return(models.PracticeSession{}, models.ErrNotFound)
		m.flashcards.EXPECT().DailyReviews(gomock.Any(), "user-2", "", gomock.Any()).Return(nil, nil)
		m.quizzes.EXPECT().DailyQuizzes(gomock.Any(), "user-2", "", gomock.Any()).Return(nil, nil)
		m.cache.EXPECT().SetSummary("user-2", models.RangeAll, "", gomock.Any())
	})

	got, err := svc.Summary(context.Background(), "user-2", models.RangeAll, "")
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalXP)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 0, got.Flashcards.Total)
	assert.Equal(t, models.DefaultConversationTopic, got.LastTopic)
}

func TestProgressS_Summary_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := models.ProgressSummary{UserID: "user-1", TotalXP: 999, Level: 2}
	svc := newProgressServiceMock(ctrl, func(m progressMocks) {
		m.cache.EXPECT().Summary("user-1", models.RangeWeek, "fr").Return(cached, true)
	})

	got, err := svc.Summary(context.Background(), "user-1", models.RangeWeek, "fr")
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestProgressS_Summary_WeekRangeUsesCutoffButAllTimeStreak(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weekAgo := testNow.AddDate(0, 0, -7)
	svc := newProgressServiceMock(ctrl, func(m progressMocks) {
		m.cache.EXPECT().Summary("user-1", models.RangeWeek, "").Return(models.ProgressSummary{}, false)
		m.flashcards.EXPECT().FlashcardStats(gomock.Any(), "user-1", "", testNow).Return(models.FlashcardStats{}, nil)
		m.flashcards.EXPECT().CategoryStats(gomock.Any(), "user-1", "").Return(nil, nil)
		m.flashcards.EXPECT().ReviewXP(gomock.Any(), "user-1", "", &weekAgo).Return(10, nil)
		m.quizzes.EXPECT().QuizStats(gomock.Any(), "user-1", "", &weekAgo).Return(models.QuizStats{}, nil)
		m.sessions.EXPECT().SessionStats(gomock.Any(), "user-1", "", &weekAgo).Return(models.PracticeStats{}, nil)
		// Streak bonus stays all-time: cutoff nil.
		m.streak.EXPECT().CurrentStreak(gomock.Any(), "user-1", nil).Return(21, nil)
		m.sessions.EXPECT().LatestConversation(gomock.Any(), "user-1").Return(models.PracticeSession{}, models.ErrNotFound)
		m.flashcards.EXPECT().DailyReviews(gomock.Any(), "user-1", "", gomock.Any()).Return(nil, nil)
		m.quizzes.EXPECT().DailyQuizzes(gomock.Any(), "user-1", "", gomock.Any()).Return(nil, nil)
		m.cache.EXPECT().SetSummary("user-1", models.RangeWeek, "", gomock.Any())
	})

	got, err := svc.Summary(context.Background(), "user-1", models.RangeWeek, "")
	require.NoError(t, err)
	assert.Equal(t, 150, got.XP.StreakBonus)
	assert.Equal(t, 160, got.TotalXP)
}

func TestProgressS_Summary_InvalidRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newProgressServiceMock(ctrl, nil)

	_, err := svc.Summary(context.Background(), "user-1", "quarter", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, models.ErrValidation))
}

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		xp   int
		want int
	}{
		{xp: 0, want: 1},
		{xp: 999, want: 1},
		{xp: 1000, want: 2},
		{xp: 2999, want: 2},
		{xp: 3000, want: 3},
		{xp: 7000, want: 4},
		{xp: -5, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.xp), "xp=%d", tt.xp)
	}

	// Monotonic in XP.
	prev := 0
	for xp := 0; xp <= 100000; xp += 500 {
		level := Level(xp)
		assert.GreaterOrEqual(t, level, prev)
		assert.GreaterOrEqual(t, level, 1)
		prev = level
	}
}

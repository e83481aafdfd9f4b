package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
	"github.com/adityar2309/ttsai-progress/internal/service"
	mock_service "github.com/adityar2309/ttsai-progress/internal/service/mock"
)

func newTestServer(t *testing.T, setupMock func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI)) *echo.Echo {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mock_service.NewMockStoreI(ctrl)
	cache := mock_service.NewMockSummaryCacheI(ctrl)
	if setupMock != nil {
		setupMock(store, cache)
	}

	services := service.InitServices(store, cache, zap.NewNop())

	e := echo.New()
	New(services, 20, zap.NewNop()).Register(e)
	return e
}

func TestHandler_RequireUser(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RecordReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI)
		wantStatus int
	}{
		{
			name: "ok",
			path: "/api/flashcards/7/review",
			body: `{"correct":true,"time_taken_sec":4}`,
			setupMock: func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI) {
				store.EXPECT().
					RecordReview(gomock.Any(), "user-1", int64(7), true, 4, gomock.Any()).
					Return(models.Flashcard{ID: 7, UserID: "user-1", MasteryLevel: 3}, nil)
				store.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().InvalidateUser("user-1")
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown card",
			path: "/api/flashcards/7/review",
			body: `{"correct":true}`,
			setupMock: func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI) {
				store.EXPECT().
					RecordReview(gomock.Any(), "user-1", int64(7), true, 0, gomock.Any()).
					Return(models.Flashcard{}, models.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/api/flashcards/zero/review",
			body:       `{"correct":true}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestServer(t, tt.setupMock)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(userIDHeader, "user-1")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Streak(t *testing.T) {
	t.Parallel()

	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	e := newTestServer(t, func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI) {
		store.EXPECT().
			ActivityDates(gomock.Any(), "user-1", models.ActivityEventTypes, nil).
			Return([]string{today, yesterday}, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"current_streak": 2}`, rec.Body.String())
}

func TestHandler_CreateFlashcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI)
		wantStatus int
	}{
		{
			name: "ok",
			body: `{"source_text":"hello","target_text":"hola","source_lang":"en","target_lang":"es"}`,
			setupMock: func(store *mock_service.MockStoreI, cache *mock_service.MockSummaryCacheI) {
				store.EXPECT().
					CreateFlashcard(gomock.Any(), gomock.Any()).
					Return(models.Flashcard{ID: 1, UserID: "user-1", SourceText: "hello"}, nil)
				cache.EXPECT().InvalidateUser("user-1")
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"source_text":"hello"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"source_text":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestServer(t, tt.setupMock)

			req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(userIDHeader, "user-1")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Progress_InvalidRange(t *testing.T) {
	t.Parallel()

	e := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/progress?range=year", nil)
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

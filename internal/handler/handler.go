// Package handler exposes the progress core over a thin JSON API. No
// domain logic lives here; requests are validated, handed to services
// and the results encoded back.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adityar2309/ttsai-progress/internal/models"
	"github.com/adityar2309/ttsai-progress/internal/service"
	"github.com/adityar2309/ttsai-progress/pkg/validator"
)

// userIDHeader carries the trusted user identifier resolved by the
// upstream auth layer.
const userIDHeader = "X-User-ID"

type Handler struct {
	services *service.Service
	dueLimit int
	log      *zap.Logger
}

func New(services *service.Service, dueLimit int, log *zap.Logger) *Handler {
	return &Handler{services: services, dueLimit: dueLimit, log: log}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/flashcards", h.createFlashcard)
	api.GET("/flashcards/due", h.dueFlashcards)
	api.GET("/flashcards/:id", h.flashcard)
	api.POST("/flashcards/:id/review", h.recordReview)
	api.DELETE("/flashcards/:id", h.deleteFlashcard)

	api.POST("/quizzes/submit", h.submitQuiz)
	api.POST("/practice/sessions", h.addSession)

	api.GET("/progress", h.progress)
	api.GET("/streak", h.streak)
}

type createFlashcardRequest struct {
	SourceText string `json:"source_text" validate:"required"`
	TargetText string `json:"target_text" validate:"required"`
	SourceLang string `json:"source_lang" validate:"required"`
	TargetLang string `json:"target_lang" validate:"required"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

func (h *Handler) createFlashcard(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req createFlashcardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.services.CreateFlashcard(c.Request().Context(), models.Flashcard{
		UserID:     userID,
		SourceText: req.SourceText,
		TargetText: req.TargetText,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) dueFlashcards(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	limit := h.dueLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	cards, err := h.services.DueFlashcards(c.Request().Context(), userID, limit)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, cards)
}

func (h *Handler) flashcard(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := flashcardID(c)
	if err != nil {
		return err
	}

	card, err := h.services.Flashcard(c.Request().Context(), userID, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}

type recordReviewRequest struct {
	Correct      bool `json:"correct"`
	TimeTakenSec int  `json:"time_taken_sec"`
}

func (h *Handler) recordReview(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := flashcardID(c)
	if err != nil {
		return err
	}

	var req recordReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	card, err := h.services.RecordReview(c.Request().Context(), userID, id, req.Correct, req.TimeTakenSec)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) deleteFlashcard(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := flashcardID(c)
	if err != nil {
		return err
	}

	if err := h.services.DeleteFlashcard(c.Request().Context(), userID, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) submitQuiz(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var sub models.QuizSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := validator.ValidateStruct(sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	score, err := h.services.SubmitQuiz(c.Request().Context(), userID, sub)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, score)
}

type addSessionRequest struct {
	Kind        string                `json:"kind" validate:"required"`
	Language    string                `json:"language" validate:"required"`
	DurationSec int                   `json:"duration_sec"`
	Performance float64               `json:"performance"`
	Payload     models.SessionPayload `json:"payload"`
}

func (h *Handler) addSession(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req addSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := validator.ValidateStruct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.services.AddSession(c.Request().Context(), userID, models.PracticeSession{
		Kind:        req.Kind,
		Language:    req.Language,
		DurationSec: req.DurationSec,
		Performance: req.Performance,
		Payload:     req.Payload,
	})
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, session)
}

func (h *Handler) progress(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	rng := models.TimeRange(c.QueryParam("range"))
	language := c.QueryParam("language")

	summary, err := h.services.Summary(c.Request().Context(), userID, rng, language)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) streak(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	streak, err := h.services.CurrentStreak(c.Request().Context(), userID, nil)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"current_streak": streak})
}

func requireUser(c echo.Context) (string, error) {
	userID := c.Request().Header.Get(userIDHeader)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing "+userIDHeader+" header")
	}
	return userID, nil
}

func flashcardID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "flashcard id must be a positive integer")
	}
	return id, nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.log.Error("request failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/ai"
	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
	"example.com/tripstar/backend/internal/notifications"
	"example.com/tripstar/backend/internal/repository"
)

const (
	aiRequestGenerateItinerary = "generate_itinerary"
	aiRequestSuggestInterests  = "suggest_interests"
)

type ItineraryHandler struct {
	Service        *ai.Service
	Users          *repository.UserRepository
	Usage          *repository.UsageRepository
	Itineraries    *repository.ItineraryRepository
	AIRepo         *repository.AIRepository
	Notifier       *notifications.Hub
	Provider       string
	Model          string
	FreeDailyLimit int
}

// NewItineraryHandler создает обработчик генерации маршрутов.
func NewItineraryHandler(
	service *ai.Service,
	users *repository.UserRepository,
	usage *repository.UsageRepository,
	itineraries *repository.ItineraryRepository,
	aiRepo *repository.AIRepository,
	notifier *notifications.Hub,
	provider, model string,
	freeDailyLimit int,
) *ItineraryHandler {
	return &ItineraryHandler{
		Service:        service,
		Users:          users,
		Usage:          usage,
		Itineraries:    itineraries,
		AIRepo:         aiRepo,
		Notifier:       notifier,
		Provider:       provider,
		Model:          model,
		FreeDailyLimit: freeDailyLimit,
	}
}

type GenerateItineraryResponse struct {
	Success           bool               `json:"success"`
	Itinerary         itinerary.Document `json:"itinerary"`
	FreeUsesRemaining int                `json:"free_uses_remaining"`
	ItineraryID       uuid.UUID          `json:"itinerary_id"`
}

type SavedItineraryResponse struct {
	ID           uuid.UUID       `json:"id"`
	Destinations []string        `json:"destinations"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Plan         models.Plan     `json:"plan"`
	Document     json.RawMessage `json:"document,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Generate строит маршрут по параметрам формы, расходуя дневную квоту.
func (h *ItineraryHandler) Generate(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req itinerary.TripRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	// Тариф берется из профиля, а не из формы.
	req.Plan = user.Plan

	used, err := h.Usage.CountForDay(c.Request().Context(), userID, time.Now())
	if err != nil {
		return serverError(c)
	}
	if quotaExhausted(user.Plan, used, h.FreeDailyLimit) {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": quotaExceededMessage})
	}

	started := time.Now()
	doc, prompt, raw, err := h.Service.GenerateItinerary(c.Request().Context(), req)
	h.logAIRequest(c.Request().Context(), userID, aiRequestGenerateItinerary, prompt, raw, started, err)

	if err != nil {
		slog.Warn("itinerary fallback used",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		if user.Plan == models.PlanPro {
			doc = ai.ProFallbackItinerary(req)
		} else {
			doc = ai.FallbackItinerary(req)
		}
	}
	doc.Sanitize()

	if _, err := h.Usage.Record(c.Request().Context(), userID, user.Plan); err != nil {
		return serverError(c)
	}

	saved, err := h.saveItinerary(c.Request().Context(), userID, req, doc)
	if err != nil {
		return serverError(c)
	}

	remaining := remainingFreeUses(user.Plan, used+1, h.FreeDailyLimit)
	publishUsageUpdate(h.Notifier, userID, remaining)
	publishItinerarySaved(h.Notifier, userID, saved.ID, saved.Destinations)

	return c.JSON(http.StatusOK, GenerateItineraryResponse{
		Success:           true,
		Itinerary:         doc,
		FreeUsesRemaining: remaining,
		ItineraryID:       saved.ID,
	})
}

// List возвращает сохраненные маршруты пользователя без документов.
func (h *ItineraryHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset, err := parsePagination(c, 50, 200)
	if err != nil {
		return badRequest(c, err.Error())
	}

	itineraries, err := h.Itineraries.ListByUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return serverError(c)
	}

	response := make([]SavedItineraryResponse, 0, len(itineraries))
	for _, item := range itineraries {
		summary := toSavedItineraryResponse(item)
		summary.Document = nil
		response = append(response, summary)
	}

	return c.JSON(http.StatusOK, map[string][]SavedItineraryResponse{"itineraries": response})
}

// Get возвращает сохраненный маршрут вместе с документом.
func (h *ItineraryHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid itinerary id")
	}

	saved, err := h.Itineraries.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "itinerary not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toSavedItineraryResponse(saved))
}

// Delete удаляет сохраненный маршрут.
func (h *ItineraryHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid itinerary id")
	}

	if err := h.Itineraries.Delete(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "itinerary not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ItineraryHandler) saveItinerary(ctx context.Context, userID uuid.UUID, req itinerary.TripRequest, doc itinerary.Document) (models.SavedItinerary, error) {
	document, err := json.Marshal(doc)
	if err != nil {
		return models.SavedItinerary{}, err
	}

	start, err := req.Start()
	if err != nil {
		return models.SavedItinerary{}, err
	}
	end, err := req.End()
	if err != nil {
		return models.SavedItinerary{}, err
	}

	return h.Itineraries.Save(ctx, models.SavedItinerary{
		UserID:       userID,
		Destinations: req.Destinations,
		StartDate:    start,
		EndDate:      end,
		Plan:         req.Plan,
		Document:     document,
	})
}

func (h *ItineraryHandler) logAIRequest(ctx context.Context, userID uuid.UUID, kind, prompt string, raw []byte, started time.Time, err error) {
	log := repository.AIRequestLog{
		UserID:      userID,
		Kind:        kind,
		Provider:    h.Provider,
		Model:       h.Model,
		Prompt:      prompt,
		RawResponse: string(raw),
		Success:     err == nil,
		DurationMS:  time.Since(started).Milliseconds(),
	}
	if err != nil {
		errMsg := err.Error()
		log.ErrorMessage = &errMsg
	}

	_ = h.AIRepo.LogRequest(ctx, log)
}

func toSavedItineraryResponse(saved models.SavedItinerary) SavedItineraryResponse {
	return SavedItineraryResponse{
		ID:           saved.ID,
		Destinations: saved.Destinations,
		StartDate:    saved.StartDate.Format("2006-01-02"),
		EndDate:      saved.EndDate.Format("2006-01-02"),
		Plan:         saved.Plan,
		Document:     saved.Document,
		CreatedAt:    saved.CreatedAt,
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/ai"
	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/refdata"
	"example.com/tripstar/backend/internal/repository"
)

type InterestsHandler struct {
	Service  *ai.Service
	AIRepo   *repository.AIRepository
	Provider string
	Model    string
	Delay    time.Duration
}

// NewInterestsHandler создает обработчик подсказок интересов.
func NewInterestsHandler(service *ai.Service, aiRepo *repository.AIRepository, provider, model string, delay time.Duration) *InterestsHandler {
	return &InterestsHandler{
		Service:  service,
		AIRepo:   aiRepo,
		Provider: provider,
		Model:    model,
		Delay:    delay,
	}
}

type InterestsRequest struct {
	Destinations []string `json:"destinations"`
}

type InterestsResponse struct {
	Interests []string `json:"interests"`
}

// Suggest подбирает интересы под направления: сначала через AI, при ошибке
// из справочника по странам.
func (h *InterestsHandler) Suggest(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req InterestsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	ctx := c.Request().Context()

	// Пауза выравнивает темп подсказок при быстром наборе направлений.
	if h.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(h.Delay):
		}
	}

	started := time.Now()
	interests, prompt, raw, err := h.Service.SuggestInterests(ctx, req.Destinations)

	log := repository.AIRequestLog{
		UserID:      userID,
		Kind:        aiRequestSuggestInterests,
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

	if err != nil || len(interests) == 0 {
		if err != nil {
			slog.Warn("interests fallback used",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		interests = refdata.InterestsFor(req.Destinations)
	}

	if len(interests) > refdata.MaxInterests {
		interests = interests[:refdata.MaxInterests]
	}

	return c.JSON(http.StatusOK, InterestsResponse{Interests: interests})
}

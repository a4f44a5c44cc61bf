package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/models"
	"example.com/tripstar/backend/internal/repository"
)

const quotaExceededMessage = "Daily free limit reached. Upgrade to Pro for unlimited itineraries."

type UsageHandler struct {
	Users          *repository.UserRepository
	Usage          *repository.UsageRepository
	FreeDailyLimit int
}

// NewUsageHandler создает обработчик дневной квоты генераций.
func NewUsageHandler(users *repository.UserRepository, usage *repository.UsageRepository, freeDailyLimit int) *UsageHandler {
	return &UsageHandler{
		Users:          users,
		Usage:          usage,
		FreeDailyLimit: freeDailyLimit,
	}
}

type UsageResponse struct {
	FreeUsesRemaining int         `json:"free_uses_remaining"`
	Plan              models.Plan `json:"plan"`
	LastReset         time.Time   `json:"last_reset"`
}

// GetUsage возвращает остаток бесплатных генераций за текущие сутки UTC.
func (h *UsageHandler) GetUsage(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	used, err := h.Usage.CountForDay(c.Request().Context(), userID, time.Now())
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, UsageResponse{
		FreeUsesRemaining: remainingFreeUses(user.Plan, used, h.FreeDailyLimit),
		Plan:              user.Plan,
		LastReset:         startOfDayUTC(time.Now()),
	})
}

// remainingFreeUses считает остаток дневной квоты. Платные тарифы квотой не
// ограничены и всегда видят полный лимит.
func remainingFreeUses(plan models.Plan, used, limit int) int {
	if plan != models.PlanFree {
		return limit
	}

	remaining := limit - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// quotaExhausted сообщает, исчерпал ли пользователь дневную квоту генераций.
func quotaExhausted(plan models.Plan, used, limit int) bool {
	return plan == models.PlanFree && used >= limit
}

func startOfDayUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

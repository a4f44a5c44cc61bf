package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/models"
	"example.com/tripstar/backend/internal/repository"
)

type PlanHandler struct {
	Users *repository.UserRepository
}

// NewPlanHandler создает обработчик смены тарифа.
func NewPlanHandler(users *repository.UserRepository) *PlanHandler {
	return &PlanHandler{Users: users}
}

type UpdatePlanRequest struct {
	Plan string `json:"plan"`
}

type UpdatePlanResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}

// UpdatePlan переключает тариф пользователя.
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	plan := models.Plan(strings.ToLower(strings.TrimSpace(req.Plan)))
	if !plan.Valid() {
		return badRequest(c, "Invalid plan")
	}

	user, err := h.Users.UpdatePlan(c.Request().Context(), userID, plan)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "Invalid plan")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, UpdatePlanResponse{
		Success: true,
		User:    toAuthUser(user),
	})
}

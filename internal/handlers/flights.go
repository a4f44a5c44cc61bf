package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/flights"
)

type FlightsHandler struct {
	Service *flights.Service
}

// NewFlightsHandler создает обработчик поиска перелетов.
func NewFlightsHandler(service *flights.Service) *FlightsHandler {
	return &FlightsHandler{Service: service}
}

type SearchFlightsResponse struct {
	Success bool                 `json:"success"`
	Flights flights.SearchResult `json:"flights"`
}

// Search подбирает варианты перелетов по этапам поездки. Ошибки внешнего
// поставщика не прерывают ответ: сервис сам подставляет запасные варианты.
func (h *FlightsHandler) Search(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req flights.SearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	result, err := h.Service.Search(c.Request().Context(), req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(http.StatusOK, SearchFlightsResponse{
		Success: true,
		Flights: result,
	})
}

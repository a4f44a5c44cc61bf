package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/flights"
	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/render"
)

type RenderHandler struct{}

// NewRenderHandler создает обработчик серверного рендеринга HTML-фрагментов.
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{}
}

type RenderItineraryRequest struct {
	Itinerary itinerary.Document    `json:"itinerary"`
	Request   itinerary.TripRequest `json:"request"`
}

type RenderFlightsRequest struct {
	Flights flights.SearchResult `json:"flights"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}

// Itinerary рендерит HTML-фрагмент маршрута.
func (h *RenderHandler) Itinerary(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req RenderItineraryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	return c.JSON(http.StatusOK, RenderResponse{
		HTML: render.Itinerary(req.Itinerary, req.Request),
	})
}

// Flights рендерит HTML-фрагмент вариантов перелетов.
func (h *RenderHandler) Flights(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req RenderFlightsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	return c.JSON(http.StatusOK, RenderResponse{
		HTML: render.Flights(req.Flights),
	})
}

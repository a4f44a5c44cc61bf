package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/auth"
	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/pdf"
)

type ExportHandler struct{}

// NewExportHandler создает обработчик выгрузки маршрута в PDF.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

type ExportPDFRequest struct {
	Itinerary itinerary.Document    `json:"itinerary"`
	Request   itinerary.TripRequest `json:"request"`
}

// PDF собирает PDF-документ маршрута и отдает его вложением.
func (h *ExportHandler) PDF(c echo.Context) error {
	if _, ok := auth.UserIDFromContext(c); !ok {
		return unauthorized(c)
	}

	var req ExportPDFRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := req.Request.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	out, err := pdf.Export(req.Itinerary, req.Request)
	if err != nil {
		return serverError(c)
	}

	filename := pdf.Filename(req.Request.Destinations)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "application/pdf", out)
}

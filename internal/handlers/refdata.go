package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/refdata"
)

type RefDataHandler struct{}

// NewRefDataHandler создает обработчик справочников формы.
func NewRefDataHandler() *RefDataHandler {
	return &RefDataHandler{}
}

type AirportsResponse struct {
	Airports []refdata.Airport `json:"airports"`
}

type CurrenciesResponse struct {
	Currencies []refdata.Currency `json:"currencies"`
}

// Airports возвращает подсказки аэропортов по строке поиска.
func (h *RefDataHandler) Airports(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	return c.JSON(http.StatusOK, AirportsResponse{
		Airports: refdata.SuggestAirports(query),
	})
}

// Currencies возвращает подсказки валют по строке поиска.
func (h *RefDataHandler) Currencies(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	return c.JSON(http.StatusOK, CurrenciesResponse{
		Currencies: refdata.SuggestCurrencies(query),
	})
}

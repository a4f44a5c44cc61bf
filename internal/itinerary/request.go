package itinerary

import (
	"errors"
	"strings"
	"time"

	"example.com/tripstar/backend/internal/models"
)

// MaxDestinations ограничивает число городов в одной поездке.
const MaxDestinations = 5

const dateLayout = "2006-01-02"

// TripRequest содержит параметры поездки, присланные формой.
type TripRequest struct {
	UserName          string      `json:"userName"`
	Plan              models.Plan `json:"plan"`
	BudgetFriendly    bool        `json:"budgetFriendly"`
	DepartureCity     string      `json:"departureCity"`
	DepartureCityCode string      `json:"departureCityCode"`
	Destinations      []string    `json:"destinations"`
	DestinationCodes  []string    `json:"destinationCodes"`
	StartDate         string      `json:"startDate"`
	EndDate           string      `json:"endDate"`
	TravelerType      string      `json:"travelerType"`
	Interests         string      `json:"interests"`
	Currency          string      `json:"currency"`
	CurrencySymbol    string      `json:"currencySymbol"`
	Budget            float64     `json:"budget"`
	Notes             string      `json:"notes"`
}

// Validate проверяет запрос в фиксированном порядке и возвращает первую
// найденную ошибку с текстом для пользователя.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return errors.New("Please enter your name")
	}

	if r.DepartureCity == "" {
		return errors.New("Please select a departure city")
	}

	if len(r.Destinations) == 0 {
		return errors.New("Please select at least one destination")
	}

	if len(r.Destinations) > MaxDestinations {
		return errors.New("Maximum 5 destinations allowed")
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return errors.New("Please select a start date")
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return errors.New("Please select an end date")
	}

	if !end.After(start) {
		return errors.New("End date must be after start date")
	}

	if r.TravelerType == "" {
		return errors.New("Please select a traveler type")
	}

	if r.Currency == "" {
		return errors.New("Please select a currency")
	}

	if r.Budget <= 0 {
		return errors.New("Please enter a valid budget amount")
	}

	return nil
}

// Start возвращает дату начала поездки.
func (r TripRequest) Start() (time.Time, error) {
	return time.Parse(dateLayout, r.StartDate)
}

// End возвращает дату окончания поездки.
func (r TripRequest) End() (time.Time, error) {
	return time.Parse(dateLayout, r.EndDate)
}

// Days возвращает длительность поездки в днях, включая день выезда.
func (r TripRequest) Days() int {
	start, err := r.Start()
	if err != nil {
		return 0
	}
	end, err := r.End()
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateForDay возвращает календарную дату для дня маршрута с номером day.
func (r TripRequest) DateForDay(day int) (time.Time, error) {
	start, err := r.Start()
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, day-1), nil
}

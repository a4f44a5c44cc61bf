package itinerary

import (
	"testing"
	"time"

	"example.com/tripstar/backend/internal/models"
)

func validRequest() TripRequest {
	return TripRequest{
		UserName:          "Alex",
		Plan:              models.PlanFree,
		DepartureCity:     "London",
		DepartureCityCode: "LHR",
		Destinations:      []string{"Paris"},
		DestinationCodes:  []string{"CDG"},
		StartDate:         "2026-09-01",
		EndDate:           "2026-09-04",
		TravelerType:      "Solo",
		Interests:         "Museums, Food",
		Currency:          "EUR",
		CurrencySymbol:    "€",
		Budget:            1000,
	}
}

// TestValidateOK проверяет прохождение полностью заполненного запроса.
func TestValidateOK(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidateNameFirst проверяет, что пустое имя останавливает проверку
// раньше остальных правил.
func TestValidateNameFirst(t *testing.T) {
	req := validRequest()
	req.UserName = "   "
	req.Currency = ""

	err := req.Validate()
	if err == nil || err.Error() != "Please enter your name" {
		t.Fatalf("expected name error, got %v", err)
	}
}

// TestValidateOrder проверяет порядок срабатывания правил.
func TestValidateOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TripRequest)
		want   string
	}{
		{"departure", func(r *TripRequest) { r.DepartureCity = "" }, "Please select a departure city"},
		{"destinations", func(r *TripRequest) { r.Destinations = nil }, "Please select at least one destination"},
		{"too many destinations", func(r *TripRequest) {
			r.Destinations = []string{"a", "b", "c", "d", "e", "f"}
		}, "Maximum 5 destinations allowed"},
		{"start date", func(r *TripRequest) { r.StartDate = "" }, "Please select a start date"},
		{"end date", func(r *TripRequest) { r.EndDate = "not-a-date" }, "Please select an end date"},
		{"end equals start", func(r *TripRequest) { r.EndDate = r.StartDate }, "End date must be after start date"},
		{"traveler type", func(r *TripRequest) { r.TravelerType = "" }, "Please select a traveler type"},
		{"currency", func(r *TripRequest) { r.Currency = "" }, "Please select a currency"},
		{"budget", func(r *TripRequest) { r.Budget = 0 }, "Please enter a valid budget amount"},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)

		err := req.Validate()
		if err == nil || err.Error() != tc.want {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.want, err)
		}
	}
}

// TestDateForDay проверяет вычисление даты дня от начала поездки.
func TestDateForDay(t *testing.T) {
	req := validRequest()

	first, err := req.DateForDay(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	if !first.Equal(start) {
		t.Fatalf("day 1 should equal start date, got %v", first)
	}

	third, err := req.DateForDay(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !third.Equal(start.AddDate(0, 0, 2)) {
		t.Fatalf("day 3 should be start+2, got %v", third)
	}
}

// TestDays проверяет включающий подсчет длительности поездки.
func TestDays(t *testing.T) {
	req := validRequest()
	if got := req.Days(); got != 4 {
		t.Fatalf("expected 4 days, got %d", got)
	}

	req.EndDate = req.StartDate
	if got := req.Days(); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
}

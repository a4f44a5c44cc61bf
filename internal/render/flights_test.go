package render

import (
	"strings"
	"testing"

	"example.com/tripstar/backend/internal/flights"
)

// TestFormatCabinName проверяет вставку пробелов перед заглавными буквами.
func TestFormatCabinName(t *testing.T) {
	cases := map[string]string{
		"economy":        "Economy",
		"premiumEconomy": "Premium Economy",
		"business":       "Business",
		"first":          "First",
	}
	for in, want := range cases {
		if got := formatCabinName(in); got != want {
			t.Fatalf("formatCabinName(%q): expected %q, got %q", in, want, got)
		}
	}
}

// TestFlightsRendering проверяет карточки этапов и вариантов перелета.
func TestFlightsRendering(t *testing.T) {
	result := flights.SearchResult{
		SearchLink: "https://www.skyscanner.com/transport/flights/lhr/cdg/260901/",
		Segments: []flights.Segment{{
			DepartureCity: "London",
			Destination:   "Paris",
			OutboundDate:  "2026-09-01",
			Segment:       "Leg 1: London to Paris",
			Options: []flights.Option{{
				Airline:      "Air France",
				FlightNumber: "AF123",
				Duration:     "1h 15m",
				Stops:        1,
				Layover:      "AMS",
				Classes: map[string]flights.CabinClass{
					"economy":        {Price: "$120", SeatsLeft: 5, Available: true},
					"premiumEconomy": {Price: "$260", SeatsLeft: 2, Available: true},
					"business":       {Price: "$400", SeatsLeft: 0, Available: false},
				},
				Tips: []string{"Check in online"},
			}},
		}},
		Tips: []string{"Book early"},
	}

	html := Flights(result)

	if !strings.Contains(html, "London → Paris") {
		t.Fatalf("segment header missing: %s", html)
	}
	if !strings.Contains(html, "Air France · AF123") {
		t.Fatalf("airline line missing: %s", html)
	}
	if !strings.Contains(html, "1 stop · Layover: AMS") {
		t.Fatalf("stops/layover missing: %s", html)
	}
	if !strings.Contains(html, "Premium Economy") {
		t.Fatalf("cabin name formatting missing: %s", html)
	}
	if strings.Contains(html, "$400") {
		t.Fatalf("unavailable cabin should be skipped: %s", html)
	}
	if !strings.Contains(html, "skyscanner.com") {
		t.Fatalf("booking link fallback missing: %s", html)
	}
	if !strings.Contains(html, "Book early") {
		t.Fatalf("response tips missing: %s", html)
	}
}

// TestFlightsGeneralTipsFallback проверяет общий блок советов при их отсутствии.
func TestFlightsGeneralTipsFallback(t *testing.T) {
	html := Flights(flights.SearchResult{})

	for _, tip := range flights.GeneralBookingTips() {
		if !strings.Contains(html, tip) {
			t.Fatalf("general tip %q missing: %s", tip, html)
		}
	}
}

package flights

import (
	"context"
	"log/slog"
	"testing"
)

// TestFormatISODuration проверяет разбор ISO 8601 длительности.
func TestFormatISODuration(t *testing.T) {
	cases := map[string]string{
		"PT5H30M": "5h 30m",
		"PT2H":    "2h",
		"PT45M":   "45m",
		"":        "",
	}
	for in, want := range cases {
		if got := formatISODuration(in); got != want {
			t.Fatalf("formatISODuration(%q): expected %q, got %q", in, want, got)
		}
	}
}

// TestCabinClassKey проверяет перевод классов Amadeus в ключи ответа.
func TestCabinClassKey(t *testing.T) {
	cases := map[string]string{
		"ECONOMY":         "economy",
		"PREMIUM_ECONOMY": "premiumEconomy",
		"BUSINESS":        "business",
		"FIRST":           "first",
		"":                "economy",
	}
	for in, want := range cases {
		if got := cabinClassKey(in); got != want {
			t.Fatalf("cabinClassKey(%q): expected %q, got %q", in, want, got)
		}
	}
}

// TestParseFlightOffers проверяет нормализацию ответа Amadeus.
func TestParseFlightOffers(t *testing.T) {
	payload := `{
		"data": [{
			"numberOfBookableSeats": 4,
			"price": {"grandTotal": "123.40", "currency": "USD"},
			"itineraries": [{
				"duration": "PT3H20M",
				"segments": [
					{"departure": {"iataCode": "LHR", "at": "2026-09-01T08:00:00"},
					 "arrival": {"iataCode": "AMS", "at": "2026-09-01T10:10:00"},
					 "carrierCode": "KL", "number": "1001"},
					{"departure": {"iataCode": "AMS", "at": "2026-09-01T11:00:00"},
					 "arrival": {"iataCode": "CDG", "at": "2026-09-01T12:20:00"},
					 "carrierCode": "KL", "number": "1234"}
				]
			}],
			"travelerPricings": [{"fareDetailsBySegment": [{"cabin": "BUSINESS"}]}],
			"validatingAirlineCodes": ["KL"]
		}]
	}`

	options, err := parseFlightOffers([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}

	opt := options[0]
	if opt.Airline != "KLM" {
		t.Fatalf("unexpected airline %q", opt.Airline)
	}
	if opt.FlightNumber != "KL1001" {
		t.Fatalf("unexpected flight number %q", opt.FlightNumber)
	}
	if opt.Stops != 1 || opt.Layover != "AMS" {
		t.Fatalf("unexpected stops/layover: %d %q", opt.Stops, opt.Layover)
	}
	if opt.Duration != "3h 20m" {
		t.Fatalf("unexpected duration %q", opt.Duration)
	}

	class, ok := opt.Classes["business"]
	if !ok || !class.Available || class.SeatsLeft != 4 {
		t.Fatalf("unexpected class info: %+v", opt.Classes)
	}
	if class.Price != "USD 123.40" {
		t.Fatalf("unexpected price %q", class.Price)
	}
}

// TestFallbackOptionsDeterministic проверяет стабильность детерминированных вариантов.
func TestFallbackOptionsDeterministic(t *testing.T) {
	first := fallbackOptions("LHR", "CDG", "$")
	second := fallbackOptions("LHR", "CDG", "$")

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("expected 5 options, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Airline != second[i].Airline || first[i].FlightNumber != second[i].FlightNumber {
			t.Fatalf("options differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}

	economy := first[0].Classes["economy"]
	if economy.Price != "$80" {
		t.Fatalf("unexpected economy price %q", economy.Price)
	}
	if _, ok := first[3].Classes["business"]; ok {
		t.Fatalf("low-cost carrier should not offer business class")
	}
}

// TestSearchWithoutClient проверяет, что без Amadeus поиск работает на заменах.
func TestSearchWithoutClient(t *testing.T) {
	svc := NewService(NewAmadeusClient("", "", "https://test.api.amadeus.com", 0), slog.Default())

	result, err := svc.Search(context.Background(), SearchRequest{
		DepartureCity:  "London",
		Destinations:   []string{"Paris", "Rome"},
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-06",
		Budget:         1500,
		CurrencySymbol: "$",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.Segments[0].DepartureCity != "London" || result.Segments[0].Destination != "Paris" {
		t.Fatalf("unexpected first segment: %+v", result.Segments[0])
	}
	if result.Segments[1].DepartureCity != "Paris" {
		t.Fatalf("second leg should start from previous destination, got %q", result.Segments[1].DepartureCity)
	}
	if result.Segments[0].OutboundDate != "2026-09-01" {
		t.Fatalf("first leg should depart on start date, got %q", result.Segments[0].OutboundDate)
	}
	if len(result.Segments[0].Options) == 0 {
		t.Fatalf("expected fallback options")
	}
	if len(result.Tips) == 0 {
		t.Fatalf("expected general booking tips on fallback path")
	}
	if result.SearchLink == "" {
		t.Fatalf("expected search link")
	}
}

// TestSearchRequiresDestinations проверяет отказ при пустом списке направлений.
func TestSearchRequiresDestinations(t *testing.T) {
	svc := NewService(nil, slog.Default())
	if _, err := svc.Search(context.Background(), SearchRequest{StartDate: "2026-09-01", EndDate: "2026-09-02"}); err == nil {
		t.Fatalf("expected error for missing destinations")
	}
}

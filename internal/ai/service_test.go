package ai

import (
	"context"
	"strings"
	"testing"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
)

type stubClient struct {
	content string
	err     error
}

func (s stubClient) Chat(_ context.Context, _ []Message) (string, []byte, error) {
	return s.content, []byte(s.content), s.err
}

func tripRequest(plan models.Plan) itinerary.TripRequest {
	return itinerary.TripRequest{
		UserName:       "Alex",
		Plan:           plan,
		DepartureCity:  "London",
		Destinations:   []string{"Paris", "Rome"},
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-03",
		TravelerType:   "Solo",
		Interests:      "Museums",
		Currency:       "EUR",
		CurrencySymbol: "€",
		Budget:         1500,
	}
}

// TestResolveMaxTokens проверяет подстановку общего лимита токенов.
func TestResolveMaxTokens(t *testing.T) {
	if got := resolveMaxTokens(0); got != defaultMaxTokens {
		t.Fatalf("expected default %d, got %d", defaultMaxTokens, got)
	}
	if got := resolveMaxTokens(1200); got != 1200 {
		t.Fatalf("expected 1200, got %d", got)
	}
}

// TestExtractJSONStripsFences проверяет извлечение JSON из маркдауна.
func TestExtractJSONStripsFences(t *testing.T) {
	input := "```json\n{\"days\": []}\n```"
	got := extractJSON(input)
	if got != `{"days": []}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

// TestExtractJSONArray проверяет извлечение массива из текста с пояснениями.
func TestExtractJSONArray(t *testing.T) {
	input := "Here are the interests: [\"Museums\", \"Food\"] enjoy!"
	got := extractJSONArray(input)
	if got != `["Museums", "Food"]` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

// TestGenerateItineraryFree проверяет успешную генерацию free-маршрута.
func TestGenerateItineraryFree(t *testing.T) {
	response := `{
		"days": [{"day": 1, "title": "Welcome", "description": "Arrival day", "activities": ["Morning: walk"], "tip": "Rest well"}],
		"popularSpots": [{"name": "Louvre", "description": "Famous museum"}],
		"summary": "Short trip"
	}`

	svc := NewService(stubClient{content: response})
	doc, prompt, _, err := svc.GenerateItinerary(context.Background(), tripRequest(models.PlanFree))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Days) != 1 || doc.Days[0].Activities.IsStructured() {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if !strings.Contains(prompt, "3-day travel itinerary") {
		t.Fatalf("prompt missing day count: %q", prompt)
	}
}

// TestGenerateItineraryProRequiresExtras проверяет требования pro-схемы.
func TestGenerateItineraryProRequiresExtras(t *testing.T) {
	response := `{
		"days": [{"day": 1, "title": "Welcome", "description": "Arrival day", "activities": [{"time": "Morning", "description": "Tour"}], "tip": "Rest"}],
		"popularSpots": [{"name": "Louvre", "description": "Museum"}],
		"summary": "Trip"
	}`

	svc := NewService(stubClient{content: response})
	_, _, _, err := svc.GenerateItinerary(context.Background(), tripRequest(models.PlanPro))
	if err == nil {
		t.Fatalf("expected validation error for missing pro sections")
	}
}

// TestGenerateItineraryRejectsEmptyDays проверяет отказ на пустом списке дней.
func TestGenerateItineraryRejectsEmptyDays(t *testing.T) {
	svc := NewService(stubClient{content: `{"days": [], "popularSpots": [], "summary": "x"}`})
	_, _, _, err := svc.GenerateItinerary(context.Background(), tripRequest(models.PlanFree))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

// TestSuggestInterests проверяет разбор списка интересов.
func TestSuggestInterests(t *testing.T) {
	svc := NewService(stubClient{content: `["Museums", " Food ", ""]`})
	interests, _, _, err := svc.SuggestInterests(context.Background(), []string{"France"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(interests) != 2 || interests[1] != "Food" {
		t.Fatalf("unexpected interests: %v", interests)
	}
}

// TestFallbackItineraryShape проверяет шаблонный free-маршрут.
func TestFallbackItineraryShape(t *testing.T) {
	doc := FallbackItinerary(tripRequest(models.PlanFree))

	if len(doc.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(doc.Days))
	}
	if doc.Days[0].Title != "Welcome to Paris" {
		t.Fatalf("unexpected first day title %q", doc.Days[0].Title)
	}
	if doc.Days[2].Title != "Final Explorations" {
		t.Fatalf("unexpected last day title %q", doc.Days[2].Title)
	}
	if doc.Days[1].Activities.IsStructured() {
		t.Fatalf("free fallback must use plain activities")
	}
	if len(doc.PopularSpots) != 2 {
		t.Fatalf("expected 2 spots, got %d", len(doc.PopularSpots))
	}
}

// TestProFallbackItineraryShape проверяет шаблонный pro-маршрут.
func TestProFallbackItineraryShape(t *testing.T) {
	doc := ProFallbackItinerary(tripRequest(models.PlanPro))

	if len(doc.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(doc.Days))
	}
	if !doc.Days[0].Activities.IsStructured() {
		t.Fatalf("pro fallback must use structured activities")
	}
	if doc.BudgetBreakdown == nil || doc.BudgetBreakdown.TotalEstimated != "€1500" {
		t.Fatalf("unexpected budget breakdown: %+v", doc.BudgetBreakdown)
	}
	if doc.BookingResources["hotels"] != "https://www.booking.com" {
		t.Fatalf("unexpected booking resources: %v", doc.BookingResources)
	}
}

package itinerary

import (
	"encoding/json"
	"testing"
)

// TestActivitiesUnmarshalPlain проверяет разбор free-варианта занятий.
func TestActivitiesUnmarshalPlain(t *testing.T) {
	var acts Activities
	if err := json.Unmarshal([]byte(`["Museum visit", 42, "Dinner"]`), &acts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if acts.IsStructured() {
		t.Fatalf("expected plain activities")
	}
	want := []string{"Museum visit", "Dinner"}
	if len(acts.Plain) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(acts.Plain))
	}
	for i := range want {
		if acts.Plain[i] != want[i] {
			t.Fatalf("activity %d: expected %q, got %q", i, want[i], acts.Plain[i])
		}
	}
}

// TestActivitiesUnmarshalStructured проверяет разбор pro-варианта занятий.
func TestActivitiesUnmarshalStructured(t *testing.T) {
	raw := `[{"time":"Morning (8:00-12:00)","description":"Louvre tour","cost":"$50"}]`

	var acts Activities
	if err := json.Unmarshal([]byte(raw), &acts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !acts.IsStructured() {
		t.Fatalf("expected structured activities")
	}
	if len(acts.Structured) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(acts.Structured))
	}
	if acts.Structured[0].Description != "Louvre tour" {
		t.Fatalf("unexpected description %q", acts.Structured[0].Description)
	}
	if acts.Structured[0].BookingLink != "" {
		t.Fatalf("expected empty booking link")
	}
}

// TestActivitiesUnmarshalNull проверяет, что null дает пустой список.
func TestActivitiesUnmarshalNull(t *testing.T) {
	var acts Activities
	if err := json.Unmarshal([]byte(`null`), &acts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acts.Empty() {
		t.Fatalf("expected empty activities")
	}
}

// TestActivitiesMarshalRoundTrip проверяет, что вариант сохраняется при сериализации.
func TestActivitiesMarshalRoundTrip(t *testing.T) {
	acts := Activities{Plain: []string{"Walk", "Eat"}}

	data, err := json.Marshal(acts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Activities
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.IsStructured() || len(back.Plain) != 2 {
		t.Fatalf("round trip lost plain shape: %+v", back)
	}
}

// TestDocumentSanitize проверяет очистку всех текстовых полей документа.
func TestDocumentSanitize(t *testing.T) {
	doc := Document{
		Days: []Day{{
			Day:         1,
			Title:       "  Day   one ",
			Description: "Overview: Overview: walking",
			Tip:         "Take\twater",
			Activities:  Activities{Plain: []string{"  Museum  visit "}},
		}},
		PopularSpots: []Spot{{Name: " Tower ", Description: "Tall\n\nstructure"}},
		Summary:      "  Great   trip  ",
	}

	doc.Sanitize()

	if doc.Days[0].Title != "Day one" {
		t.Fatalf("unexpected title %q", doc.Days[0].Title)
	}
	if doc.Days[0].Description != "Overview: walking" {
		t.Fatalf("unexpected description %q", doc.Days[0].Description)
	}
	if doc.Days[0].Activities.Plain[0] != "Museum visit" {
		t.Fatalf("unexpected activity %q", doc.Days[0].Activities.Plain[0])
	}
	if doc.PopularSpots[0].Name != "Tower" {
		t.Fatalf("unexpected spot name %q", doc.PopularSpots[0].Name)
	}
	if doc.Summary != "Great trip" {
		t.Fatalf("unexpected summary %q", doc.Summary)
	}
}

// TestDayFallbacks проверяет шаблонные заглушки для пустых полей дня.
func TestDayFallbacks(t *testing.T) {
	day := Day{Day: 3}

	if got := day.TitleOrDefault("Paris"); got != "Day 3 in Paris" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := day.DescriptionOrDefault(); got != "Explore and enjoy your journey." {
		t.Fatalf("unexpected description %q", got)
	}
	if got := day.TipOrDefault(); got != "Enjoy your day and stay hydrated!" {
		t.Fatalf("unexpected tip %q", got)
	}
}

package render

import (
	"strings"
	"testing"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
)

func renderRequest(plan models.Plan) itinerary.TripRequest {
	return itinerary.TripRequest{
		UserName:       "Alex",
		Plan:           plan,
		DepartureCity:  "London",
		Destinations:   []string{"Paris"},
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-03",
		TravelerType:   "Solo",
		Interests:      "Museums, Food",
		Currency:       "EUR",
		CurrencySymbol: "€",
		Budget:         1500,
	}
}

// TestItineraryDayDates проверяет вычисление дат: день k = старт + (k-1).
func TestItineraryDayDates(t *testing.T) {
	doc := itinerary.Document{
		Days: []itinerary.Day{
			{Day: 1, Title: "Arrival", Description: "First day", Activities: itinerary.Activities{Plain: []string{"Walk"}}, Tip: "Rest"},
			{Day: 3, Title: "Departure", Description: "Last day", Activities: itinerary.Activities{Plain: []string{"Pack"}}, Tip: "Early"},
		},
	}

	html := Itinerary(doc, renderRequest(models.PlanFree))

	// 2026-09-01 выпадает на вторник
	if !strings.Contains(html, "Day 1 - Tuesday, September 1") {
		t.Fatalf("day 1 date missing: %s", html)
	}
	if !strings.Contains(html, "Day 3 - Thursday, September 3") {
		t.Fatalf("day 3 date missing: %s", html)
	}
}

// TestItineraryFreeTierList проверяет порядок и количество пунктов free-списка.
func TestItineraryFreeTierList(t *testing.T) {
	doc := itinerary.Document{
		Days: []itinerary.Day{{
			Day:        1,
			Activities: itinerary.Activities{Plain: []string{"Museum visit", "Dinner"}},
		}},
	}

	html := Itinerary(doc, renderRequest(models.PlanFree))

	if got := strings.Count(html, `<li class="activity-item">`); got != 2 {
		t.Fatalf("expected 2 list items, got %d", got)
	}
	first := strings.Index(html, "Museum visit")
	second := strings.Index(html, "Dinner")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("activities out of order: %s", html)
	}
}

// TestItineraryProActivityWithoutBookingLink проверяет отсутствие ссылки
// бронирования, когда она не задана.
func TestItineraryProActivityWithoutBookingLink(t *testing.T) {
	doc := itinerary.Document{
		Days: []itinerary.Day{{
			Day: 1,
			Activities: itinerary.Activities{Structured: []itinerary.Activity{
				{Time: "Morning", Description: "Tour"},
			}},
		}},
	}

	html := Itinerary(doc, renderRequest(models.PlanPro))

	if strings.Contains(html, "booking-link-small") {
		t.Fatalf("unexpected booking anchor: %s", html)
	}
	if !strings.Contains(html, `<div class="activity-time">Morning</div>`) {
		t.Fatalf("structured activity not rendered: %s", html)
	}
}

// TestItineraryPlaceholderBookingLink проверяет, что "#" не дает ссылку.
func TestItineraryPlaceholderBookingLink(t *testing.T) {
	doc := itinerary.Document{
		PopularSpots: []itinerary.Spot{{Name: "Tower", Description: "Tall", BookingLink: "#"}},
	}

	html := Itinerary(doc, renderRequest(models.PlanPro))

	if strings.Contains(html, "Book Tickets") {
		t.Fatalf("placeholder link should not render an anchor: %s", html)
	}
	if !strings.Contains(html, "Upgrade to Pro for booking links") {
		t.Fatalf("upsell slot missing: %s", html)
	}
}

// TestItineraryFreeSpotUpsell проверяет апселл на карточках free-тарифа.
func TestItineraryFreeSpotUpsell(t *testing.T) {
	doc := itinerary.Document{
		PopularSpots: []itinerary.Spot{{Name: "Louvre", Description: "Museum", BookingLink: "https://example.com"}},
	}

	html := Itinerary(doc, renderRequest(models.PlanFree))

	if strings.Contains(html, "Book Tickets") {
		t.Fatalf("free tier must not render booking links: %s", html)
	}
	if !strings.Contains(html, "Upgrade to Pro for booking links") {
		t.Fatalf("upsell slot missing: %s", html)
	}
}

// TestItinerarySynthesizedSummary проверяет синтез summary из параметров.
func TestItinerarySynthesizedSummary(t *testing.T) {
	doc := itinerary.Document{Days: []itinerary.Day{{Day: 1}}}
	req := renderRequest(models.PlanFree)
	req.Notes = "Vegetarian food"

	html := Itinerary(doc, req)

	if !strings.Contains(html, "This 3-day solo trip to Paris") {
		t.Fatalf("synthesized summary missing: %s", html)
	}
	if !strings.Contains(html, "€1,500") {
		t.Fatalf("budget formatting missing: %s", html)
	}
	if !strings.Contains(html, "Special notes: Vegetarian food") {
		t.Fatalf("notes missing from summary: %s", html)
	}
}

// TestItineraryEscapesText проверяет экранирование HTML в данных генератора.
func TestItineraryEscapesText(t *testing.T) {
	doc := itinerary.Document{
		Days: []itinerary.Day{{
			Day:        1,
			Title:      `<script>alert("x")</script>`,
			Activities: itinerary.Activities{Plain: []string{"Walk"}},
		}},
	}

	html := Itinerary(doc, renderRequest(models.PlanFree))

	if strings.Contains(html, "<script>") {
		t.Fatalf("unescaped markup in output: %s", html)
	}
}

// TestFormatAmount проверяет разделители тысяч.
func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		100:     "100",
		1500:    "1,500",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v): expected %q, got %q", in, want, got)
		}
	}
}

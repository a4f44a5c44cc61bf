package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strings"
	"testing"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
)

func exportRequest() itinerary.TripRequest {
	return itinerary.TripRequest{
		UserName:       "Alex",
		Plan:           models.PlanFree,
		DepartureCity:  "London",
		Destinations:   []string{"Paris"},
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-03",
		TravelerType:   "Solo",
		Interests:      "Museums, Food",
		Currency:       "EUR",
		CurrencySymbol: "EUR ",
		Budget:         1500,
	}
}

// TestFilename проверяет слаг имени файла из первого направления.
func TestFilename(t *testing.T) {
	cases := []struct {
		destinations []string
		want         string
	}{
		{[]string{"Paris"}, "tripstar-itinerary-paris.pdf"},
		{[]string{"New York"}, "tripstar-itinerary-new-york.pdf"},
		{[]string{"New York", "Rome"}, "tripstar-itinerary-new-york.pdf"},
		{nil, "tripstar-itinerary-trip.pdf"},
		{[]string{"   "}, "tripstar-itinerary-trip.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.destinations); got != tc.want {
			t.Fatalf("Filename(%v): expected %q, got %q", tc.destinations, tc.want, got)
		}
	}
}

// TestExportProducesPDF проверяет, что выгрузка дает валидный PDF-заголовок.
func TestExportProducesPDF(t *testing.T) {
	doc := itinerary.Document{
		Days: []itinerary.Day{{
			Day:         1,
			Title:       "Arrival in Paris",
			Description: "Settle in and take a first walk around the city center.",
			Activities:  itinerary.Activities{Plain: []string{"Check in", "Evening stroll"}},
			Tip:         "Keep small change for the metro.",
		}},
		PopularSpots: []itinerary.Spot{{Name: "Louvre", Description: "World-famous museum."}},
		Summary:      "A short trip to Paris.",
	}

	out, err := Export(doc, exportRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", out[:16])
	}
}

func longItinerary() (itinerary.Document, itinerary.TripRequest) {
	long := strings.Repeat("A detailed stop with plenty of context for the traveler. ", 6)

	days := make([]itinerary.Day, 0, 12)
	for i := 1; i <= 12; i++ {
		days = append(days, itinerary.Day{
			Day:         i,
			Title:       fmt.Sprintf("Day %d Adventures", i),
			Description: long,
			Activities:  itinerary.Activities{Plain: []string{long, long, long}},
			Tip:         long,
		})
	}
	doc := itinerary.Document{Days: days, Summary: long}

	req := exportRequest()
	req.EndDate = "2026-09-12"
	return doc, req
}

// pageText распаковывает content-потоки страниц готового PDF и склеивает
// их в одну строку для поиска нарисованного текста.
func pageText(t *testing.T, pdf []byte) string {
	t.Helper()

	var b strings.Builder
	rest := pdf
	for {
		idx := bytes.Index(rest, []byte("stream"))
		if idx == -1 {
			break
		}
		rest = rest[idx+len("stream"):]
		rest = bytes.TrimPrefix(rest, []byte("\r\n"))
		rest = bytes.TrimPrefix(rest, []byte("\n"))

		end := bytes.Index(rest, []byte("endstream"))
		if end == -1 {
			break
		}
		raw := rest[:end]
		rest = rest[end+len("endstream"):]

		r, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		decoded, err := io.ReadAll(r)
		_ = r.Close()
		if err != nil {
			continue
		}
		b.Write(decoded)
	}

	if b.Len() == 0 {
		t.Fatal("no page content streams decoded")
	}
	return b.String()
}

// TestExportPaginatesLongItinerary проверяет перенос длинного маршрута на
// несколько страниц.
func TestExportPaginatesLongItinerary(t *testing.T) {
	doc, req := longItinerary()

	p := build(doc, req)
	if err := p.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.PageCount(); got < 2 {
		t.Fatalf("expected at least 2 pages, got %d", got)
	}
}

// TestExportFooterPageNumbers проверяет, что каждая страница получает свой
// номер в колонтитуле и номер последней совпадает с числом страниц.
func TestExportFooterPageNumbers(t *testing.T) {
	doc, req := longItinerary()

	p := build(doc, req)
	if err := p.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pages := p.PageCount()
	if pages < 2 {
		t.Fatalf("expected a multi-page document, got %d pages", pages)
	}

	out, err := Export(doc, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := pageText(t, out)
	for n := 1; n <= pages; n++ {
		marker := fmt.Sprintf("(Page %d)", n)
		if got := strings.Count(text, marker); got != 1 {
			t.Fatalf("expected footer %q exactly once, got %d occurrences", marker, got)
		}
	}
	if marker := fmt.Sprintf("(Page %d)", pages+1); strings.Contains(text, marker) {
		t.Fatalf("unexpected footer %q beyond the page count", marker)
	}
}

// TestExportFallbackSummary проверяет синтез summary при его отсутствии.
func TestExportFallbackSummary(t *testing.T) {
	doc := itinerary.Document{Days: []itinerary.Day{{Day: 1}}}

	out, err := Export(doc, exportRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Текст страниц сжат, но сам вызов не должен падать на пустых полях.
	if len(out) == 0 {
		t.Fatalf("expected non-empty output")
	}
}

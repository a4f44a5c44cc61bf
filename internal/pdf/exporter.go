package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/render"
)

const (
	margin     = 20.0
	resetY     = 25.0
	lineHeight = 4.5

	tagline = "Smart AI-Powered Itinerary Generator for Travel Professionals"
)

// Пороги по оси Y, после которых секция переносится на новую страницу.
const (
	dayBreak     = 210.0
	lineBreak    = 265.0
	tipBreak     = 240.0
	spotsBreak   = 170.0
	spotBreak    = 240.0
	summaryBreak = 220.0
)

var overviewLabelRe = regexp.MustCompile(`(?i)^Overview:\s*`)

// Export строит PDF-документ маршрута и возвращает его байты.
func Export(doc itinerary.Document, req itinerary.TripRequest) ([]byte, error) {
	pdf := build(doc, req)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename собирает имя файла выгрузки из первого направления поездки.
func Filename(destinations []string) string {
	slug := "trip"
	if len(destinations) > 0 {
		if fields := strings.Fields(strings.ToLower(destinations[0])); len(fields) > 0 {
			slug = strings.Join(fields, "-")
		}
	}
	return "tripstar-itinerary-" + slug + ".pdf"
}

func build(doc itinerary.Document, req itinerary.TripRequest) *gofpdf.Fpdf {
	doc.Sanitize()

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("TripStar Itinerary - "+strings.Join(req.Destinations, ", "), false)
	p.SetSubject("AI-Generated Travel Itinerary", false)
	p.SetAuthor("TripStar AI", false)
	p.SetKeywords("travel, itinerary, ai, planning", false)
	p.SetCreator("TripStar AI", false)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	w := &writer{pdf: p, tr: p.UnicodeTranslatorFromDescriptor(""), y: resetY, page: 1}

	w.cover(req)

	for _, day := range doc.Days {
		w.day(day, req)
	}

	w.trendingSpots(doc.PopularSpots)
	w.summary(doc, req)

	w.footer()
	return p
}

type writer struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	y    float64
	page int
}

// breakIf переносит курсор на новую страницу, когда текущая позиция ниже порога.
func (w *writer) breakIf(limit float64) {
	if w.y > limit {
		w.footer()
		w.pdf.AddPage()
		w.page++
		w.y = resetY
	}
}

func (w *writer) contentWidth() float64 {
	pageWidth, _ := w.pdf.GetPageSize()
	return pageWidth - 2*margin
}

func (w *writer) split(text string, width float64) []string {
	return w.pdf.SplitText(w.tr(text), width)
}

func (w *writer) cover(req itinerary.TripRequest) {
	// Иконка глобуса
	w.pdf.SetFillColor(70, 130, 180)
	w.pdf.Circle(23, 20, 3, "F")

	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "B", 22)
	w.pdf.Text(30, 23, "TripStar AI")

	w.pdf.SetFont("Helvetica", "", 9)
	w.pdf.SetTextColor(100, 100, 100)
	w.pdf.Text(margin, 32, tagline)

	destination := "Destination"
	if len(req.Destinations) > 0 && req.Destinations[0] != "" {
		destination = req.Destinations[0]
	}
	w.pdf.SetFont("Helvetica", "B", 20)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Text(margin, 50, w.tr(fmt.Sprintf("Your %s Itinerary", destination)))

	w.y = 70
}

func (w *writer) day(day itinerary.Day, req itinerary.TripRequest) {
	w.breakIf(dayBreak)

	header := fmt.Sprintf("Day %d", day.Day)
	if date, err := req.DateForDay(day.Day); err == nil {
		header = fmt.Sprintf("Day %d - %s", day.Day, date.Format("Monday, January 2"))
	}

	firstDestination := ""
	if len(req.Destinations) > 0 {
		firstDestination = req.Destinations[0]
	}

	// Иконка календаря
	w.pdf.SetFillColor(240, 240, 240)
	w.pdf.RoundedRect(margin, w.y-3.5, 6, 6, 1, "1234", "F")
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "B", 8)
	w.pdf.Text(margin+2, w.y+1.5, "D")

	w.pdf.SetFont("Helvetica", "B", 11)
	w.pdf.Text(margin+9, w.y+1, w.tr(header))
	w.y += 10

	w.pdf.SetFont("Helvetica", "B", 13)
	for _, line := range w.split(day.TitleOrDefault(firstDestination), w.contentWidth()) {
		w.breakIf(lineBreak)
		w.pdf.Text(margin, w.y, line)
		w.y += 6
	}
	w.y += 2

	w.overview(day.DescriptionOrDefault())
	w.activities(day.Activities)
	w.y += 2

	w.travelTip(day.TipOrDefault())
}

func (w *writer) overview(description string) {
	w.pdf.SetFont("Helvetica", "B", 9)
	label := "Overview: "
	labelWidth := w.pdf.GetStringWidth(label)
	w.pdf.Text(margin, w.y, label)

	w.pdf.SetFont("Helvetica", "", 9)
	lines := w.split(overviewLabelRe.ReplaceAllString(description, ""), w.contentWidth())
	if len(lines) == 0 {
		w.y += lineHeight + 4
		return
	}

	// Первая строка продолжает строку с меткой.
	first := w.pdf.SplitText(lines[0], w.contentWidth()-labelWidth)
	if len(first) > 0 {
		w.pdf.Text(margin+labelWidth, w.y, first[0])
	}
	w.y += lineHeight

	for _, line := range lines[1:] {
		w.breakIf(lineBreak)
		w.pdf.Text(margin, w.y, line)
		w.y += lineHeight
	}
	w.y += 4
}

func (w *writer) activities(activities itinerary.Activities) {
	w.pdf.SetFont("Helvetica", "B", 9)
	w.pdf.Text(margin, w.y, "Daily Activities:")
	w.y += 6

	w.pdf.SetFont("Helvetica", "", 9)
	for _, item := range activityTexts(activities) {
		w.breakIf(lineBreak)

		w.pdf.Text(margin, w.y, w.tr("•"))

		lines := w.split(item, w.contentWidth()-6)
		for i, line := range lines {
			if i > 0 {
				w.breakIf(lineBreak)
			}
			w.pdf.Text(margin+4, w.y, line)
			if i < len(lines)-1 {
				w.y += lineHeight
			}
		}
		w.y += 6
	}
}

func activityTexts(activities itinerary.Activities) []string {
	if activities.IsStructured() {
		texts := make([]string, 0, len(activities.Structured))
		for _, activity := range activities.Structured {
			timeLabel := activity.Time
			if timeLabel == "" {
				timeLabel = "All day"
			}
			texts = append(texts, itinerary.Clean(timeLabel+" "+activity.Description))
		}
		return texts
	}
	return activities.Plain
}

func (w *writer) travelTip(tip string) {
	if tip == "" {
		w.y += 5
		return
	}
	w.breakIf(tipBreak)

	// Иконка лампочки
	w.pdf.SetFillColor(255, 215, 0)
	w.pdf.Circle(margin+3, w.y+1, 2.5, "F")
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "B", 8)
	w.pdf.Text(margin+2.5, w.y+2.5, "!")

	w.pdf.SetFont("Helvetica", "B", 10)
	w.pdf.Text(margin+8, w.y+2.5, "Travel Tip")
	w.y += 8

	w.pdf.SetFont("Helvetica", "", 9)
	for _, line := range w.split(tip, w.contentWidth()) {
		w.breakIf(lineBreak)
		w.pdf.Text(margin, w.y, line)
		w.y += lineHeight
	}
	w.y += 8
}

func (w *writer) trendingSpots(spots []itinerary.Spot) {
	w.breakIf(spotsBreak)

	// Иконка огонька
	w.pdf.SetFillColor(255, 100, 0)
	w.pdf.Circle(margin+3, w.y+1.5, 2.5, "F")

	w.pdf.SetFont("Helvetica", "B", 13)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Text(margin+9, w.y+2.5, "Currently Trending in Your Destinations")
	w.y += 12

	for i, spot := range spots {
		w.breakIf(spotBreak)

		name := spot.Name
		if name == "" {
			name = fmt.Sprintf("Popular Spot %d", i+1)
		}
		description := spot.Description
		if description == "" {
			description = "Explore this popular destination."
		}

		w.pdf.SetFont("Helvetica", "B", 11)
		w.pdf.Text(margin, w.y, w.tr(name))
		w.y += 6

		w.pdf.SetFont("Helvetica", "", 9)
		for _, line := range w.split(description, w.contentWidth()) {
			w.breakIf(lineBreak)
			w.pdf.Text(margin, w.y, line)
			w.y += lineHeight
		}
		w.y += 7
	}
}

func (w *writer) summary(doc itinerary.Document, req itinerary.TripRequest) {
	w.breakIf(summaryBreak)

	// Иконка планшета
	w.pdf.SetFillColor(200, 200, 200)
	w.pdf.RoundedRect(margin, w.y-2, 5, 6, 1, "1234", "F")
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "", 7)
	w.pdf.Text(margin+1.5, w.y+2, "S")

	w.pdf.SetFont("Helvetica", "B", 13)
	w.pdf.Text(margin+8, w.y+2, "Trip Summary")
	w.y += 10

	summary := doc.Summary
	if summary == "" {
		destination := ""
		if len(req.Destinations) > 0 {
			destination = req.Destinations[0]
		}
		summary = fmt.Sprintf(
			"This carefully curated %d-day journey through %s is designed for %s travelers with a %s%s budget. "+
				"Experience an authentic blend of culture, cuisine, and adventure.",
			req.Days(), destination, strings.ToLower(req.TravelerType),
			req.CurrencySymbol, render.FormatAmount(req.Budget))
	}

	w.pdf.SetFont("Helvetica", "", 9)
	for _, line := range w.split(summary, w.contentWidth()) {
		w.breakIf(lineBreak)
		w.pdf.Text(margin, w.y, line)
		w.y += lineHeight
	}
}

// footer рисует колонтитул текущей страницы: копирайт, слоган и номер.
func (w *writer) footer() {
	pageWidth, pageHeight := w.pdf.GetPageSize()
	footerY := pageHeight - 10

	w.pdf.SetFont("Helvetica", "", 8)
	w.pdf.SetTextColor(120, 120, 120)

	left := w.tr(fmt.Sprintf("© %d TripStar AI. All rights reserved.", time.Now().Year()))
	w.pdf.Text(margin, footerY, left)

	center := w.tr(tagline)
	w.pdf.Text(pageWidth/2-w.pdf.GetStringWidth(center)/2, footerY, center)

	right := w.tr(fmt.Sprintf("Page %d", w.page))
	w.pdf.Text(pageWidth-margin-w.pdf.GetStringWidth(right), footerY, right)

	w.pdf.SetTextColor(0, 0, 0)
}

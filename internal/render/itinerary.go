package render

import (
	"fmt"
	"html"
	"strings"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
)

// Itinerary превращает документ маршрута и параметры поездки в HTML-фрагмент.
// Поля документа проходят санитизацию, весь текст экранируется.
func Itinerary(doc itinerary.Document, req itinerary.TripRequest) string {
	doc.Sanitize()

	var b strings.Builder

	b.WriteString(fmt.Sprintf(`<h2 class="result-title">Your %s Itinerary</h2>`,
		esc(strings.Join(req.Destinations, " & "))))

	b.WriteString(`<div class="itinerary-container">`)
	if len(doc.Days) == 0 {
		b.WriteString("<p>No itinerary data available. Please try again.</p>")
	} else {
		for _, day := range doc.Days {
			writeDayCard(&b, day, req)
		}
	}
	b.WriteString(`</div>`)

	writeSpots(&b, doc.PopularSpots, req.Plan)
	writeSummary(&b, doc, req)

	return b.String()
}

func writeDayCard(b *strings.Builder, day itinerary.Day, req itinerary.TripRequest) {
	header := fmt.Sprintf("Day %d", day.Day)
	if date, err := req.DateForDay(day.Day); err == nil {
		header = fmt.Sprintf("Day %d - %s", day.Day, date.Format("Monday, January 2"))
	}

	firstDestination := ""
	if len(req.Destinations) > 0 {
		firstDestination = req.Destinations[0]
	}

	b.WriteString(`<div class="day-card">`)
	b.WriteString(fmt.Sprintf(`<div class="day-header">📅 %s</div>`, esc(header)))
	b.WriteString(`<div class="day-content">`)
	b.WriteString(fmt.Sprintf(`<h3>%s</h3>`, esc(day.TitleOrDefault(firstDestination))))
	b.WriteString(fmt.Sprintf(`<p><strong>Overview:</strong> %s</p>`, esc(day.DescriptionOrDefault())))

	writeActivities(b, day.Activities, req.Plan)

	b.WriteString(`<div class="pro-section"><h4>💡 Travel Tip</h4>`)
	b.WriteString(fmt.Sprintf(`<p>%s</p></div>`, esc(day.TipOrDefault())))

	if req.Plan == models.PlanPro {
		writeProDetails(b, day)
	}

	b.WriteString(`</div></div>`)
}

func writeActivities(b *strings.Builder, activities itinerary.Activities, plan models.Plan) {
	if activities.Empty() {
		b.WriteString("<p>No activities planned for this day.</p>")
		return
	}

	if plan == models.PlanPro && activities.IsStructured() {
		b.WriteString(`<div class="pro-activities"><h4>Daily Activities:</h4>`)
		for _, activity := range activities.Structured {
			b.WriteString(`<div class="pro-activity-item">`)
			timeLabel := activity.Time
			if timeLabel == "" {
				timeLabel = "All day"
			}
			b.WriteString(fmt.Sprintf(`<div class="activity-time">%s</div>`, esc(itinerary.Clean(timeLabel))))
			b.WriteString(fmt.Sprintf(`<div class="activity-desc">%s</div>`, esc(itinerary.Clean(activity.Description))))
			if activity.Cost != "" {
				b.WriteString(fmt.Sprintf(`<div class="activity-meta">💰 %s</div>`, esc(itinerary.Clean(activity.Cost))))
			}
			if activity.Duration != "" {
				b.WriteString(fmt.Sprintf(`<div class="activity-meta">⏱️ %s</div>`, esc(itinerary.Clean(activity.Duration))))
			}
			if activity.BookingLink != "" && activity.BookingLink != "#" {
				b.WriteString(fmt.Sprintf(`<a href="%s" class="booking-link-small" target="_blank">Book Now</a>`, esc(activity.BookingLink)))
			}
			if activity.MoneySavingTip != "" {
				b.WriteString(fmt.Sprintf(`<div class="money-saving-tip-small">💡 %s</div>`, esc(itinerary.Clean(activity.MoneySavingTip))))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		return
	}

	b.WriteString(`<div class="activities-section"><h4>Daily Activities:</h4><ul class="activities-list">`)
	for _, activity := range activities.Plain {
		b.WriteString(fmt.Sprintf(`<li class="activity-item">%s</li>`, esc(activity)))
	}
	b.WriteString(`</ul></div>`)
}

func writeProDetails(b *strings.Builder, day itinerary.Day) {
	b.WriteString(`<div class="pro-details">`)
	if day.Transportation != "" {
		b.WriteString(fmt.Sprintf(`<p><strong>Transportation:</strong> %s</p>`, esc(itinerary.Clean(day.Transportation))))
	}
	if day.Accommodation != "" {
		b.WriteString(fmt.Sprintf(`<p><strong>Accommodation:</strong> %s</p>`, esc(itinerary.Clean(day.Accommodation))))
	}
	if day.Dining != "" {
		b.WriteString(fmt.Sprintf(`<p><strong>Dining:</strong> %s</p>`, esc(itinerary.Clean(day.Dining))))
	}
	if day.DailyBudget != "" {
		b.WriteString(fmt.Sprintf(`<p><strong>Daily Budget:</strong> %s</p>`, esc(itinerary.Clean(day.DailyBudget))))
	}
	b.WriteString(`</div>`)
}

func writeSpots(b *strings.Builder, spots []itinerary.Spot, plan models.Plan) {
	b.WriteString(`<div class="spots-grid">`)
	if len(spots) == 0 {
		b.WriteString("<p>No popular spots information available.</p></div>")
		return
	}

	for _, spot := range spots {
		class := "spot-card"
		if plan == models.PlanPro {
			class = "spot-card pro-spot"
		}
		b.WriteString(fmt.Sprintf(`<div class="%s">`, class))
		b.WriteString(fmt.Sprintf(`<h4>%s</h4>`, esc(spot.Name)))
		b.WriteString(fmt.Sprintf(`<p>%s</p>`, esc(spot.Description)))
		if plan == models.PlanPro && spot.BookingLink != "" && spot.BookingLink != "#" {
			b.WriteString(fmt.Sprintf(`<a href="%s" class="booking-link" target="_blank">Book Tickets</a>`, esc(spot.BookingLink)))
		} else {
			b.WriteString(`<p class="upsell">⭐ Upgrade to Pro for booking links</p>`)
		}
		if spot.MoneySavingTip != "" {
			b.WriteString(fmt.Sprintf(`<div class="money-saving-tip">💡 %s</div>`, esc(itinerary.Clean(spot.MoneySavingTip))))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeSummary(b *strings.Builder, doc itinerary.Document, req itinerary.TripRequest) {
	summary := doc.Summary
	if summary == "" {
		summary = SynthesizeSummary(req)
	}

	b.WriteString(`<div class="trip-summary"><h3>Trip Summary</h3>`)
	b.WriteString(fmt.Sprintf(`<p class="summary-text">%s</p></div>`, esc(summary)))
}

// SynthesizeSummary строит обзор поездки из параметров формы, когда документ
// не содержит собственного summary.
func SynthesizeSummary(req itinerary.TripRequest) string {
	summary := fmt.Sprintf(
		"This %d-day %s trip to %s is perfectly crafted for your interests in %s. "+
			"With a budget of %s%s, you'll experience the best of local culture, cuisine, and attractions.",
		req.Days(), strings.ToLower(req.TravelerType), strings.Join(req.Destinations, " and "),
		req.Interests, req.CurrencySymbol, FormatAmount(req.Budget))

	if req.Notes != "" {
		summary += " Special notes: " + req.Notes
	}
	return summary
}

// FormatAmount форматирует сумму с разделителями тысяч.
func FormatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}

func esc(text string) string {
	return html.EscapeString(text)
}

package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"example.com/tripstar/backend/internal/flights"
)

// Flights превращает результат поиска перелетов в HTML-фрагмент с карточками
// по этапам поездки.
func Flights(result flights.SearchResult) string {
	var b strings.Builder

	b.WriteString(`<div class="flights-section"><h3>✈️ Flight Options</h3>`)

	for _, segment := range result.Segments {
		b.WriteString(`<div class="flight-segment">`)
		b.WriteString(fmt.Sprintf(`<div class="segment-header">%s → %s</div>`,
			esc(segment.DepartureCity), esc(segment.Destination)))
		b.WriteString(fmt.Sprintf(`<div class="segment-date">%s · %s</div>`,
			esc(segment.Segment), esc(segment.OutboundDate)))

		for _, option := range segment.Options {
			writeFlightCard(&b, option, result.SearchLink)
		}
		b.WriteString(`</div>`)
	}

	tips := result.Tips
	if len(tips) == 0 {
		tips = flights.GeneralBookingTips()
	}
	b.WriteString(`<div class="booking-tips"><h4>Booking Tips</h4><ul>`)
	for _, tip := range tips {
		b.WriteString(fmt.Sprintf(`<li>%s</li>`, esc(tip)))
	}
	b.WriteString(`</ul></div>`)

	b.WriteString(`</div>`)
	return b.String()
}

func writeFlightCard(b *strings.Builder, option flights.Option, searchLink string) {
	b.WriteString(`<div class="flight-card">`)
	b.WriteString(fmt.Sprintf(`<div class="flight-airline">%s · %s</div>`,
		esc(option.Airline), esc(option.FlightNumber)))

	meta := fmt.Sprintf("%s · %s", option.Duration, stopsLabel(option.Stops))
	if option.Layover != "" {
		meta += fmt.Sprintf(" · Layover: %s", option.Layover)
	}
	b.WriteString(fmt.Sprintf(`<div class="flight-meta">%s</div>`, esc(meta)))

	classes := make([]string, 0, len(option.Classes))
	for key := range option.Classes {
		classes = append(classes, key)
	}
	sort.Strings(classes)

	for _, key := range classes {
		class := option.Classes[key]
		if !class.Available {
			continue
		}
		b.WriteString(fmt.Sprintf(
			`<div class="cabin-row"><span class="cabin-name">%s</span><span class="cabin-price">%s</span><span class="cabin-seats">%d seats left</span></div>`,
			esc(formatCabinName(key)), esc(class.Price), class.SeatsLeft))
	}

	link := option.BookingLink
	if link == "" {
		link = searchLink
	}
	if link != "" {
		b.WriteString(fmt.Sprintf(`<a href="%s" class="booking-link" target="_blank">Book Flight</a>`, esc(link)))
	}

	if len(option.Tips) > 0 {
		b.WriteString(`<ul class="flight-tips">`)
		for _, tip := range option.Tips {
			b.WriteString(fmt.Sprintf(`<li>💡 %s</li>`, esc(tip)))
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`</div>`)
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// formatCabinName разбивает ключ класса по внутренним заглавным буквам:
// "premiumEconomy" становится "Premium Economy".
func formatCabinName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

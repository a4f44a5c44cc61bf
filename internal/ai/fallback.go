package ai

import (
	"fmt"
	"strings"

	"example.com/tripstar/backend/internal/itinerary"
)

// FallbackItinerary строит шаблонный маршрут, когда генератор недоступен
// или вернул невалидный ответ.
func FallbackItinerary(req itinerary.TripRequest) itinerary.Document {
	destination := firstDestination(req)
	days := req.Days()
	if days < 1 {
		days = 1
	}

	doc := itinerary.Document{
		PopularSpots: []itinerary.Spot{
			{
				Name:        fmt.Sprintf("%s Historic Center", destination),
				Description: fmt.Sprintf("Explore the cultural heart of %s with stunning architecture dating back centuries.", destination),
			},
			{
				Name:        "Local Food Markets",
				Description: fmt.Sprintf("Experience authentic culinary traditions at %s's bustling local markets.", destination),
			},
		},
		Summary: fmt.Sprintf("This %d-day journey through %s is designed for %s travelers with a %s%.0f budget.",
			days, destination, strings.ToLower(req.TravelerType), req.CurrencySymbol, req.Budget),
	}

	for day := 1; day <= days; day++ {
		switch {
		case day == 1:
			doc.Days = append(doc.Days, itinerary.Day{
				Day:         day,
				Title:       fmt.Sprintf("Welcome to %s", destination),
				Description: fmt.Sprintf("Your adventure begins with an introduction to %s's rich cultural heritage.", destination),
				Activities: itinerary.Activities{Plain: []string{
					fmt.Sprintf("Morning: Arrive in %s and check into accommodation", destination),
					"Afternoon: Orientation walk through the main historical area",
					"Evening: Welcome dinner at a traditional restaurant",
				}},
				Tip: "Take time to absorb the local atmosphere and observe daily life patterns.",
			})
		case day == days:
			doc.Days = append(doc.Days, itinerary.Day{
				Day:         day,
				Title:       "Final Explorations",
				Description: "Make the most of your last hours with final explorations.",
				Activities: itinerary.Activities{Plain: []string{
					"Morning: Last-minute souvenir shopping at local markets",
					"Afternoon: Revisit your favorite spot",
					"Evening: Airport transfer and departure",
				}},
				Tip: "Pack main luggage the night before to allow time for final observations.",
			})
		default:
			doc.Days = append(doc.Days, itinerary.Day{
				Day:         day,
				Title:       fmt.Sprintf("Day %d Adventures", day),
				Description: fmt.Sprintf("Explore more of %s's unique character and traditions.", destination),
				Activities: itinerary.Activities{Plain: []string{
					"Morning: Guided exploration of cultural sites",
					"Afternoon: Hands-on local experience",
					"Evening: Free time to wander and dine locally",
				}},
				Tip: "Wear comfortable shoes and carry a refillable water bottle.",
			})
		}
	}

	return doc
}

// ProFallbackItinerary строит расширенный шаблонный маршрут для pro-тарифа.
func ProFallbackItinerary(req itinerary.TripRequest) itinerary.Document {
	destination := firstDestination(req)
	days := req.Days()
	if days < 1 {
		days = 1
	}

	budget := int(req.Budget)
	symbol := req.CurrencySymbol

	doc := itinerary.Document{
		PopularSpots: []itinerary.Spot{
			{
				Name:            fmt.Sprintf("%s Premium District", destination),
				Location:        destination,
				Description:     "Experience the finest attractions",
				BestTimeToVisit: "Morning",
				EntranceFee:     fmt.Sprintf("%s25-50", symbol),
				BookingLink:     "https://www.viator.com",
				MoneySavingTip:  "Book combo tickets online",
			},
		},
		BookingResources: map[string]string{
			"flights":    "https://www.skyscanner.com",
			"hotels":     "https://www.booking.com",
			"localTours": "https://www.viator.com",
		},
		BudgetBreakdown: &itinerary.BudgetBreakdown{
			Accommodation:  fmt.Sprintf("%s%d", symbol, budget*4/10),
			Activities:     fmt.Sprintf("%s%d", symbol, budget*3/10),
			Food:           fmt.Sprintf("%s%d", symbol, budget*2/10),
			Transportation: fmt.Sprintf("%s%d", symbol, budget*1/10),
			TotalEstimated: fmt.Sprintf("%s%d", symbol, budget),
			MoneySavingStrategies: []string{
				"Book 2-3 months in advance",
				"Use credit card travel benefits",
				"Consider shoulder season travel",
			},
		},
		Summary: fmt.Sprintf("This premium %d-day itinerary offers luxury experiences in %s", days, destination),
	}

	for day := 1; day <= days; day++ {
		doc.Days = append(doc.Days, itinerary.Day{
			Day:         day,
			Location:    destination,
			Title:       fmt.Sprintf("Day %d in %s", day, destination),
			Description: fmt.Sprintf("Explore %s's premium attractions", destination),
			Activities: itinerary.Activities{Structured: []itinerary.Activity{
				{
					Time:           "Morning (9:00-12:00)",
					Description:    "Luxury guided tour",
					Duration:       "3 hours",
					Cost:           fmt.Sprintf("%s80-120", symbol),
					BookingLink:    "https://www.viator.com",
					MoneySavingTip: "Book 7 days in advance for 20% discount",
				},
			}},
			Transportation: "Private transfers included",
			Accommodation:  fmt.Sprintf("5-star hotel in %s", destination),
			Dining:         "Fine dining experiences",
			DailyBudget:    fmt.Sprintf("%s250-400", symbol),
			Tip:            "Book early for best rates",
		})
	}

	return doc
}

func firstDestination(req itinerary.TripRequest) string {
	if len(req.Destinations) > 0 && req.Destinations[0] != "" {
		return req.Destinations[0]
	}
	return "your destination"
}

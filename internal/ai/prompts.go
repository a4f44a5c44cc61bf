package ai

import (
	"fmt"
	"strings"

	"example.com/tripstar/backend/internal/itinerary"
)

func buildFreePrompt(req itinerary.TripRequest) string {
	destinations := strings.Join(req.Destinations, ", ")
	if destinations == "" {
		destinations = "your destination"
	}

	interests := req.Interests
	if interests == "" {
		interests = "General sightseeing"
	}

	notesSection := ""
	if req.Notes != "" {
		notesSection = fmt.Sprintf("\n- Special Notes: %s", req.Notes)
	}

	days := req.Days()

	return fmt.Sprintf(`Create a comprehensive %d-day travel itinerary for:

TRIP DETAILS:
- Traveler: %s (%s)
- Destinations: %s
- Dates: %s to %s
- Budget: %s%.0f
- Interests: %s%s

Respond with ONLY this JSON structure (no markdown, no explanations):

{
  "days": [
    {
      "day": 1,
      "title": "Day Title",
      "description": "Day overview",
      "activities": [
        "Morning: Activity details",
        "Afternoon: Activity details",
        "Evening: Activity details"
      ],
      "tip": "Practical travel tip"
    }
  ],
  "popularSpots": [
    {
      "name": "Spot Name",
      "description": "Detailed description"
    }
  ],
  "summary": "Trip overview"
}

Create exactly %d days with detailed activities.`,
		days, req.UserName, req.TravelerType, destinations,
		req.StartDate, req.EndDate, req.CurrencySymbol, req.Budget,
		interests, notesSection, days)
}

func buildProPrompt(req itinerary.TripRequest) string {
	destinations := strings.Join(req.Destinations, ", ")
	if destinations == "" {
		destinations = "your destination"
	}

	interests := req.Interests
	if interests == "" {
		interests = "General sightseeing"
	}

	days := req.Days()
	budget := int(req.Budget)
	symbol := req.CurrencySymbol

	return fmt.Sprintf(`Create a comprehensive %d-day PRO travel itinerary with:

TRIP DETAILS:
- Traveler: %s (%s)
- Destinations: %s
- Dates: %s to %s
- Budget: %s%d
- Interests: %s
- Special Notes: %s

RESPOND WITH THIS JSON STRUCTURE:
{
  "days": [
    {
      "day": 1,
      "location": "City Name",
      "title": "Day Title",
      "description": "Overview",
      "activities": [
        {
          "time": "Morning (8:00-12:00)",
          "description": "Activity description",
          "duration": "2-3 hours",
          "cost": "%s50-100",
          "bookingLink": "https://www.viator.com",
          "moneySavingTip": "Tip here"
        }
      ],
      "transportation": "Transport details",
      "accommodation": "Hotel recommendations",
      "dining": "Restaurant recommendations",
      "dailyBudget": "%s200-300",
      "tip": "Pro tip"
    }
  ],
  "popularSpots": [
    {
      "name": "Spot Name",
      "location": "City Name",
      "description": "Description",
      "bestTimeToVisit": "Morning",
      "entranceFee": "%s20",
      "bookingLink": "https://www.viator.com",
      "moneySavingTip": "Saving tip"
    }
  ],
  "bookingResources": {
    "flights": "https://www.skyscanner.com",
    "hotels": "https://www.booking.com",
    "localTours": "https://www.viator.com"
  },
  "budgetBreakdown": {
    "accommodation": "%s%d",
    "activities": "%s%d",
    "food": "%s%d",
    "transportation": "%s%d",
    "totalEstimated": "%s%d",
    "moneySavingStrategies": ["Strategy 1", "Strategy 2"]
  },
  "summary": "Overview covering all destinations"
}

Create exactly %d days across destinations: %s`,
		days, req.UserName, req.TravelerType, destinations,
		req.StartDate, req.EndDate, symbol, budget, interests, req.Notes,
		symbol, symbol, symbol,
		symbol, budget*4/10,
		symbol, budget*3/10,
		symbol, budget*2/10,
		symbol, budget*1/10,
		symbol, budget,
		days, destinations)
}

func buildInterestsPrompt(destinations []string) string {
	return fmt.Sprintf(`Based on these travel destinations: %s

Suggest 12-15 most relevant travel interest categories that would appeal to various types of travelers.
Return ONLY a JSON array of strings, no explanations.

Example: ["Historical Sites", "Local Cuisine", "Adventure Sports", "Art Museums", "Beach Activities", "Nightlife", "Shopping", "Nature & Parks", "Cultural Experiences", "Wellness & Spas", "Family Activities", "Photography Spots"]

Focus on interests that are most relevant to the specific destinations mentioned.`,
		strings.Join(destinations, ", "))
}

package flights

import "fmt"

// fallbackOptions строит правдоподобные варианты перелета, когда Amadeus
// не настроен или недоступен. Данные детерминированы для пары аэропортов.
func fallbackOptions(origin, destination, currencySymbol string) []Option {
	type routeInfo struct {
		basePrice float64
		duration  int // minutes
	}

	routes := map[string]routeInfo{
		"LHR-CDG": {80, 75}, "CDG-LHR": {80, 75},
		"LHR-JFK": {450, 480}, "JFK-LHR": {450, 480},
		"LHR-FCO": {130, 150}, "FCO-LHR": {130, 150},
		"CDG-FCO": {110, 120}, "FCO-CDG": {110, 120},
		"FRA-IST": {150, 165}, "IST-FRA": {150, 165},
		"IST-DXB": {250, 240}, "DXB-IST": {250, 240},
		"LHR-DXB": {320, 420}, "DXB-LHR": {320, 420},
		"JFK-LAX": {220, 360}, "LAX-JFK": {220, 360},
		"SIN-BKK": {120, 150}, "BKK-SIN": {120, 150},
		"HND-ICN": {180, 150}, "ICN-HND": {180, 150},
	}

	key := origin + "-" + destination
	info, ok := routes[key]
	if !ok {
		info = routeInfo{350, 240}
	}

	type airlineOption struct {
		name         string
		code         string
		priceMod     float64
		stops        int
		layover      string
		businessMod  float64
		economySeats int
	}
	carriers := []airlineOption{
		{"Turkish Airlines", "TK", 1.00, 0, "", 2.8, 9},
		{"Lufthansa", "LH", 1.15, 0, "", 3.0, 5},
		{"Emirates", "EK", 1.30, 0, "", 3.2, 7},
		{"Wizz Air", "W6", 0.65, 1, "VIE", 0, 12},
		{"FlyDubai", "FZ", 0.80, 1, "DXB", 0, 4},
	}

	options := make([]Option, 0, len(carriers))
	for i, carrier := range carriers {
		price := info.basePrice * carrier.priceMod
		price = float64(int(price/5) * 5)

		dur := info.duration
		if carrier.stops > 0 {
			dur += 90
		}

		classes := map[string]CabinClass{
			"economy": {
				Price:     fmt.Sprintf("%s%.0f", currencySymbol, price),
				SeatsLeft: carrier.economySeats,
				Available: true,
			},
		}
		if carrier.businessMod > 0 {
			classes["business"] = CabinClass{
				Price:     fmt.Sprintf("%s%.0f", currencySymbol, price*carrier.businessMod),
				SeatsLeft: 2 + i,
				Available: true,
			}
		}

		options = append(options, Option{
			Airline:      carrier.name,
			FlightNumber: fmt.Sprintf("%s%d", carrier.code, 100+i*37),
			Duration:     formatMinutes(dur),
			Stops:        carrier.stops,
			Layover:      carrier.layover,
			Classes:      classes,
			Tips: []string{
				"Prices are estimates; confirm on the booking site.",
			},
		})
	}
	return options
}

// GeneralBookingTips возвращает общие советы по бронированию, добавляемые в конец
// ответа, когда поиск не вернул собственных подсказок.
func GeneralBookingTips() []string {
	return []string{
		"Book flights 6-8 weeks in advance for the best fares.",
		"Midweek departures are usually cheaper than weekends.",
		"Compare nearby airports before booking.",
		"Set fare alerts to catch price drops.",
	}
}

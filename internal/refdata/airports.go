package refdata

import "strings"

// Airport описывает запись справочника аэропортов для выбора городов.
type Airport struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
}

// DefaultSuggestions задает, сколько записей показывать при пустом запросе.
const DefaultSuggestions = 10

var airports = []Airport{
	{Code: "LHR", City: "London", Country: "United Kingdom", Name: "Heathrow Airport"},
	{Code: "CDG", City: "Paris", Country: "France", Name: "Charles de Gaulle Airport"},
	{Code: "JFK", City: "New York", Country: "United States", Name: "John F. Kennedy International Airport"},
	{Code: "LAX", City: "Los Angeles", Country: "United States", Name: "Los Angeles International Airport"},
	{Code: "DXB", City: "Dubai", Country: "United Arab Emirates", Name: "Dubai International Airport"},
	{Code: "HND", City: "Tokyo", Country: "Japan", Name: "Haneda Airport"},
	{Code: "NRT", City: "Tokyo", Country: "Japan", Name: "Narita International Airport"},
	{Code: "SIN", City: "Singapore", Country: "Singapore", Name: "Changi Airport"},
	{Code: "HKG", City: "Hong Kong", Country: "China", Name: "Hong Kong International Airport"},
	{Code: "FRA", City: "Frankfurt", Country: "Germany", Name: "Frankfurt Airport"},
	{Code: "AMS", City: "Amsterdam", Country: "Netherlands", Name: "Schiphol Airport"},
	{Code: "MAD", City: "Madrid", Country: "Spain", Name: "Adolfo Suarez Madrid-Barajas Airport"},
	{Code: "BCN", City: "Barcelona", Country: "Spain", Name: "Josep Tarradellas Barcelona-El Prat Airport"},
	{Code: "FCO", City: "Rome", Country: "Italy", Name: "Leonardo da Vinci-Fiumicino Airport"},
	{Code: "MXP", City: "Milan", Country: "Italy", Name: "Malpensa Airport"},
	{Code: "ATH", City: "Athens", Country: "Greece", Name: "Athens International Airport"},
	{Code: "IST", City: "Istanbul", Country: "Turkey", Name: "Istanbul Airport"},
	{Code: "DOH", City: "Doha", Country: "Qatar", Name: "Hamad International Airport"},
	{Code: "BKK", City: "Bangkok", Country: "Thailand", Name: "Suvarnabhumi Airport"},
	{Code: "KUL", City: "Kuala Lumpur", Country: "Malaysia", Name: "Kuala Lumpur International Airport"},
	{Code: "DEL", City: "New Delhi", Country: "India", Name: "Indira Gandhi International Airport"},
	{Code: "BOM", City: "Mumbai", Country: "India", Name: "Chhatrapati Shivaji Maharaj International Airport"},
	{Code: "SYD", City: "Sydney", Country: "Australia", Name: "Sydney Kingsford Smith Airport"},
	{Code: "MEL", City: "Melbourne", Country: "Australia", Name: "Melbourne Airport"},
	{Code: "AKL", City: "Auckland", Country: "New Zealand", Name: "Auckland Airport"},
	{Code: "YYZ", City: "Toronto", Country: "Canada", Name: "Toronto Pearson International Airport"},
	{Code: "YVR", City: "Vancouver", Country: "Canada", Name: "Vancouver International Airport"},
	{Code: "GRU", City: "Sao Paulo", Country: "Brazil", Name: "Sao Paulo-Guarulhos International Airport"},
	{Code: "EZE", City: "Buenos Aires", Country: "Argentina", Name: "Ministro Pistarini International Airport"},
	{Code: "MEX", City: "Mexico City", Country: "Mexico", Name: "Benito Juarez International Airport"},
	{Code: "CAI", City: "Cairo", Country: "Egypt", Name: "Cairo International Airport"},
	{Code: "JNB", City: "Johannesburg", Country: "South Africa", Name: "O.R. Tambo International Airport"},
	{Code: "CPT", City: "Cape Town", Country: "South Africa", Name: "Cape Town International Airport"},
	{Code: "NBO", City: "Nairobi", Country: "Kenya", Name: "Jomo Kenyatta International Airport"},
	{Code: "ICN", City: "Seoul", Country: "South Korea", Name: "Incheon International Airport"},
	{Code: "PEK", City: "Beijing", Country: "China", Name: "Beijing Capital International Airport"},
	{Code: "PVG", City: "Shanghai", Country: "China", Name: "Shanghai Pudong International Airport"},
	{Code: "SFO", City: "San Francisco", Country: "United States", Name: "San Francisco International Airport"},
	{Code: "MIA", City: "Miami", Country: "United States", Name: "Miami International Airport"},
	{Code: "ORD", City: "Chicago", Country: "United States", Name: "O'Hare International Airport"},
	{Code: "LIS", City: "Lisbon", Country: "Portugal", Name: "Humberto Delgado Airport"},
	{Code: "VIE", City: "Vienna", Country: "Austria", Name: "Vienna International Airport"},
	{Code: "ZRH", City: "Zurich", Country: "Switzerland", Name: "Zurich Airport"},
	{Code: "CPH", City: "Copenhagen", Country: "Denmark", Name: "Copenhagen Airport"},
	{Code: "OSL", City: "Oslo", Country: "Norway", Name: "Oslo Gardermoen Airport"},
	{Code: "ARN", City: "Stockholm", Country: "Sweden", Name: "Stockholm Arlanda Airport"},
	{Code: "HEL", City: "Helsinki", Country: "Finland", Name: "Helsinki-Vantaa Airport"},
	{Code: "WAW", City: "Warsaw", Country: "Poland", Name: "Warsaw Chopin Airport"},
	{Code: "PRG", City: "Prague", Country: "Czech Republic", Name: "Vaclav Havel Airport Prague"},
	{Code: "BUD", City: "Budapest", Country: "Hungary", Name: "Budapest Ferenc Liszt International Airport"},
}

// Airports возвращает полный справочник аэропортов.
func Airports() []Airport {
	return airports
}

// SuggestAirports реализует контракт автодополнения: пустой запрос дает
// первые DefaultSuggestions записей, иначе фильтр по подстроке без учета
// регистра по городу, коду, стране и названию аэропорта. Каждый запрос
// фильтрует полный справочник, а не предыдущий результат.
func SuggestAirports(query string) []Airport {
	if strings.TrimSpace(query) == "" {
		return airports[:DefaultSuggestions]
	}

	term := strings.ToLower(query)
	matched := []Airport{}
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.City), term) ||
			strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Country), term) ||
			strings.Contains(strings.ToLower(a.Name), term) {
			matched = append(matched, a)
		}
	}
	return matched
}

// AirportByCode ищет аэропорт по IATA-коду.
func AirportByCode(code string) (Airport, bool) {
	upper := strings.ToUpper(code)
	for _, a := range airports {
		if a.Code == upper {
			return a, true
		}
	}
	return Airport{}, false
}

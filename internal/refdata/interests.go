package refdata

// MaxInterests ограничивает список подсказок интересов.
const MaxInterests = 12

var countryInterests = map[string][]string{
	"France":    {"Wine Tasting", "Art Museums", "Historical Sites", "Gourmet Food", "Shopping", "Romantic Getaways", "Eiffel Tower", "Louvre Museum", "French Riviera", "Provence Lavender Fields", "Normandy D-Day Beaches", "Loire Valley Castles"},
	"Italy":     {"Historical Sites", "Art Museums", "Wine Tasting", "Cooking Classes", "Beach Relaxation", "Shopping", "Colosseum", "Venice Canals", "Tuscany Countryside", "Vatican City", "Amalfi Coast", "Italian Lakes"},
	"Japan":     {"Temples & Shrines", "Anime & Manga", "Sushi Making", "Hot Springs", "Cherry Blossoms", "Shopping", "Mount Fuji", "Tokyo Nightlife", "Traditional Gardens", "Bullet Train Experience", "Kyoto Geisha Districts", "Osaka Street Food"},
	"USA":       {"National Parks", "Theme Parks", "Shopping", "Beach Activities", "City Tours", "Food Tours", "Route 66 Road Trip", "New York Broadway", "Las Vegas Entertainment", "Grand Canyon", "California Coast", "Historical Landmarks"},
	"Spain":     {"Flamenco Shows", "Beach Relaxation", "Historical Sites", "Tapas Tours", "Shopping", "Nightlife", "Sagrada Familia", "Alhambra Palace", "Ibiza Clubs", "Madrid Art Museums", "Barcelona Architecture", "Andalusian Culture"},
	"Thailand":  {"Temples", "Beach Activities", "Elephant Sanctuaries", "Street Food", "Island Hopping", "Shopping", "Buddhist Temples", "Thai Massage", "Floating Markets", "Full Moon Parties", "Jungle Trekking", "Muay Thai"},
	"India":     {"Historical Monuments", "Yoga & Meditation", "Spiritual Sites", "Local Markets", "Wildlife Safaris", "Food Tours", "Taj Mahal", "Himalayan Trekking", "Kerala Backwaters", "Rajasthan Palaces", "Varanasi Ghats", "Goa Beaches"},
	"Australia": {"Beach Activities", "Wildlife Viewing", "Wine Tasting", "Outdoor Adventures", "City Tours", "Great Barrier Reef", "Sydney Opera House", "Outback Exploration", "Surfing Lessons", "Koala Sanctuaries", "Gold Coast Theme Parks", "Indigenous Culture"},
	"Greece":    {"Historical Sites", "Island Hopping", "Beach Relaxation", "Greek Cuisine", "Sunset Views", "Shopping", "Acropolis", "Santorini Sunsets", "Mykonos Nightlife", "Ancient Ruins", "Mediterranean Cooking", "Olive Oil Tasting"},
	"Germany":   {"Historical Sites", "Beer Tasting", "Castle Tours", "Christmas Markets", "City Tours", "Museums", "Neuschwanstein Castle", "Berlin Wall", "Oktoberfest", "Black Forest", "Romantic Road", "River Cruises"},
}

var defaultInterests = []string{"Historical Sites", "Local Cuisine", "Shopping", "Nature & Parks", "Cultural Experiences", "Adventure Activities", "Photography", "Wellness & Spas", "Nightlife", "Family Activities", "Art & Museums", "Beach Relaxation"}

// DefaultInterests возвращает универсальный набор интересов.
func DefaultInterests() []string {
	return defaultInterests
}

// InterestsFor объединяет интересы по выбранным направлениям в порядке
// их появления, без дублей и не более MaxInterests записей. Для неизвестных
// направлений используется универсальный набор.
func InterestsFor(destinations []string) []string {
	if len(destinations) == 0 {
		return defaultInterests
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, destination := range destinations {
		interests, ok := countryInterests[destination]
		if !ok {
			interests = defaultInterests
		}
		for _, interest := range interests {
			if _, dup := seen[interest]; dup {
				continue
			}
			seen[interest] = struct{}{}
			out = append(out, interest)
			if len(out) == MaxInterests {
				return out
			}
		}
	}
	return out
}

package flights

// SearchRequest содержит параметры поиска перелетов из формы.
type SearchRequest struct {
	DepartureCity  string   `json:"departure_city"`
	Destinations   []string `json:"destinations"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Budget         float64  `json:"budget"`
	CurrencySymbol string   `json:"currency_symbol"`
}

// SearchResult описывает нормализованный ответ поиска перелетов.
type SearchResult struct {
	SearchLink string    `json:"searchLink"`
	Segments   []Segment `json:"segments"`
	Tips       []string  `json:"tips,omitempty"`
}

// Segment описывает один этап мультигородского поиска.
type Segment struct {
	DepartureCity string   `json:"departureCity"`
	Destination   string   `json:"destination"`
	OutboundDate  string   `json:"outboundDate"`
	Segment       string   `json:"segment"`
	Options       []Option `json:"options"`
}

// Option описывает один вариант перелета внутри этапа.
type Option struct {
	Airline      string                `json:"airline"`
	FlightNumber string                `json:"flightNumber"`
	Duration     string                `json:"duration"`
	Stops        int                   `json:"stops"`
	Layover      string                `json:"layover,omitempty"`
	Classes      map[string]CabinClass `json:"classes"`
	BookingLink  string                `json:"bookingLink,omitempty"`
	Tips         []string              `json:"tips,omitempty"`
}

// CabinClass хранит цену и доступность одного класса обслуживания.
type CabinClass struct {
	Price     string `json:"price"`
	SeatsLeft int    `json:"seatsLeft"`
	Available bool   `json:"available"`
}

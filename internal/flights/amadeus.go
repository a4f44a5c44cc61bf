package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// AmadeusClient обращается к Amadeus Flight Offers Search API с кешированием
// OAuth2-токена.
type AmadeusClient struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAmadeusClient создает клиент Amadeus. При пустых ключах клиент считается
// не настроенным и поиск вернет ошибку.
func NewAmadeusClient(apiKey, apiSecret, baseURL string, timeout time.Duration) *AmadeusClient {
	return &AmadeusClient{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured сообщает, заданы ли ключи API.
func (c *AmadeusClient) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(ctx context.Context, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// SearchOffers ищет варианты перелета между двумя аэропортами на дату.
func (c *AmadeusClient) SearchOffers(ctx context.Context, origin, destination, departureDate, currency string) ([]Option, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&adults=1&max=6&currencyCode=%s",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		url.QueryEscape(departureDate),
		url.QueryEscape(currency),
	)

	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return parseFlightOffers(body)
}

type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	NumberOfBookableSeats int `json:"numberOfBookableSeats"`
	Price                 struct {
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
		} `json:"segments"`
	} `json:"itineraries"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

func parseFlightOffers(data []byte) ([]Option, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse flight offers: %w", err)
	}

	options := make([]Option, 0, len(resp.Data))
	for _, offer := range resp.Data {
		if len(offer.Itineraries) == 0 {
			continue
		}

		outbound := offer.Itineraries[0]
		if len(outbound.Segments) == 0 {
			continue
		}

		airlineCode := outbound.Segments[0].CarrierCode
		if airlineCode == "" && len(offer.ValidatingAirlineCodes) > 0 {
			airlineCode = offer.ValidatingAirlineCodes[0]
		}

		stops := len(outbound.Segments) - 1
		layover := ""
		if stops > 0 {
			codes := make([]string, 0, stops)
			for _, seg := range outbound.Segments[:len(outbound.Segments)-1] {
				codes = append(codes, seg.Arrival.IataCode)
			}
			layover = strings.Join(codes, ", ")
		}

		cabin := "economy"
		if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
			cabin = cabinClassKey(offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin)
		}

		seats := offer.NumberOfBookableSeats
		if seats <= 0 {
			seats = 1
		}

		options = append(options, Option{
			Airline:      airlineName(airlineCode),
			FlightNumber: airlineCode + outbound.Segments[0].Number,
			Duration:     formatISODuration(outbound.Duration),
			Stops:        stops,
			Layover:      layover,
			Classes: map[string]CabinClass{
				cabin: {
					Price:     offer.Price.Currency + " " + offer.Price.GrandTotal,
					SeatsLeft: seats,
					Available: true,
				},
			},
		})
	}

	return options, nil
}

// cabinClassKey переводит имя класса Amadeus в ключ ответа.
func cabinClassKey(cabin string) string {
	switch strings.ToUpper(cabin) {
	case "PREMIUM_ECONOMY":
		return "premiumEconomy"
	case "BUSINESS":
		return "business"
	case "FIRST":
		return "first"
	default:
		return "economy"
	}
}

// formatISODuration переводит ISO 8601 длительность (PT5H30M) в "5h 30m".
func formatISODuration(iso string) string {
	if iso == "" {
		return ""
	}
	iso = strings.TrimPrefix(iso, "PT")
	result := ""
	hIdx := strings.Index(iso, "H")
	mIdx := strings.Index(iso, "M")
	if hIdx >= 0 {
		result += iso[:hIdx] + "h"
		iso = iso[hIdx+1:]
		mIdx = strings.Index(iso, "M")
	}
	if mIdx >= 0 && mIdx < len(iso) {
		if result != "" {
			result += " "
		}
		result += iso[:mIdx] + "m"
	}
	return result
}

func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
	}
	return strconv.Itoa(h) + "h"
}

// airlineName возвращает полное имя авиакомпании по IATA-коду.
func airlineName(code string) string {
	names := map[string]string{
		"TK": "Turkish Airlines",
		"LH": "Lufthansa",
		"AF": "Air France",
		"BA": "British Airways",
		"EK": "Emirates",
		"QR": "Qatar Airways",
		"PC": "Pegasus Airlines",
		"FR": "Ryanair",
		"U2": "EasyJet",
		"W6": "Wizz Air",
		"FZ": "FlyDubai",
		"UA": "United Airlines",
		"AA": "American Airlines",
		"DL": "Delta Air Lines",
		"KL": "KLM",
		"IB": "Iberia",
		"AZ": "ITA Airways",
		"OS": "Austrian Airlines",
		"LX": "Swiss International Air Lines",
		"SQ": "Singapore Airlines",
		"CX": "Cathay Pacific",
		"NH": "ANA",
		"JL": "Japan Airlines",
		"EY": "Etihad Airways",
		"MS": "EgyptAir",
		"ET": "Ethiopian Airlines",
		"KQ": "Kenya Airways",
	}
	if name, ok := names[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return "Unknown Airline"
}

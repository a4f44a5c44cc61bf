package flights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"example.com/tripstar/backend/internal/refdata"
)

const dateLayout = "2006-01-02"

// Service строит мультигородской результат поиска: по одному этапу на
// направление, с вариантами от Amadeus либо детерминированной заменой.
type Service struct {
	client *AmadeusClient
	logger *slog.Logger
}

// NewService создает сервис поиска перелетов.
func NewService(client *AmadeusClient, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Search выполняет поиск по всем этапам поездки. Ошибки отдельных этапов не
// прерывают поиск: такой этап получает детерминированные варианты.
func (s *Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	if len(req.Destinations) == 0 {
		return SearchResult{}, errors.New("destinations are required")
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return SearchResult{}, fmt.Errorf("invalid start date: %w", err)
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return SearchResult{}, fmt.Errorf("invalid end date: %w", err)
	}

	tripDays := int(end.Sub(start).Hours()/24) + 1
	if tripDays < 1 {
		tripDays = 1
	}

	origin := req.DepartureCity
	originCode := placeCode(origin)
	usedFallback := false

	segments := make([]Segment, 0, len(req.Destinations))
	for i, destination := range req.Destinations {
		destinationCode := placeCode(destination)
		outbound := start.AddDate(0, 0, i*tripDays/len(req.Destinations))
		outboundDate := outbound.Format(dateLayout)

		options := s.searchLeg(ctx, originCode, destinationCode, outboundDate)
		if options == nil {
			options = fallbackOptions(originCode, destinationCode, req.CurrencySymbol)
			usedFallback = true
		}

		segments = append(segments, Segment{
			DepartureCity: origin,
			Destination:   destination,
			OutboundDate:  outboundDate,
			Segment:       fmt.Sprintf("Leg %d: %s to %s", i+1, origin, destination),
			Options:       options,
		})

		origin = destination
		originCode = destinationCode
	}

	result := SearchResult{
		SearchLink: searchLink(placeCode(req.DepartureCity), placeCode(req.Destinations[0]), start),
		Segments:   segments,
	}
	if usedFallback {
		result.Tips = GeneralBookingTips()
	}

	return result, nil
}

func (s *Service) searchLeg(ctx context.Context, origin, destination, date string) []Option {
	if s.client == nil || !s.client.Configured() {
		return nil
	}

	options, err := s.client.SearchOffers(ctx, origin, destination, date, "USD")
	if err != nil {
		s.logger.Warn("amadeus leg search failed",
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.String("error", err.Error()))
		return nil
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

func searchLink(origin, destination string, start time.Time) string {
	return fmt.Sprintf("https://www.skyscanner.com/transport/flights/%s/%s/%s/",
		strings.ToLower(origin), strings.ToLower(destination), start.Format("060102"))
}

// placeCode подбирает IATA-код для города или страны из справочника;
// для неизвестных мест берутся первые три буквы названия.
func placeCode(place string) string {
	if airport, ok := refdata.AirportByCode(place); ok {
		return airport.Code
	}

	matches := refdata.SuggestAirports(place)
	if strings.TrimSpace(place) != "" && len(matches) > 0 {
		return matches[0].Code
	}

	cleaned := strings.ToUpper(strings.ReplaceAll(place, " ", ""))
	if len(cleaned) >= 3 {
		return cleaned[:3]
	}
	return cleaned
}

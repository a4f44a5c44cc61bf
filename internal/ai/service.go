package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"example.com/tripstar/backend/internal/itinerary"
	"example.com/tripstar/backend/internal/models"
)

type Service struct {
	client Client
}

// NewService создает сервис работы с AI-клиентом.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// GenerateItinerary запрашивает у AI маршрут для выбранного тарифа и
// валидирует структуру ответа. Санитизация документа остается за вызывающим.
func (s *Service) GenerateItinerary(ctx context.Context, req itinerary.TripRequest) (itinerary.Document, string, []byte, error) {
	var prompt, system string
	if req.Plan == models.PlanPro {
		system = "You are an expert travel planner for premium clients. Create highly detailed, comprehensive itineraries with booking links and budget optimization tips. Respond with ONLY valid JSON, no markdown."
		prompt = buildProPrompt(req)
	} else {
		system = "You are a professional travel planner. You MUST respond with ONLY valid JSON, no markdown, no explanations, no code blocks. Just pure JSON."
		prompt = buildFreePrompt(req)
	}

	messages := []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return itinerary.Document{}, prompt, raw, err
	}

	var doc itinerary.Document
	if err := parseJSON(content, &doc); err != nil {
		return itinerary.Document{}, prompt, raw, err
	}

	if err := validateDocument(doc, req.Plan); err != nil {
		return itinerary.Document{}, prompt, raw, err
	}

	return doc, prompt, raw, nil
}

// SuggestInterests запрашивает у AI категории интересов для направлений.
func (s *Service) SuggestInterests(ctx context.Context, destinations []string) ([]string, string, []byte, error) {
	prompt := buildInterestsPrompt(destinations)

	messages := []Message{
		{Role: RoleSystem, Content: "You are a travel expert. Respond with ONLY a JSON array of strings, no other text."},
		{Role: RoleUser, Content: prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return nil, prompt, raw, err
	}

	payload := extractJSONArray(content)
	if payload == "" {
		return nil, prompt, raw, errors.New("ai response does not contain json array")
	}

	var interests []string
	if err := json.Unmarshal([]byte(payload), &interests); err != nil {
		return nil, prompt, raw, err
	}

	cleaned := make([]string, 0, len(interests))
	for _, interest := range interests {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	if len(cleaned) == 0 {
		return nil, prompt, raw, errors.New("ai returned no interests")
	}

	return cleaned, prompt, raw, nil
}

func parseJSON(input string, target interface{}) error {
	payload := extractJSON(input)
	if payload == "" {
		return errors.New("ai response does not contain json")
	}

	return json.Unmarshal([]byte(payload), target)
}

func extractJSON(input string) string {
	trimmed := stripCodeFences(input)

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}

func extractJSONArray(input string) string {
	trimmed := stripCodeFences(input)

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}

func stripCodeFences(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	return trimmed
}

func validateDocument(doc itinerary.Document, plan models.Plan) error {
	if len(doc.Days) == 0 {
		return errors.New("itinerary days are required")
	}

	if len(doc.PopularSpots) == 0 {
		return errors.New("itinerary popular spots are required")
	}

	if strings.TrimSpace(doc.Summary) == "" {
		return errors.New("itinerary summary is required")
	}

	first := doc.Days[0]
	if first.Day <= 0 {
		return errors.New("first day has no number")
	}
	if strings.TrimSpace(first.Title) == "" {
		return errors.New("first day has no title")
	}
	if strings.TrimSpace(first.Description) == "" {
		return errors.New("first day has no description")
	}
	if first.Activities.Empty() {
		return errors.New("first day has no activities")
	}
	if strings.TrimSpace(first.Tip) == "" {
		return errors.New("first day has no tip")
	}

	if plan == models.PlanPro {
		if len(doc.BookingResources) == 0 {
			return errors.New("pro itinerary requires booking resources")
		}
		if doc.BudgetBreakdown == nil {
			return errors.New("pro itinerary requires budget breakdown")
		}
	}

	return nil
}

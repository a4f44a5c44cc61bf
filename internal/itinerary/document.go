package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document хранит структурированный маршрут, полученный от генератора.
type Document struct {
	Days             []Day             `json:"days"`
	PopularSpots     []Spot            `json:"popularSpots"`
	BookingResources map[string]string `json:"bookingResources,omitempty"`
	BudgetBreakdown  *BudgetBreakdown  `json:"budgetBreakdown,omitempty"`
	Summary          string            `json:"summary,omitempty"`
}

type Day struct {
	Day            int        `json:"day"`
	Location       string     `json:"location,omitempty"`
	Title          string     `json:"title,omitempty"`
	Description    string     `json:"description,omitempty"`
	Activities     Activities `json:"activities"`
	Transportation string     `json:"transportation,omitempty"`
	Accommodation  string     `json:"accommodation,omitempty"`
	Dining         string     `json:"dining,omitempty"`
	DailyBudget    string     `json:"dailyBudget,omitempty"`
	Tip            string     `json:"tip,omitempty"`
}

type Activity struct {
	Time           string `json:"time,omitempty"`
	Description    string `json:"description,omitempty"`
	Cost           string `json:"cost,omitempty"`
	Duration       string `json:"duration,omitempty"`
	BookingLink    string `json:"bookingLink,omitempty"`
	MoneySavingTip string `json:"moneySavingTip,omitempty"`
}

type Spot struct {
	Name            string `json:"name"`
	Location        string `json:"location,omitempty"`
	Description     string `json:"description,omitempty"`
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty"`
	EntranceFee     string `json:"entranceFee,omitempty"`
	BookingLink     string `json:"bookingLink,omitempty"`
	MoneySavingTip  string `json:"moneySavingTip,omitempty"`
}

type BudgetBreakdown struct {
	Accommodation         string   `json:"accommodation,omitempty"`
	Activities            string   `json:"activities,omitempty"`
	Food                  string   `json:"food,omitempty"`
	Transportation        string   `json:"transportation,omitempty"`
	TotalEstimated        string   `json:"totalEstimated,omitempty"`
	MoneySavingStrategies []string `json:"moneySavingStrategies,omitempty"`
}

// Activities хранит список занятий дня. Генератор присылает либо массив строк
// (free-тариф), либо массив объектов (pro-тариф); вариант определяется один
// раз при разборе JSON по типу первого элемента.
type Activities struct {
	Plain      []string
	Structured []Activity
}

// IsStructured сообщает, содержит ли список структурированные записи.
func (a Activities) IsStructured() bool {
	return a.Structured != nil
}

// Empty сообщает, что занятий нет ни в одном из вариантов.
func (a Activities) Empty() bool {
	return len(a.Plain) == 0 && len(a.Structured) == 0
}

func (a *Activities) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = Activities{}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("activities must be an array: %w", err)
	}

	*a = Activities{}
	if len(raw) == 0 {
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw[0]), []byte("{")) {
		structured := make([]Activity, 0, len(raw))
		for _, item := range raw {
			var act Activity
			if err := json.Unmarshal(item, &act); err != nil {
				continue
			}
			structured = append(structured, act)
		}
		a.Structured = structured
		return nil
	}

	plain := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			// non-string entries in the plain shape are skipped
			continue
		}
		plain = append(plain, s)
	}
	a.Plain = plain
	return nil
}

func (a Activities) MarshalJSON() ([]byte, error) {
	if a.Structured != nil {
		return json.Marshal(a.Structured)
	}
	if a.Plain == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Plain)
}

// TitleOrDefault возвращает заголовок дня либо шаблонную заглушку.
func (d Day) TitleOrDefault(firstDestination string) string {
	if d.Title != "" {
		return d.Title
	}
	return fmt.Sprintf("Day %d in %s", d.Day, firstDestination)
}

// DescriptionOrDefault возвращает описание дня либо заглушку.
func (d Day) DescriptionOrDefault() string {
	if d.Description != "" {
		return d.Description
	}
	return "Explore and enjoy your journey."
}

// TipOrDefault возвращает совет дня либо заглушку.
func (d Day) TipOrDefault() string {
	if d.Tip != "" {
		return d.Tip
	}
	return "Enjoy your day and stay hydrated!"
}

// Sanitize прогоняет все свободные текстовые поля документа через Clean.
func (doc *Document) Sanitize() {
	for i := range doc.Days {
		day := &doc.Days[i]
		day.Title = Clean(day.Title)
		day.Description = Clean(day.Description)
		day.Tip = Clean(day.Tip)
		for j := range day.Activities.Plain {
			day.Activities.Plain[j] = Clean(day.Activities.Plain[j])
		}
		for j := range day.Activities.Structured {
			act := &day.Activities.Structured[j]
			act.Time = Clean(act.Time)
			act.Description = Clean(act.Description)
			act.MoneySavingTip = Clean(act.MoneySavingTip)
		}
	}

	for i := range doc.PopularSpots {
		spot := &doc.PopularSpots[i]
		spot.Name = Clean(spot.Name)
		spot.Description = Clean(spot.Description)
	}

	doc.Summary = Clean(doc.Summary)
}

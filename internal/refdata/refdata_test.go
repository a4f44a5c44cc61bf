package refdata

import (
	"strings"
	"testing"
)

// TestSuggestAirportsEmptyQuery проверяет выдачу первых записей при пустом запросе.
func TestSuggestAirportsEmptyQuery(t *testing.T) {
	got := SuggestAirports("   ")
	if len(got) != DefaultSuggestions {
		t.Fatalf("expected %d airports, got %d", DefaultSuggestions, len(got))
	}
	if got[0].Code != airports[0].Code {
		t.Fatalf("expected first airport %s, got %s", airports[0].Code, got[0].Code)
	}
}

// TestSuggestAirportsByFields проверяет поиск по каждому полю записи.
func TestSuggestAirportsByFields(t *testing.T) {
	queries := []string{"london", "LHR", "united kingdom", "heathrow"}
	for _, q := range queries {
		got := SuggestAirports(q)
		found := false
		for _, a := range got {
			if a.Code == "LHR" {
				found = true
			}
		}
		if !found {
			t.Fatalf("query %q did not match LHR, got %v", q, got)
		}
	}
}

// TestSuggestAirportsNoMatch проверяет пустой результат без совпадений.
func TestSuggestAirportsNoMatch(t *testing.T) {
	got := SuggestAirports("zzzzzz")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

// TestSuggestCurrencies проверяет поиск валюты по имени и коду.
func TestSuggestCurrencies(t *testing.T) {
	byName := SuggestCurrencies("pound")
	if len(byName) == 0 {
		t.Fatalf("expected matches for pound")
	}
	for _, c := range byName {
		if !strings.Contains(strings.ToLower(c.Name), "pound") {
			t.Fatalf("unexpected match %v", c)
		}
	}

	byCode := SuggestCurrencies("eur")
	found := false
	for _, c := range byCode {
		if c.Code == "EUR" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected EUR in %v", byCode)
	}
}

// TestCurrencyByCode проверяет поиск валюты без учета регистра кода.
func TestCurrencyByCode(t *testing.T) {
	c, ok := CurrencyByCode("usd")
	if !ok || c.Symbol != "$" {
		t.Fatalf("expected USD with $ symbol, got %v %v", c, ok)
	}

	if _, ok := CurrencyByCode("XXX"); ok {
		t.Fatalf("expected no match for XXX")
	}
}

// TestInterestsForKnownCountry проверяет подсказки для известной страны.
func TestInterestsForKnownCountry(t *testing.T) {
	got := InterestsFor([]string{"France"})
	if len(got) != MaxInterests {
		t.Fatalf("expected %d interests, got %d", MaxInterests, len(got))
	}
	if got[0] != "Wine Tasting" {
		t.Fatalf("expected insertion order preserved, got %v", got)
	}
}

// TestInterestsForUnknownCountry проверяет универсальный набор для неизвестной страны.
func TestInterestsForUnknownCountry(t *testing.T) {
	got := InterestsFor([]string{"Atlantis"})
	if len(got) != len(defaultInterests) {
		t.Fatalf("expected default interests, got %v", got)
	}
}

// TestInterestsForDedupes проверяет отсутствие дублей при нескольких странах.
func TestInterestsForDedupes(t *testing.T) {
	got := InterestsFor([]string{"France", "Italy"})
	if len(got) != MaxInterests {
		t.Fatalf("expected %d interests, got %d", MaxInterests, len(got))
	}

	seen := make(map[string]bool)
	for _, interest := range got {
		if seen[interest] {
			t.Fatalf("duplicate interest %q", interest)
		}
		seen[interest] = true
	}
}

// TestInterestsForEmpty проверяет набор по умолчанию без направлений.
func TestInterestsForEmpty(t *testing.T) {
	got := InterestsFor(nil)
	if len(got) != len(defaultInterests) {
		t.Fatalf("expected default interests, got %v", got)
	}
}

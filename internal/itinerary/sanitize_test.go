package itinerary

import "testing"

// TestCleanCollapsesWhitespace проверяет схлопывание пробелов.
func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("  Paris   is\n\tgreat  ")
	want := "Paris is great"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestCleanStripsNonPrintable проверяет удаление не-ASCII символов.
func TestCleanStripsNonPrintable(t *testing.T) {
	got := Clean("Café — visit")
	want := "Caf visit"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestCleanDedupesOverviewPrefix проверяет удаление дублированного префикса.
func TestCleanDedupesOverviewPrefix(t *testing.T) {
	got := Clean("Overview: Overview: Overview: a walking day")
	want := "Overview: a walking day"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestCleanIdempotent проверяет, что повторная очистка ничего не меняет.
func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  Caféé  day ☃ trip  ",
		"Overview:  Overview: museums",
		"tabs\tand\nnewlines",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Fatalf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

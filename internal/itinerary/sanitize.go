package itinerary

import (
	"regexp"
	"strings"
)

var (
	nonPrintableRe = regexp.MustCompile(`[^\x20-\x7E]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	overviewDupRe  = regexp.MustCompile(`(?i)Overview:\s*Overview:`)
)

// Clean нормализует свободный текст перед рендерингом в HTML или PDF:
// убирает непечатаемые символы, схлопывает пробелы и дублированный
// префикс "Overview:". Повторное применение не меняет результат.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	out := nonPrintableRe.ReplaceAllString(text, " ")
	out = whitespaceRe.ReplaceAllString(out, " ")
	for {
		next := overviewDupRe.ReplaceAllString(out, "Overview:")
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}

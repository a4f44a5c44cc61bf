package config

import (
	"reflect"
	"testing"
	"time"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseCSVEnvMissing проверяет поведение при отсутствии переменной.
func TestParseCSVEnvMissing(t *testing.T) {
	got := parseCSVEnv("MISSING_ENV")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestParseNonNegativeDurationEnv проверяет, что нулевая задержка допустима.
func TestParseNonNegativeDurationEnv(t *testing.T) {
	t.Setenv("AI_INTERESTS_DELAY", "0s")

	got, err := parseNonNegativeDurationEnv("AI_INTERESTS_DELAY", 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

// TestParseNonNegativeDurationEnvNegative проверяет отказ на отрицательном значении.
func TestParseNonNegativeDurationEnvNegative(t *testing.T) {
	t.Setenv("AI_INTERESTS_DELAY", "-1s")

	if _, err := parseNonNegativeDurationEnv("AI_INTERESTS_DELAY", 0); err == nil {
		t.Fatalf("expected error for negative duration")
	}
}

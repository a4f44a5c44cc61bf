package handlers

import (
	"testing"
	"time"

	"example.com/tripstar/backend/internal/models"
)

// TestRemainingFreeUses проверяет подсчет остатка дневной квоты.
func TestRemainingFreeUses(t *testing.T) {
	cases := []struct {
		plan  models.Plan
		used  int
		limit int
		want  int
	}{
		{models.PlanFree, 0, 3, 3},
		{models.PlanFree, 2, 3, 1},
		{models.PlanFree, 3, 3, 0},
		{models.PlanFree, 5, 3, 0},
		{models.PlanPro, 10, 3, 3},
		{models.PlanPerExport, 10, 3, 3},
	}
	for _, tc := range cases {
		if got := remainingFreeUses(tc.plan, tc.used, tc.limit); got != tc.want {
			t.Fatalf("remainingFreeUses(%s, %d, %d): expected %d, got %d", tc.plan, tc.used, tc.limit, tc.want, got)
		}
	}
}

// TestQuotaExhausted проверяет, что квота ограничивает только free-тариф.
func TestQuotaExhausted(t *testing.T) {
	if quotaExhausted(models.PlanFree, 2, 3) {
		t.Fatal("quota should not be exhausted before the limit")
	}
	if !quotaExhausted(models.PlanFree, 3, 3) {
		t.Fatal("quota should be exhausted at the limit")
	}
	if quotaExhausted(models.PlanPro, 100, 3) {
		t.Fatal("pro plan should not be limited")
	}
}

// TestStartOfDayUTC проверяет обнуление времени в сутках UTC.
func TestStartOfDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2026, 8, 29, 2, 30, 0, 0, loc)

	got := startOfDayUTC(now)
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

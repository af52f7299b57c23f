package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseLongDate(t *testing.T) {
	for _, in := range []string{"Mar 5, 2025", "March 5, 2025"} {
		got, err := ParseLongDate(in)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", in, err)
		}
		if FormatDate(got) != "2025-03-05" {
			t.Fatalf("unexpected date for %q: %s", in, FormatDate(got))
		}
	}
	if _, err := ParseLongDate("soon"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := DaysUntil(now, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 1); got != 4 {
		t.Fatalf("expected 4 days rounded up, got %d", got)
	}
	if got := DaysUntil(now, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 1); got != 1 {
		t.Fatalf("expected floor of 1 for past dates, got %d", got)
	}
}

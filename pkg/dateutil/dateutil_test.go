package dateutil

import (
	"testing"
	"time"
)

func TestStartOfWeekIsSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	wed := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.Local)
	start := StartOfWeek(wed)
	if start.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday, got %v", start.Weekday())
	}
	if FormatISO(start) != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %s", FormatISO(start))
	}
	if h, m, s := start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sun := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.Local)
	if got := FormatISO(StartOfWeek(sun)); got != "2025-03-09" {
		t.Fatalf("sunday should be its own week start, got %s", got)
	}
}

func TestEndOfWeek(t *testing.T) {
	wed := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	if got := FormatISO(EndOfWeek(wed)); got != "2025-03-15" {
		t.Fatalf("expected 2025-03-15, got %s", got)
	}
}

func TestLastOfMonth(t *testing.T) {
	if got := LastOfMonth(2024, time.February).Day(); got != 29 {
		t.Fatalf("expected leap-year 29, got %d", got)
	}
	if got := LastOfMonth(2025, time.April).Day(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestWeekdayName(t *testing.T) {
	sat := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	if got := WeekdayName(sat); got != "Sábado" {
		t.Fatalf("expected Sábado, got %s", got)
	}
}

func TestParseISORoundTrip(t *testing.T) {
	day, err := ParseISO("2025-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatISO(day) != "2025-12-31" {
		t.Fatalf("round trip mismatch: %s", FormatISO(day))
	}
}

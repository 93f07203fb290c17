package dateutil

import (
	"testing"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

func TestParseDateKeywords(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 45, 0, 0, time.UTC)

	cases := map[string]string{
		"today":     "2026-03-04",
		"Tomorrow":  "2026-03-05",
		"yesterday": "2026-03-03",
	}
	for raw, want := range cases {
		got, err := ParseDate(raw, now)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", raw, err)
		}
		if got.Format("2006-01-02") != want {
			t.Fatalf("ParseDate(%q) = %s, want %s", raw, got.Format("2006-01-02"), want)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("2026-01-15", now)
	if err != nil || got.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("ISO parse = %v, %v", got, err)
	}

	got, err = ParseDate("Jan 15", now)
	if err != nil || got.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("yearless parse should land in now's year: %v, %v", got, err)
	}

	if _, err := ParseDate("not-a-date", now); !model.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	cases := map[string]string{
		"06:30":  "06:30",
		"6:30":   "06:30",
		"18:30":  "18:30",
		"6:30pm": "18:30",
		"9am":    "09:00",
	}
	for raw, want := range cases {
		got, err := ParseClock(raw)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %s, want %s", raw, got, want)
		}
	}

	if _, err := ParseClock("25:99"); !model.IsValidation(err) {
		t.Fatalf("expected ValidationError for bad clock, got %v", err)
	}
}

func TestWeekBounds(t *testing.T) {
	wednesday := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	start, end := WeekBounds(wednesday, "monday")
	if start.Format("2006-01-02") != "2026-03-02" || end.Format("2006-01-02") != "2026-03-08" {
		t.Fatalf("monday-start week = [%s, %s]", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	start, end = WeekBounds(wednesday, "sunday")
	if start.Format("2006-01-02") != "2026-03-01" || end.Format("2006-01-02") != "2026-03-07" {
		t.Fatalf("sunday-start week = [%s, %s]", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	// A reference date on the boundary stays inside its own week.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	start, _ = WeekBounds(monday, "monday")
	if !start.Equal(monday) {
		t.Fatalf("monday ref should open its own week, got %s", start.Format("2006-01-02"))
	}
}

func TestWeekdayHelpers(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	if IsWeekday(saturday) || !IsWeekend(saturday) {
		t.Fatalf("saturday misclassified")
	}
	if !IsWeekday(friday) || IsWeekend(friday) {
		t.Fatalf("friday misclassified")
	}
	if DayName(friday) != "Friday" || DayAbbrev(friday) != "fri" {
		t.Fatalf("day naming wrong: %s / %s", DayName(friday), DayAbbrev(friday))
	}
}

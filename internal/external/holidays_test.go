package external

import (
	"testing"
	"time"
)

func holidaysAt(value string) *HolidaysClient {
	fixed, _ := time.Parse(time.RFC3339, value)
	return &HolidaysClient{now: func() time.Time { return fixed }}
}

func TestUpcomingWindow(t *testing.T) {
	client := holidaysAt("2025-12-20T10:00:00Z")

	upcoming := client.Upcoming(7)
	if len(upcoming) != 1 {
		t.Fatalf("expected only Christmas within 7 days, got %v", upcoming)
	}
	if upcoming[0].Name != "Christmas Day" {
		t.Fatalf("expected Christmas Day, got %s", upcoming[0].Name)
	}
}

func TestUpcomingCrossesYearBoundary(t *testing.T) {
	client := holidaysAt("2025-12-28T10:00:00Z")

	upcoming := client.Upcoming(7)
	names := make([]string, 0, len(upcoming))
	for _, h := range upcoming {
		names = append(names, h.Name)
	}
	if len(upcoming) != 2 || names[0] != "New Year's Eve" || names[1] != "New Year's Day" {
		t.Fatalf("expected New Year's Eve then New Year's Day, got %v", names)
	}
	if upcoming[1].Date.Year() != 2026 {
		t.Fatalf("New Year's Day must come from the next year, got %v", upcoming[1].Date)
	}
}

func TestNextSkipsPastHolidays(t *testing.T) {
	client := holidaysAt("2025-11-28T10:00:00Z")

	next := client.Next()
	if next == nil || next.Name != "Christmas Day" {
		t.Fatalf("expected Christmas Day, got %v", next)
	}
}

func TestIsHoliday(t *testing.T) {
	client := holidaysAt("2025-07-01T10:00:00Z")

	fourth := time.Date(2025, time.July, 4, 13, 0, 0, 0, time.UTC)
	if h := client.IsHoliday(fourth); h == nil || h.Name != "Independence Day" {
		t.Fatalf("expected Independence Day, got %v", h)
	}
	if h := client.IsHoliday(fourth.AddDate(0, 0, 1)); h != nil {
		t.Fatalf("July 5 is not a holiday, got %v", h)
	}
}

func TestInMonth(t *testing.T) {
	client := holidaysAt("2025-01-01T10:00:00Z")

	october := client.InMonth(2025, time.October)
	if len(october) != 2 {
		t.Fatalf("expected Columbus Day and Halloween, got %v", october)
	}
}

func TestFallbackYearReusesTable(t *testing.T) {
	client := holidaysAt("2027-12-20T10:00:00Z")

	upcoming := client.Upcoming(7)
	if len(upcoming) != 1 || upcoming[0].Name != "Christmas Day" || upcoming[0].Date.Year() != 2027 {
		t.Fatalf("expected 2027 Christmas from the fallback table, got %v", upcoming)
	}
}

func TestHolidaySummary(t *testing.T) {
	today := time.Date(2025, time.December, 24, 9, 0, 0, 0, time.UTC)
	christmas := Holiday{Name: "Christmas Day", Date: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)}

	if got := christmas.Summary(today); got != "🎉 Christmas Day - Dec 25 (Tomorrow)" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := christmas.Summary(today.AddDate(0, 0, 1)); got != "🎉 Christmas Day - Dec 25 (Today!)" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := christmas.Summary(today.AddDate(0, 0, -4)); got != "🎉 Christmas Day - Dec 25 (in 5 days)" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

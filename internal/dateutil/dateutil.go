// Package dateutil holds the calendar arithmetic the planner leans on:
// lenient date/time parsing for user input and week-window resolution.
package dateutil

import (
	"strings"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// Week start conventions.
const (
	WeekStartMonday = "monday"
	WeekStartSunday = "sunday"
)

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
	"Jan 2 2006",
	"Jan 2",
	"2 Jan",
}

// ParseDate parses user-facing date input. Accepts the keywords today,
// tomorrow and yesterday plus a handful of common layouts. Layouts without
// a year resolve in the year of now.
func ParseDate(raw string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	today := Midnight(now)
	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			y := t.Year()
			if y == 0 {
				y = now.Year()
			}
			return time.Date(y, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, model.Validationf("invalid date format: %q (use YYYY-MM-DD, today, tomorrow or yesterday)", raw)
}

var clockLayouts = []string{
	"15:04",
	"3:04pm",
	"3:04 pm",
	"3pm",
	"15",
}

// ParseClock parses a wall-clock time like "06:30", "6:30", "6:30pm" or
// "9am" and returns it normalized as zero-padded "HH:MM".
func ParseClock(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", model.Validationf("invalid time format: %q. Use HH:MM (e.g. 06:30 or 6:30pm)", raw)
}

// Midnight truncates t to its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// WeekBounds returns the inclusive [start, end] of the week containing ref.
// weekStart is "monday" (default) or "sunday".
func WeekBounds(ref time.Time, weekStart string) (time.Time, time.Time) {
	day := Midnight(ref)
	startDay := time.Monday
	if strings.EqualFold(weekStart, WeekStartSunday) {
		startDay = time.Sunday
	}
	offset := (int(day.Weekday()) - int(startDay) + 7) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// IsWeekday reports whether d is Monday through Friday.
func IsWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsWeekend reports whether d is Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	return !IsWeekday(d)
}

// DayName returns the full weekday name, e.g. "Monday".
func DayName(d time.Time) string {
	return d.Weekday().String()
}

// DayAbbrev returns the lowercase 3-letter weekday abbreviation, e.g. "mon".
func DayAbbrev(d time.Time) string {
	return strings.ToLower(d.Weekday().String()[:3])
}

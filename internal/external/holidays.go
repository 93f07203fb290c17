package external

import (
	"fmt"
	"sort"
	"time"
)

// Holiday is a single calendar holiday.
type Holiday struct {
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Country string    `json:"country"`
	Type    string    `json:"type"`
}

// DaysUntil returns the whole days from today until the holiday.
func (h Holiday) DaysUntil(today time.Time) int {
	return int(midnight(h.Date).Sub(midnight(today)).Hours() / 24)
}

// Summary returns a one-line description relative to today.
func (h Holiday) Summary(today time.Time) string {
	days := h.DaysUntil(today)
	var when string
	switch {
	case days == 0:
		when = "Today!"
	case days == 1:
		when = "Tomorrow"
	default:
		when = fmt.Sprintf("in %d days", days)
	}
	return fmt.Sprintf("🎉 %s - %s (%s)", h.Name, h.Date.Format("Jan 02"), when)
}

type holidayDef struct {
	month time.Month
	day   int
	name  string
}

var usHolidays2024 = []holidayDef{
	{time.January, 1, "New Year's Day"},
	{time.January, 15, "Martin Luther King Jr. Day"},
	{time.February, 14, "Valentine's Day"},
	{time.February, 19, "Presidents' Day"},
	{time.March, 17, "St. Patrick's Day"},
	{time.April, 21, "Easter Sunday"},
	{time.May, 12, "Mother's Day"},
	{time.May, 27, "Memorial Day"},
	{time.June, 16, "Father's Day"},
	{time.July, 4, "Independence Day"},
	{time.September, 2, "Labor Day"},
	{time.October, 14, "Columbus Day"},
	{time.October, 31, "Halloween"},
	{time.November, 11, "Veterans Day"},
	{time.November, 28, "Thanksgiving"},
	{time.December, 25, "Christmas Day"},
	{time.December, 31, "New Year's Eve"},
}

var usHolidays2025 = []holidayDef{
	{time.January, 1, "New Year's Day"},
	{time.January, 20, "Martin Luther King Jr. Day"},
	{time.February, 14, "Valentine's Day"},
	{time.February, 17, "Presidents' Day"},
	{time.March, 17, "St. Patrick's Day"},
	{time.April, 20, "Easter Sunday"},
	{time.May, 11, "Mother's Day"},
	{time.May, 26, "Memorial Day"},
	{time.June, 15, "Father's Day"},
	{time.July, 4, "Independence Day"},
	{time.September, 1, "Labor Day"},
	{time.October, 13, "Columbus Day"},
	{time.October, 31, "Halloween"},
	{time.November, 11, "Veterans Day"},
	{time.November, 27, "Thanksgiving"},
	{time.December, 25, "Christmas Day"},
	{time.December, 31, "New Year's Eve"},
}

// HolidaysClient serves holiday lookups from the built-in US tables;
// no network involved. Years without a table reuse the 2025 dates.
type HolidaysClient struct {
	now func() time.Time
}

func NewHolidaysClient() *HolidaysClient {
	return &HolidaysClient{now: time.Now}
}

func (c *HolidaysClient) forYear(year int) []Holiday {
	defs := usHolidays2025
	if year == 2024 {
		defs = usHolidays2024
	}

	holidays := make([]Holiday, 0, len(defs))
	for _, def := range defs {
		holidays = append(holidays, Holiday{
			Name:    def.name,
			Date:    time.Date(year, def.month, def.day, 0, 0, 0, 0, time.UTC),
			Country: "US",
			Type:    "public",
		})
	}
	return holidays
}

// Upcoming returns holidays within the next daysAhead days, soonest first.
func (c *HolidaysClient) Upcoming(daysAhead int) []Holiday {
	today := midnight(c.now())
	end := today.AddDate(0, 0, daysAhead)

	all := append(c.forYear(today.Year()), c.forYear(today.Year()+1)...)
	var upcoming []Holiday
	for _, h := range all {
		if !h.Date.Before(today) && !h.Date.After(end) {
			upcoming = append(upcoming, h)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })
	return upcoming
}

// Next returns the nearest holiday from today on, or nil.
func (c *HolidaysClient) Next() *Holiday {
	today := midnight(c.now())
	all := append(c.forYear(today.Year()), c.forYear(today.Year()+1)...)

	var next *Holiday
	for i := range all {
		if all[i].Date.Before(today) {
			continue
		}
		if next == nil || all[i].Date.Before(next.Date) {
			next = &all[i]
		}
	}
	return next
}

// IsHoliday returns the holiday falling on date, or nil.
func (c *HolidaysClient) IsHoliday(date time.Time) *Holiday {
	day := midnight(date)
	for _, h := range c.forYear(day.Year()) {
		if h.Date.Equal(day) {
			return &h
		}
	}
	return nil
}

// InMonth returns all holidays within one month of a year.
func (c *HolidaysClient) InMonth(year int, month time.Month) []Holiday {
	var out []Holiday
	for _, h := range c.forYear(year) {
		if h.Date.Month() == month {
			out = append(out, h)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

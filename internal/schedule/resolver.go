// Package schedule decides which activities are due on which calendar days.
// Everything here is pure: callers load activities and pass them in.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// IsDue reports whether the activity's recurrence rule puts it on date.
//
// "weekly" recurs on the weekday the activity was created and "once" fires
// on the creation date only. Both anchor on CreatedAt on purpose: editing
// the start time must not move stored schedules.
func IsDue(a model.Activity, date time.Time) bool {
	switch a.Recurrence {
	case model.RecurDaily:
		return true
	case model.RecurWeekdays:
		return dateutil.IsWeekday(date)
	case model.RecurWeekends:
		return dateutil.IsWeekend(date)
	case model.RecurWeekly:
		return date.Weekday() == a.CreatedAt.Weekday()
	case model.RecurCustom:
		if a.CustomDays == "" {
			return false
		}
		// Substring containment, not exact set membership, matching how
		// custom_days has always been stored ("mon,wed,fri").
		return strings.Contains(strings.ToLower(a.CustomDays), dateutil.DayAbbrev(date))
	case model.RecurOnce:
		return dateutil.SameDay(date, a.CreatedAt)
	}
	// Unknown recurrence values never schedule anything.
	return false
}

// Occurrences returns the activities due on date, ordered by start time.
func Occurrences(activities []model.Activity, date time.Time) []model.Activity {
	var due []model.Activity
	for _, a := range activities {
		if IsDue(a, date) {
			due = append(due, a)
		}
	}
	sortByStart(due)
	return due
}

// OccurrencesOverRange returns the deduplicated union of activities due on
// any day in [start, end], ordered by start time. Membership drives
// inclusion: an activity due on five days of the range appears once.
func OccurrencesOverRange(activities []model.Activity, start, end time.Time) []model.Activity {
	seen := make(map[uint]bool)
	var due []model.Activity
	for day := dateutil.Midnight(start); !day.After(dateutil.Midnight(end)); day = day.AddDate(0, 0, 1) {
		for _, a := range activities {
			if !seen[a.ID] && IsDue(a, day) {
				seen[a.ID] = true
				due = append(due, a)
			}
		}
	}
	sortByStart(due)
	return due
}

// OccurrencesForWeek resolves the week window containing ref and returns
// its deduplicated occurrences.
func OccurrencesForWeek(activities []model.Activity, ref time.Time, weekStart string) []model.Activity {
	start, end := dateutil.WeekBounds(ref, weekStart)
	return OccurrencesOverRange(activities, start, end)
}

func sortByStart(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartMinutes() < activities[j].StartMinutes()
	})
}

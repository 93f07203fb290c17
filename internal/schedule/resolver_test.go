package schedule

import (
	"testing"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDueOnceOnlyOnCreationDate(t *testing.T) {
	a := model.Activity{
		ID:         1,
		Recurrence: model.RecurOnce,
		CreatedAt:  time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC), // Wednesday
	}

	if !IsDue(a, date(2026, 3, 4)) {
		t.Fatalf("once activity not due on its creation date")
	}
	for _, d := range []time.Time{date(2026, 3, 3), date(2026, 3, 5), date(2026, 3, 11), date(2025, 3, 4)} {
		if IsDue(a, d) {
			t.Fatalf("once activity due on %s, want creation date only", d.Format("2006-01-02"))
		}
	}
}

func TestIsDueWeekdaysAndWeekendsPartition(t *testing.T) {
	weekdays := model.Activity{Recurrence: model.RecurWeekdays}
	weekends := model.Activity{Recurrence: model.RecurWeekends}

	// 2026-03-02 is a Monday; walk two full weeks.
	for i := 0; i < 14; i++ {
		d := date(2026, 3, 2).AddDate(0, 0, i)
		wd := d.Weekday()
		wantWeekday := wd != time.Saturday && wd != time.Sunday
		if got := IsDue(weekdays, d); got != wantWeekday {
			t.Fatalf("weekdays due on %s = %v, want %v", wd, got, wantWeekday)
		}
		if got := IsDue(weekends, d); got == wantWeekday {
			t.Fatalf("weekends must be the exact complement on %s", wd)
		}
	}
}

func TestIsDueWeeklyAnchorsOnCreationWeekday(t *testing.T) {
	a := model.Activity{
		Recurrence: model.RecurWeekly,
		CreatedAt:  time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), // Wednesday
	}

	if !IsDue(a, date(2026, 3, 11)) || !IsDue(a, date(2026, 4, 1)) {
		t.Fatalf("weekly activity not due on later Wednesdays")
	}
	if IsDue(a, date(2026, 3, 10)) || IsDue(a, date(2026, 3, 12)) {
		t.Fatalf("weekly activity due off its creation weekday")
	}
}

func TestIsDueCustomDays(t *testing.T) {
	a := model.Activity{Recurrence: model.RecurCustom, CustomDays: "Mon,wed,FRI"}

	if !IsDue(a, date(2026, 3, 2)) || !IsDue(a, date(2026, 3, 4)) || !IsDue(a, date(2026, 3, 6)) {
		t.Fatalf("custom activity not due on a listed day")
	}
	if IsDue(a, date(2026, 3, 3)) || IsDue(a, date(2026, 3, 7)) {
		t.Fatalf("custom activity due on an unlisted day")
	}

	empty := model.Activity{Recurrence: model.RecurCustom}
	if IsDue(empty, date(2026, 3, 2)) {
		t.Fatalf("custom activity with no days should never be due")
	}
}

func TestIsDueUnknownRecurrence(t *testing.T) {
	a := model.Activity{Recurrence: "fortnightly"}
	if IsDue(a, date(2026, 3, 2)) {
		t.Fatalf("unknown recurrence must never be due")
	}
}

func TestOccurrencesOrderedByStartTime(t *testing.T) {
	weekly := model.Activity{
		ID:         1,
		Title:      "Gym",
		StartTime:  "09:00",
		Recurrence: model.RecurWeekly,
		CreatedAt:  time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), // Wednesday
	}
	daily := model.Activity{
		ID:         2,
		Title:      "Standup",
		StartTime:  "08:00",
		Recurrence: model.RecurDaily,
	}

	wednesday := date(2026, 3, 11)
	got := Occurrences([]model.Activity{weekly, daily}, wednesday)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("Wednesday occurrences = %v, want [daily, weekly]", ids(got))
	}

	tuesday := date(2026, 3, 10)
	got = Occurrences([]model.Activity{weekly, daily}, tuesday)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("Tuesday occurrences = %v, want [daily] only", ids(got))
	}
}

func TestOccurrencesOverRangeDeduplicates(t *testing.T) {
	daily := model.Activity{ID: 1, StartTime: "10:00", Recurrence: model.RecurDaily}
	weekday := model.Activity{ID: 2, StartTime: "07:30", Recurrence: model.RecurWeekdays}

	got := OccurrencesOverRange([]model.Activity{daily, weekday}, date(2026, 3, 2), date(2026, 3, 8))
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct activities across the week, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("range occurrences = %v, want ordered by start time", ids(got))
	}
}

func TestOccurrencesForWeekWindows(t *testing.T) {
	// Due on Sunday only. With a Monday week start, the week of Wednesday
	// 2026-03-04 runs Mon 03-02 .. Sun 03-08 and includes it; a Sunday
	// week start shifts the window to Sun 03-01 .. Sat 03-07, also
	// containing a Sunday. Week of 03-04 anchored Monday includes 03-08.
	sundayOnly := model.Activity{ID: 1, StartTime: "11:00", Recurrence: model.RecurCustom, CustomDays: "sun"}

	got := OccurrencesForWeek([]model.Activity{sundayOnly}, date(2026, 3, 4), "monday")
	if len(got) != 1 {
		t.Fatalf("monday-start week should include the Sunday occurrence")
	}

	got = OccurrencesForWeek([]model.Activity{sundayOnly}, date(2026, 3, 4), "sunday")
	if len(got) != 1 {
		t.Fatalf("sunday-start week should include its opening Sunday")
	}
}

func ids(activities []model.Activity) []uint {
	out := make([]uint, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

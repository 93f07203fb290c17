package service

import (
	"context"
	"strings"
	"testing"
	"time"
)

func setupReminders(t *testing.T) (*fixture, *ReminderService) {
	t.Helper()
	f := setupFixture(t)
	activities := NewActivityService(f.activities, "monday")
	reminders := NewReminderService(activities, f.ledger)
	reminders.now = fixedNow(t, "2026-03-04T21:00:00Z")
	return f, reminders
}

func TestReviewPairsActivitiesWithStatuses(t *testing.T) {
	f, reminders := setupReminders(t)
	ctx := context.Background()

	run := f.addActivity(t, "Run")
	f.addActivity(t, "Read")
	date, _ := time.Parse("2006-01-02", "2026-03-04")
	if _, err := f.ledger.Mark(ctx, run.ID, "done", date, ""); err != nil {
		t.Fatalf("mark: %v", err)
	}

	items, err := reminders.Review(ctx, time.Time{})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	byTitle := map[string]string{}
	for _, item := range items {
		byTitle[item.Activity.Title] = item.Status
	}
	if byTitle["Run"] != "done" {
		t.Fatalf("expected Run done, got %q", byTitle["Run"])
	}
	if byTitle["Read"] != "" {
		t.Fatalf("expected Read unmarked, got %q", byTitle["Read"])
	}
}

func TestEveningSummaryCountsUnmarked(t *testing.T) {
	f, reminders := setupReminders(t)

	f.addActivity(t, "Run")
	f.addActivity(t, "Read")

	summary, err := reminders.EveningSummary(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "2 activities still unmarked") {
		t.Fatalf("expected unmarked count in summary:\n%s", summary)
	}
}

func TestEveningSummaryEmptyDay(t *testing.T) {
	_, reminders := setupReminders(t)

	summary, err := reminders.EveningSummary(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "No activities were scheduled today.") {
		t.Fatalf("expected empty-day message:\n%s", summary)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// Week under test: Monday 2026-03-02 through Sunday 2026-03-08.
func setupAnalytics(t *testing.T) (*fixture, *AnalyticsService) {
	t.Helper()
	f := setupFixture(t)
	analytics := NewAnalyticsService(f.activities, f.completions, f.ledger, "monday")
	analytics.now = fixedNow(t, "2026-03-04T12:00:00Z")
	return f, analytics
}

func mustMark(t *testing.T, f *fixture, activityID uint, day, status string) {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if _, err := f.ledger.Mark(context.Background(), activityID, status, date, ""); err != nil {
		t.Fatalf("mark %s %s: %v", day, status, err)
	}
}

func TestWeekStatsEmptyWeek(t *testing.T) {
	_, analytics := setupAnalytics(t)

	stats, err := analytics.WeekStats(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("week stats: %v", err)
	}
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	if stats.BestDay != "" || stats.WorstDay != "" {
		t.Fatalf("expected no best/worst day, got %q/%q", stats.BestDay, stats.WorstDay)
	}
	if stats.WeekStart.Weekday() != time.Monday {
		t.Fatalf("expected Monday week start, got %s", stats.WeekStart.Weekday())
	}
}

func TestWeekStatsBreakdowns(t *testing.T) {
	f, analytics := setupAnalytics(t)
	ctx := context.Background()

	run := f.addActivity(t, "Run")
	study := &model.Activity{
		Title: "Study", Category: "Education", StartTime: "19:00",
		Recurrence: model.RecurDaily, IsActive: true,
	}
	if err := f.activities.Create(ctx, study); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Monday: both done. Tuesday: run partial, study missed.
	mustMark(t, f, run.ID, "2026-03-02", "done")
	mustMark(t, f, study.ID, "2026-03-02", "done")
	mustMark(t, f, run.ID, "2026-03-03", "partial")
	mustMark(t, f, study.ID, "2026-03-03", "missed")

	stats, err := analytics.WeekStats(ctx, time.Time{})
	if err != nil {
		t.Fatalf("week stats: %v", err)
	}

	if stats.Total != 4 || stats.Done != 2 || stats.Partial != 1 || stats.Missed != 1 {
		t.Fatalf("unexpected tallies: %+v", stats)
	}
	// (2 + 0.5) / 4 = 62.5
	if stats.CompletionRate != 62.5 {
		t.Fatalf("expected rate 62.5, got %v", stats.CompletionRate)
	}

	health := stats.ByCategory["Health"]
	if health.Total != 2 || health.Rate != 75.0 {
		t.Fatalf("unexpected Health stats: %+v", health)
	}
	education := stats.ByCategory["Education"]
	if education.Total != 2 || education.Rate != 50.0 {
		t.Fatalf("unexpected Education stats: %+v", education)
	}

	monday := stats.ByDay["Monday"]
	if monday.Total != 2 || monday.Rate != 100.0 {
		t.Fatalf("unexpected Monday stats: %+v", monday)
	}
	if stats.BestDay != "Monday" {
		t.Fatalf("expected best day Monday, got %q", stats.BestDay)
	}
	if stats.WorstDay != "Tuesday" {
		t.Fatalf("expected worst day Tuesday, got %q", stats.WorstDay)
	}
}

func TestWeekStatsSingleDayBestEqualsWorst(t *testing.T) {
	f, analytics := setupAnalytics(t)

	run := f.addActivity(t, "Run")
	mustMark(t, f, run.ID, "2026-03-02", "done")

	stats, err := analytics.WeekStats(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("week stats: %v", err)
	}
	if stats.BestDay != "Monday" || stats.WorstDay != "Monday" {
		t.Fatalf("one-day week: best and worst must both be Monday, got %q/%q", stats.BestDay, stats.WorstDay)
	}
}

func TestInsightsMessages(t *testing.T) {
	_, analytics := setupAnalytics(t)

	stats := WeekStats{
		Total:          10,
		Done:           9,
		CompletionRate: 90,
		ByCategory: map[string]CategoryStats{
			"Health":    {Done: 5, Total: 5, Rate: 100},
			"Education": {Done: 1, Total: 3, Rate: 33.3},
		},
		BestDay: "Monday",
	}

	insights := analytics.Insights(stats)
	want := []string{
		"🌟 Excellent week! You completed over 80% of your activities.",
		"🏆 Best category: Health (100.0% completion)",
		"📉 Needs attention: Education (33.3% completion)",
		"📅 Most productive day: Monday",
	}
	if len(insights) != len(want) {
		t.Fatalf("expected %d insights, got %d: %v", len(want), len(insights), insights)
	}
	for i, message := range want {
		if insights[i] != message {
			t.Fatalf("insight %d: expected %q, got %q", i, message, insights[i])
		}
	}
}

func TestInsightsMissedOutnumberDone(t *testing.T) {
	_, analytics := setupAnalytics(t)

	stats := WeekStats{Total: 5, Done: 1, Missed: 4, CompletionRate: 20}
	insights := analytics.Insights(stats)

	foundChallenging, foundWarning := false, false
	for _, message := range insights {
		if message == "🎯 Challenging week. Consider reducing the number of activities." {
			foundChallenging = true
		}
		if message == "⚠️ More activities missed than completed. Review your schedule." {
			foundWarning = true
		}
	}
	if !foundChallenging || !foundWarning {
		t.Fatalf("missing expected insights: %v", insights)
	}
}

func TestCompareWeeks(t *testing.T) {
	f, analytics := setupAnalytics(t)

	run := f.addActivity(t, "Run")
	// Previous week (Mon 2026-02-23): missed. Current week: done.
	mustMark(t, f, run.ID, "2026-02-23", "missed")
	mustMark(t, f, run.ID, "2026-03-02", "done")

	comparison, err := analytics.CompareWeeks(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if comparison.Current.CompletionRate != 100 || comparison.Previous.CompletionRate != 0 {
		t.Fatalf("unexpected rates: %+v", comparison)
	}
	if comparison.RateChange != 100 || !comparison.Improved {
		t.Fatalf("expected +100 improved, got %+v", comparison)
	}
}

func TestStreaksSortedDescending(t *testing.T) {
	f, analytics := setupAnalytics(t)
	ctx := context.Background()
	f.ledger.now = fixedNow(t, "2026-03-04T12:00:00Z")

	short := f.addActivity(t, "Short")
	long := f.addActivity(t, "Long")

	mustMark(t, f, short.ID, "2026-03-04", "done")
	for _, day := range []string{"2026-03-04", "2026-03-03", "2026-03-02"} {
		mustMark(t, f, long.ID, day, "done")
	}

	entries, err := analytics.Streaks(ctx)
	if err != nil {
		t.Fatalf("streaks: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Long" || entries[0].Streak != 3 {
		t.Fatalf("expected Long with streak 3 first, got %+v", entries[0])
	}
	if entries[1].Title != "Short" || entries[1].Streak != 1 {
		t.Fatalf("expected Short with streak 1 second, got %+v", entries[1])
	}
}

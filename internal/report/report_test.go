package report

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/external"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

func setupBuilder(t *testing.T) (*Builder, *repository.ActivityRepository) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "buddy-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo := repository.NewActivityRepository(db)
	activities := service.NewActivityService(repo, "monday")

	builder := NewBuilder(activities, nil, nil, nil, external.NewHolidaysClient())
	builder.now = func() time.Time {
		return time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	}
	return builder, repo
}

func TestBuildWithOfflineIntegrations(t *testing.T) {
	builder, repo := setupBuilder(t)
	ctx := context.Background()

	activity := &model.Activity{
		Title:      "Morning run",
		Category:   "Health",
		StartTime:  "07:00",
		Recurrence: model.RecurDaily,
		IsActive:   true,
	}
	if err := repo.Create(ctx, activity); err != nil {
		t.Fatalf("create activity: %v", err)
	}

	rep, err := builder.Build(ctx, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if rep.Greeting != "Good morning" {
		t.Fatalf("expected morning greeting at 08:00, got %q", rep.Greeting)
	}
	if rep.DateLine != "Wednesday, March 04, 2026" {
		t.Fatalf("unexpected date line: %q", rep.DateLine)
	}

	text := rep.Render()
	if !strings.Contains(text, "07:00 - Morning run (Health)") {
		t.Fatalf("schedule section missing activity:\n%s", text)
	}
	if !strings.Contains(text, "Total: 1 activities") {
		t.Fatalf("schedule section missing total:\n%s", text)
	}
}

func TestBuildSectionToggles(t *testing.T) {
	builder, _ := setupBuilder(t)

	opts := Options{Activities: true, Quote: true}
	rep, err := builder.Build(context.Background(), opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(rep.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(rep.Sections), rep.Sections)
	}
	if rep.Sections[0].Title != "📋 TODAY'S ACTIVITIES" {
		t.Fatalf("unexpected first section: %q", rep.Sections[0].Title)
	}
	if rep.Sections[1].Title != "💡 QUOTE OF THE DAY" {
		t.Fatalf("unexpected second section: %q", rep.Sections[1].Title)
	}
}

func TestBuildEmptySchedule(t *testing.T) {
	builder, _ := setupBuilder(t)

	rep, err := builder.Build(context.Background(), Options{Activities: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	text := rep.Render()
	if !strings.Contains(text, "No activities scheduled for today.") {
		t.Fatalf("expected empty schedule hint:\n%s", text)
	}
}

func TestGreetingBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}
	for _, tc := range cases {
		if got := greeting(tc.hour); got != tc.want {
			t.Fatalf("hour %d: expected %q, got %q", tc.hour, tc.want, got)
		}
	}
}

func TestQuoteSectionShape(t *testing.T) {
	section := quoteSection()
	if len(section.Lines) != 2 {
		t.Fatalf("expected quote and author lines, got %v", section.Lines)
	}
	if !strings.HasPrefix(section.Lines[0], "\"") || !strings.HasSuffix(section.Lines[0], "\"") {
		t.Fatalf("quote line must be quoted: %q", section.Lines[0])
	}
	if !strings.HasPrefix(section.Lines[1], "- ") {
		t.Fatalf("author line must start with a dash: %q", section.Lines[1])
	}
}

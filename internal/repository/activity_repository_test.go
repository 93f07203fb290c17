package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "buddy-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func newTestActivity(title, startTime string) *model.Activity {
	return &model.Activity{
		Title:      title,
		Category:   "Health",
		StartTime:  startTime,
		Recurrence: model.RecurDaily,
		PrepTime:   15,
		IsActive:   true,
	}
}

func TestActivityCRUD(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))
	ctx := context.Background()

	activity := newTestActivity("Morning run", "07:00")
	if err := repo.Create(ctx, activity); err != nil {
		t.Fatalf("create: %v", err)
	}
	if activity.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.FindByID(ctx, activity.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != "Morning run" || got.StartTime != "07:00" {
		t.Fatalf("unexpected activity: %+v", got)
	}

	updated, err := repo.UpdateFields(ctx, activity.ID, map[string]any{"title": "Evening run", "start_time": "18:00"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Evening run" || updated.StartTime != "18:00" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := repo.Delete(ctx, activity.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, activity.ID); !model.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestActivityFindByIDNotFound(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	if !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestActivityDeleteMissing(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))

	if err := repo.Delete(context.Background(), 99); !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListAllOrdersByStartTime(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))
	ctx := context.Background()

	for _, a := range []*model.Activity{
		newTestActivity("Lunch", "12:30"),
		newTestActivity("Run", "07:00"),
		newTestActivity("Review", "21:00"),
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.ListAll(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"07:00", "12:30", "21:00"}
	if len(all) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(all))
	}
	for i, a := range all {
		if a.StartTime != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], a.StartTime)
		}
	}
}

func TestListAllActiveOnly(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))
	ctx := context.Background()

	active := newTestActivity("Active", "08:00")
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("create: %v", err)
	}
	paused := newTestActivity("Paused", "09:00")
	if err := repo.Create(ctx, paused); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.UpdateFields(ctx, paused.ID, map[string]any{"is_active": false}); err != nil {
		t.Fatalf("pause: %v", err)
	}

	onlyActive, err := repo.ListAll(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(onlyActive) != 1 || onlyActive[0].Title != "Active" {
		t.Fatalf("expected only the active activity, got %+v", onlyActive)
	}

	everything, err := repo.ListAll(ctx, false)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(everything) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(everything))
	}
}

func TestDeleteCascadesCompletions(t *testing.T) {
	db := setupDB(t)
	activities := NewActivityRepository(db)
	completions := NewCompletionRepository(db)
	ctx := context.Background()

	activity := newTestActivity("Run", "07:00")
	if err := activities.Create(ctx, activity); err != nil {
		t.Fatalf("create activity: %v", err)
	}
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if err := completions.Create(ctx, &model.Completion{
		ActivityID: activity.ID,
		Date:       date,
		Status:     model.StatusDone,
	}); err != nil {
		t.Fatalf("create completion: %v", err)
	}

	if err := activities.Delete(ctx, activity.ID); err != nil {
		t.Fatalf("delete activity: %v", err)
	}

	leftover, err := completions.ListByActivity(ctx, activity.ID, 0)
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(leftover) != 0 {
		t.Fatalf("expected cascade delete, found %d completions", len(leftover))
	}
}

func TestSearchMatchesTitleAndDescription(t *testing.T) {
	repo := NewActivityRepository(setupDB(t))
	ctx := context.Background()

	run := newTestActivity("Morning run", "07:00")
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("create: %v", err)
	}
	gym := newTestActivity("Gym", "18:00")
	gym.Description = "strength and running drills"
	if err := repo.Create(ctx, gym); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.Search(ctx, "run")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
	"github.com/LashaJaparidze15/Buddy/internal/schedule"
)

// ActivityInput represents data required to create an activity.
type ActivityInput struct {
	Title       string
	StartTime   string
	Category    string
	Description string
	Duration    *int
	Recurrence  string
	CustomDays  string
	Location    string
	PrepTime    int
	IsOutdoor   bool
}

// ActivityUpdate is a partial update: nil fields are left unchanged.
// Description, CustomDays and Location accept empty strings to clear.
type ActivityUpdate struct {
	Title       *string
	StartTime   *string
	Category    *string
	Description *string
	Duration    *int
	Recurrence  *string
	CustomDays  *string
	Location    *string
	PrepTime    *int
	IsOutdoor   *bool
}

// ActivityService wraps activity business logic: validation, scheduling
// lookups and CRUD.
type ActivityService struct {
	repo      *repository.ActivityRepository
	weekStart string
}

func NewActivityService(repo *repository.ActivityRepository, weekStart string) *ActivityService {
	if weekStart == "" {
		weekStart = dateutil.WeekStartMonday
	}
	return &ActivityService{repo: repo, weekStart: weekStart}
}

func (s *ActivityService) Create(ctx context.Context, input ActivityInput) (*model.Activity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, model.Validationf("title is required")
	}

	startTime, err := dateutil.ParseClock(input.StartTime)
	if err != nil {
		return nil, err
	}
	category, err := model.ValidateCategory(orDefault(input.Category, "Other"))
	if err != nil {
		return nil, err
	}
	recurrence, err := model.ValidateRecurrence(orDefault(input.Recurrence, model.RecurOnce))
	if err != nil {
		return nil, err
	}
	if input.Duration != nil {
		if err := model.ValidateDuration(*input.Duration); err != nil {
			return nil, err
		}
	}
	if err := model.ValidatePrepTime(input.PrepTime); err != nil {
		return nil, err
	}

	activity := model.Activity{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    category,
		StartTime:   startTime,
		Duration:    input.Duration,
		Recurrence:  recurrence,
		CustomDays:  strings.ToLower(input.CustomDays),
		Location:    input.Location,
		PrepTime:    input.PrepTime,
		IsOutdoor:   input.IsOutdoor,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (*model.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context, activeOnly bool) ([]model.Activity, error) {
	return s.repo.ListAll(ctx, activeOnly)
}

func (s *ActivityService) ListByCategory(ctx context.Context, category string) ([]model.Activity, error) {
	canonical, err := model.ValidateCategory(category)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCategory(ctx, canonical, true)
}

// ForDate returns the active activities due on date, ordered by start time.
func (s *ActivityService) ForDate(ctx context.Context, date time.Time) ([]model.Activity, error) {
	activities, err := s.repo.ListAll(ctx, true)
	if err != nil {
		return nil, err
	}
	return schedule.Occurrences(activities, date), nil
}

// ForWeek returns the deduplicated activities due at least once in the week
// containing ref.
func (s *ActivityService) ForWeek(ctx context.Context, ref time.Time) ([]model.Activity, error) {
	activities, err := s.repo.ListAll(ctx, true)
	if err != nil {
		return nil, err
	}
	return schedule.OccurrencesForWeek(activities, ref, s.weekStart), nil
}

// WeekBounds exposes the configured week window for a reference date.
func (s *ActivityService) WeekBounds(ref time.Time) (time.Time, time.Time) {
	return dateutil.WeekBounds(ref, s.weekStart)
}

func (s *ActivityService) Update(ctx context.Context, id uint, update ActivityUpdate) (*model.Activity, error) {
	fields := map[string]any{}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, model.Validationf("title is required")
		}
		fields["title"] = strings.TrimSpace(*update.Title)
	}
	if update.StartTime != nil {
		startTime, err := dateutil.ParseClock(*update.StartTime)
		if err != nil {
			return nil, err
		}
		fields["start_time"] = startTime
	}
	if update.Category != nil {
		category, err := model.ValidateCategory(*update.Category)
		if err != nil {
			return nil, err
		}
		fields["category"] = category
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Duration != nil {
		if err := model.ValidateDuration(*update.Duration); err != nil {
			return nil, err
		}
		fields["duration"] = *update.Duration
	}
	if update.Recurrence != nil {
		recurrence, err := model.ValidateRecurrence(*update.Recurrence)
		if err != nil {
			return nil, err
		}
		fields["recurrence"] = recurrence
	}
	if update.CustomDays != nil {
		fields["custom_days"] = strings.ToLower(*update.CustomDays)
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.PrepTime != nil {
		if err := model.ValidatePrepTime(*update.PrepTime); err != nil {
			return nil, err
		}
		fields["prep_time"] = *update.PrepTime
	}
	if update.IsOutdoor != nil {
		fields["is_outdoor"] = *update.IsOutdoor
	}

	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips the active flag and returns the refreshed activity.
func (s *ActivityService) Toggle(ctx context.Context, id uint) (*model.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateFields(ctx, id, map[string]any{"is_active": !activity.IsActive})
}

func (s *ActivityService) Search(ctx context.Context, query string) ([]model.Activity, error) {
	return s.repo.Search(ctx, query)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

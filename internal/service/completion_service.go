package service

import (
	"context"
	"math"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
)

// RangeStats aggregates completion records over a date range.
type RangeStats struct {
	Total          int     `json:"total"`
	Done           int     `json:"done"`
	Missed         int     `json:"missed"`
	Partial        int     `json:"partial"`
	Rescheduled    int     `json:"rescheduled"`
	CompletionRate float64 `json:"completion_rate"`
}

// CompletionService is the completion ledger: one record per
// (activity, date), upserted in place on repeated marks.
type CompletionService struct {
	completions *repository.CompletionRepository
	activities  *repository.ActivityRepository

	// now is swappable so streak math is testable.
	now func() time.Time
}

func NewCompletionService(completions *repository.CompletionRepository, activities *repository.ActivityRepository) *CompletionService {
	return &CompletionService{
		completions: completions,
		activities:  activities,
		now:         time.Now,
	}
}

// Mark records how activityID resolved on date (today when zero). Marking
// the same (activity, date) again updates the existing record; the
// completion timestamp is set when the status becomes done and deliberately
// kept when the status later changes, so it reads "last time marked done".
func (s *CompletionService) Mark(ctx context.Context, activityID uint, status string, date time.Time, notes string) (*model.Completion, error) {
	validated, err := model.ValidateStatus(status)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.now()
	}
	date = dateutil.Midnight(date)

	if _, err := s.activities.FindByID(ctx, activityID); err != nil {
		return nil, err
	}

	existing, err := s.completions.FindByKey(ctx, activityID, date)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Status = validated
		if notes != "" {
			existing.Notes = notes
		}
		if validated == model.StatusDone {
			completedAt := s.now()
			existing.CompletedAt = &completedAt
		}
		if err := s.completions.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	completion := model.Completion{
		ActivityID: activityID,
		Date:       date,
		Status:     validated,
		Notes:      notes,
	}
	if validated == model.StatusDone {
		completedAt := s.now()
		completion.CompletedAt = &completedAt
	}
	if err := s.completions.Create(ctx, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

// StatusOn returns the recorded status for (activityID, date), or "" when
// no record exists. Absence of data is not an error.
func (s *CompletionService) StatusOn(ctx context.Context, activityID uint, date time.Time) (string, error) {
	if date.IsZero() {
		date = s.now()
	}
	completion, err := s.completions.FindByKey(ctx, activityID, dateutil.Midnight(date))
	if err != nil {
		return "", err
	}
	if completion == nil {
		return "", nil
	}
	return completion.Status, nil
}

// History returns completions for an activity, newest date first.
func (s *CompletionService) History(ctx context.Context, activityID uint, limit int) ([]model.Completion, error) {
	return s.completions.ListByActivity(ctx, activityID, limit)
}

// ForDate returns every completion recorded for one calendar day.
func (s *CompletionService) ForDate(ctx context.Context, date time.Time) ([]model.Completion, error) {
	if date.IsZero() {
		date = s.now()
	}
	return s.completions.ListByDate(ctx, dateutil.Midnight(date))
}

// Streak counts consecutive done days ending at today. Done records are
// walked newest-first against an expected date stepping back one day at a
// time; the first gap ends the count. Records with other statuses break the
// streak simply by not being present in the done list.
func (s *CompletionService) Streak(ctx context.Context, activityID uint) (int, error) {
	completions, err := s.completions.ListDoneByActivity(ctx, activityID)
	if err != nil {
		return 0, err
	}
	if len(completions) == 0 {
		return 0, nil
	}

	streak := 0
	expected := dateutil.Midnight(s.now())
	for _, c := range completions {
		day := dateutil.Midnight(c.Date)
		if day.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
		} else if day.Before(expected) {
			break
		}
	}
	return streak, nil
}

// RangeStats aggregates all completions in [start, end] with the weighted
// completion rate: done counts fully, partial at half.
func (s *CompletionService) RangeStats(ctx context.Context, start, end time.Time) (RangeStats, error) {
	completions, err := s.completions.ListByDateRange(ctx, dateutil.Midnight(start), dateutil.Midnight(end))
	if err != nil {
		return RangeStats{}, err
	}
	return tallyStats(completions), nil
}

func tallyStats(completions []model.Completion) RangeStats {
	stats := RangeStats{Total: len(completions)}
	if stats.Total == 0 {
		return stats
	}
	for _, c := range completions {
		switch c.Status {
		case model.StatusDone:
			stats.Done++
		case model.StatusMissed:
			stats.Missed++
		case model.StatusPartial:
			stats.Partial++
		case model.StatusRescheduled:
			stats.Rescheduled++
		}
	}
	stats.CompletionRate = completionRate(float64(stats.Done)+0.5*float64(stats.Partial), stats.Total)
	return stats
}

func completionRate(credit float64, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(credit / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

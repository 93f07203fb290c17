package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// CompletionRepository handles the per-day completion records.
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// FindByKey returns the record for (activityID, date), or nil when no
// record exists for that day.
func (r *CompletionRepository) FindByKey(ctx context.Context, activityID uint, date time.Time) (*model.Completion, error) {
	var completion model.Completion
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND date = ?", activityID, date).
		First(&completion).Error
	switch {
	case err == nil:
		return &completion, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find completion: %w", err)
	}
}

func (r *CompletionRepository) Create(ctx context.Context, completion *model.Completion) error {
	if err := r.db.WithContext(ctx).Create(completion).Error; err != nil {
		return fmt.Errorf("create completion: %w", err)
	}
	return nil
}

func (r *CompletionRepository) Save(ctx context.Context, completion *model.Completion) error {
	if err := r.db.WithContext(ctx).Save(completion).Error; err != nil {
		return fmt.Errorf("save completion: %w", err)
	}
	return nil
}

// ListByActivity returns completions for one activity, newest date first,
// capped at limit (0 means no cap).
func (r *CompletionRepository) ListByActivity(ctx context.Context, activityID uint, limit int) ([]model.Completion, error) {
	var completions []model.Completion
	q := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&completions).Error; err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return completions, nil
}

// ListDoneByActivity returns only the done records, newest date first.
// The streak walk needs nothing else.
func (r *CompletionRepository) ListDoneByActivity(ctx context.Context, activityID uint) ([]model.Completion, error) {
	var completions []model.Completion
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND status = ?", activityID, model.StatusDone).
		Order("date DESC").
		Find(&completions).Error
	if err != nil {
		return nil, fmt.Errorf("list done completions: %w", err)
	}
	return completions, nil
}

// ListByDateRange returns all completions with start <= date <= end.
func (r *CompletionRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Completion, error) {
	var completions []model.Completion
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&completions).Error
	if err != nil {
		return nil, fmt.Errorf("list completions by range: %w", err)
	}
	return completions, nil
}

func (r *CompletionRepository) ListByDate(ctx context.Context, date time.Time) ([]model.Completion, error) {
	return r.ListByDateRange(ctx, date, date)
}

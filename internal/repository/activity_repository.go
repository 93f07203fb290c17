package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// ActivityRepository handles CRUD for activities.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	switch {
	case err == nil:
		return &activity, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.NotFound("activity", id)
	default:
		return nil, fmt.Errorf("find activity: %w", err)
	}
}

// ListAll returns activities ordered by start time. With activeOnly,
// disabled activities are filtered out.
func (r *ActivityRepository) ListAll(ctx context.Context, activeOnly bool) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.db.WithContext(ctx).Order("start_time ASC, id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) ListByCategory(ctx context.Context, category string, activeOnly bool) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.db.WithContext(ctx).Where("category = ?", category).Order("start_time ASC, id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities by category: %w", err)
	}
	return activities, nil
}

// UpdateFields applies a partial update and returns the refreshed record.
func (r *ActivityRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*model.Activity, error) {
	activity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(activity).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("update activity: %w", err)
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes an activity; its completions go with it via the cascade.
func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Activity{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.NotFound("activity", id)
	}
	return nil
}

// Search matches query case-insensitively against title and description.
func (r *ActivityRepository) Search(ctx context.Context, query string) ([]model.Activity, error) {
	var activities []model.Activity
	term := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("title LIKE ? OR description LIKE ?", term, term).
		Order("start_time ASC, id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("search activities: %w", err)
	}
	return activities, nil
}

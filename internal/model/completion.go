package model

import "time"

// Completion records how an activity resolved on one calendar day.
// At most one record exists per (activity, date); marking the same pair
// again updates the record in place.
type Completion struct {
	ID         uint `gorm:"primaryKey"`
	ActivityID uint `gorm:"not null;index;uniqueIndex:idx_activity_date"`
	// Date is the calendar day the record is for, normalized to midnight
	// UTC, not the moment it was written.
	Date   time.Time `gorm:"not null;uniqueIndex:idx_activity_date"`
	Status string    `gorm:"size:20;not null"`
	// CompletedAt is set when the status becomes done and is kept even if
	// the status later changes, so it reads as "last time marked done".
	CompletedAt *time.Time
	Notes       string
	CreatedAt   time.Time
}

package model

import (
	"fmt"
	"time"
)

// Activity represents a recurring or one-off schedulable item.
// CreatedAt doubles as the recurrence anchor: "once" activities are due on
// their creation date only, and "weekly" activities recur on the weekday
// they were created. Changing that anchor would silently move every stored
// weekly activity, so it is immutable.
type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string
	Category    string `gorm:"size:50;not null;default:Other"`

	// Scheduling. StartTime is a zero-padded "HH:MM" wall-clock string so
	// SQL ordering by start_time matches chronological ordering.
	StartTime  string `gorm:"size:5;not null"`
	Duration   *int   // minutes
	Recurrence string `gorm:"size:20;not null;default:once"`
	CustomDays string `gorm:"size:50"` // comma list, e.g. "mon,wed,fri"

	Location  string `gorm:"size:200"`
	PrepTime  int    `gorm:"default:15"` // minutes before start to remind
	IsOutdoor bool   `gorm:"default:false"`
	IsActive  bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Completions []Completion `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// StartMinutes returns the start time as minutes since midnight.
// StartTime is validated at the boundary, so a malformed value maps to 0.
func (a Activity) StartMinutes() int {
	if len(a.StartTime) != 5 {
		return 0
	}
	h := int(a.StartTime[0]-'0')*10 + int(a.StartTime[1]-'0')
	m := int(a.StartTime[3]-'0')*10 + int(a.StartTime[4]-'0')
	return h*60 + m
}

// EndMinutes returns the computed end of the activity in minutes since
// midnight, or -1 when no duration is set.
func (a Activity) EndMinutes() int {
	if a.Duration == nil {
		return -1
	}
	return a.StartMinutes() + *a.Duration
}

// DurationFormatted renders the duration as "1h 30m" style text.
func (a Activity) DurationFormatted() string {
	if a.Duration == nil {
		return "N/A"
	}
	hours := *a.Duration / 60
	mins := *a.Duration % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

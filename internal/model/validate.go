package model

import "strings"

// Categories an activity can belong to, in canonical casing.
var Categories = []string{
	"Work",
	"Personal",
	"Health",
	"Education",
	"Errands",
	"Social",
	"Finance",
	"Other",
}

// Recurrence kinds.
const (
	RecurOnce     = "once"
	RecurDaily    = "daily"
	RecurWeekdays = "weekdays"
	RecurWeekends = "weekends"
	RecurWeekly   = "weekly"
	RecurCustom   = "custom"
)

// RecurrenceOptions lists all valid recurrence kinds.
var RecurrenceOptions = []string{
	RecurOnce,
	RecurDaily,
	RecurWeekdays,
	RecurWeekends,
	RecurWeekly,
	RecurCustom,
}

// Completion statuses.
const (
	StatusDone        = "done"
	StatusMissed      = "missed"
	StatusPartial     = "partial"
	StatusRescheduled = "rescheduled"
)

// CompletionStatuses lists all valid completion statuses.
var CompletionStatuses = []string{
	StatusDone,
	StatusMissed,
	StatusPartial,
	StatusRescheduled,
}

// ValidateCategory matches category case-insensitively and returns the
// canonical casing.
func ValidateCategory(category string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(category))
	for _, c := range Categories {
		if strings.ToLower(c) == lower {
			return c, nil
		}
	}
	return "", Validationf("invalid category: %q. Valid options: %s", category, strings.Join(Categories, ", "))
}

// ValidateRecurrence normalizes a recurrence kind to lowercase.
func ValidateRecurrence(recurrence string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(recurrence))
	for _, r := range RecurrenceOptions {
		if r == lower {
			return r, nil
		}
	}
	return "", Validationf("invalid recurrence: %q. Valid options: %s", recurrence, strings.Join(RecurrenceOptions, ", "))
}

// ValidateStatus normalizes a completion status to lowercase.
func ValidateStatus(status string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(status))
	for _, s := range CompletionStatuses {
		if s == lower {
			return s, nil
		}
	}
	return "", Validationf("invalid status: %q. Valid options: %s", status, strings.Join(CompletionStatuses, ", "))
}

// ValidateDuration checks the duration bound of 1 minute to 24 hours.
func ValidateDuration(duration int) error {
	if duration < 1 {
		return Validationf("duration must be at least 1 minute")
	}
	if duration > 1440 {
		return Validationf("duration cannot exceed 24 hours (1440 minutes)")
	}
	return nil
}

// ValidatePrepTime checks the preparation lead time bound of 0 to 3 hours.
func ValidatePrepTime(prepTime int) error {
	if prepTime < 0 {
		return Validationf("preparation time cannot be negative")
	}
	if prepTime > 180 {
		return Validationf("preparation time cannot exceed 3 hours (180 minutes)")
	}
	return nil
}

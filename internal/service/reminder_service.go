package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// ReminderService builds the evening review text: today's schedule with the
// recorded outcome per activity and a nudge for anything left unmarked.
type ReminderService struct {
	activities *ActivityService
	ledger     *CompletionService

	now func() time.Time
}

func NewReminderService(activities *ActivityService, ledger *CompletionService) *ReminderService {
	return &ReminderService{
		activities: activities,
		ledger:     ledger,
		now:        time.Now,
	}
}

// ReviewItem pairs a scheduled activity with its recorded status ("" when
// unmarked).
type ReviewItem struct {
	Activity model.Activity `json:"activity"`
	Status   string         `json:"status"`
}

// Review returns today's schedule with outcomes, ordered by start time.
func (s *ReminderService) Review(ctx context.Context, date time.Time) ([]ReviewItem, error) {
	if date.IsZero() {
		date = s.now()
	}

	activities, err := s.activities.ForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	items := make([]ReviewItem, 0, len(activities))
	for _, a := range activities {
		status, err := s.ledger.StatusOn(ctx, a.ID, date)
		if err != nil {
			return nil, err
		}
		items = append(items, ReviewItem{Activity: a, Status: status})
	}
	return items, nil
}

// EveningSummary renders the review as plain text for notifications.
func (s *ReminderService) EveningSummary(ctx context.Context, date time.Time) (string, error) {
	if date.IsZero() {
		date = s.now()
	}
	items, err := s.Review(ctx, date)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🌙 Evening Review\n")
	sb.WriteString(date.Format("Monday, January 02, 2006") + "\n\n")

	if len(items) == 0 {
		sb.WriteString("No activities were scheduled today.")
		return sb.String(), nil
	}

	unmarked := 0
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s - %s\n", statusIcon(item.Status), item.Activity.StartTime, item.Activity.Title))
		if item.Status == "" {
			unmarked++
		}
	}
	if unmarked > 0 {
		sb.WriteString(fmt.Sprintf("\n%d activities still unmarked. Run 'buddy review' to record them.", unmarked))
	}
	return sb.String(), nil
}

func statusIcon(status string) string {
	switch status {
	case model.StatusDone:
		return "✅"
	case model.StatusMissed:
		return "❌"
	case model.StatusPartial:
		return "🔶"
	case model.StatusRescheduled:
		return "🔄"
	default:
		return "⬜"
	}
}

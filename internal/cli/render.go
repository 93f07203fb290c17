package cli

import (
	"fmt"
	"strings"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

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

// renderActivityTable prints one activity per line: id, time, title,
// category, recurrence.
func renderActivityTable(activities []model.Activity) string {
	if len(activities) == 0 {
		return "No activities found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-6s %-30s %-10s %s\n", "ID", "TIME", "TITLE", "CATEGORY", "RECURRENCE"))
	for _, a := range activities {
		title := a.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		marker := ""
		if !a.IsActive {
			marker = " (paused)"
		}
		sb.WriteString(fmt.Sprintf("%-5d %-6s %-30s %-10s %s%s\n", a.ID, a.StartTime, title, a.Category, a.Recurrence, marker))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d activities\n", len(activities)))
	return sb.String()
}

// renderActivityDetail prints the full field list for one activity.
func renderActivityDetail(a model.Activity) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#%d %s\n", a.ID, a.Title))
	if a.Description != "" {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", a.Description))
	}
	sb.WriteString(fmt.Sprintf("  Category:    %s\n", a.Category))
	sb.WriteString(fmt.Sprintf("  Start time:  %s\n", a.StartTime))
	sb.WriteString(fmt.Sprintf("  Duration:    %s\n", a.DurationFormatted()))
	sb.WriteString(fmt.Sprintf("  Recurrence:  %s", a.Recurrence))
	if a.CustomDays != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", a.CustomDays))
	}
	sb.WriteString("\n")
	if a.Location != "" {
		sb.WriteString(fmt.Sprintf("  Location:    %s\n", a.Location))
	}
	sb.WriteString(fmt.Sprintf("  Prep time:   %d min\n", a.PrepTime))
	sb.WriteString(fmt.Sprintf("  Outdoor:     %v\n", a.IsOutdoor))
	sb.WriteString(fmt.Sprintf("  Active:      %v\n", a.IsActive))
	sb.WriteString(fmt.Sprintf("  Created:     %s\n", a.CreatedAt.Format("2006-01-02")))
	return sb.String()
}

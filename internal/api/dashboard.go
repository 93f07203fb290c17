package api

import (
	"net/http"

	"github.com/LashaJaparidze15/Buddy/internal/model"
)

type dashboardActivity struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	StartTime         string `json:"start_time"`
	Category          string `json:"category"`
	DurationFormatted string `json:"duration_formatted"`
	Status            string `json:"status"`
}

type dashboardHoliday struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	DaysUntil int    `json:"days_until"`
}

type dashboardSuggestion struct {
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// handleDashboard returns everything the landing view needs in one call:
// today's schedule with outcomes, the weather snapshot, upcoming holidays
// and the top suggestions.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := s.now()

	activities, err := s.activities.ForDate(ctx, now)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]dashboardActivity, 0, len(activities))
	completed := 0
	for _, a := range activities {
		status, err := s.ledger.StatusOn(ctx, a.ID, now)
		if err != nil {
			writeError(w, err)
			return
		}
		if status == model.StatusDone {
			completed++
		}
		items = append(items, dashboardActivity{
			ID:                a.ID,
			Title:             a.Title,
			StartTime:         a.StartTime,
			Category:          a.Category,
			DurationFormatted: a.DurationFormatted(),
			Status:            status,
		})
	}

	var weatherPayload any
	if s.weather != nil {
		if weather := s.weather.Current(ctx, r.URL.Query().Get("location")); weather != nil {
			weatherPayload = weather
		}
	}

	var holidays []dashboardHoliday
	if s.holidays != nil {
		for _, h := range s.holidays.Upcoming(7) {
			holidays = append(holidays, dashboardHoliday{
				Name:      h.Name,
				Date:      h.Date.Format("2006-01-02"),
				DaysUntil: h.DaysUntil(now),
			})
		}
	}

	suggestions, err := s.suggestions.ForDate(ctx, now)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	suggestionItems := make([]dashboardSuggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		suggestionItems = append(suggestionItems, dashboardSuggestion{
			Message:  sg.Message,
			Priority: sg.Priority,
			Category: sg.Category,
			Icon:     sg.Icon(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"greeting": greetingForHour(now.Hour()),
		"date":     now.Format("Monday, January 02, 2006"),
		"weather":  weatherPayload,
		"activities": map[string]any{
			"items":     items,
			"total":     len(items),
			"completed": completed,
		},
		"holidays":    holidays,
		"suggestions": suggestionItems,
	})
}

func greetingForHour(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

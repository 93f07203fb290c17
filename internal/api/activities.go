package api

import (
	"net/http"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

// activityResponse is the wire shape of an activity.
type activityResponse struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	StartTime         string `json:"start_time"`
	Category          string `json:"category"`
	Description       string `json:"description,omitempty"`
	Duration          *int   `json:"duration,omitempty"`
	DurationFormatted string `json:"duration_formatted"`
	Recurrence        string `json:"recurrence"`
	CustomDays        string `json:"custom_days,omitempty"`
	Location          string `json:"location,omitempty"`
	PrepTime          int    `json:"prep_time"`
	IsOutdoor         bool   `json:"is_outdoor"`
	IsActive          bool   `json:"is_active"`
}

func toActivityResponse(a model.Activity) activityResponse {
	return activityResponse{
		ID:                a.ID,
		Title:             a.Title,
		StartTime:         a.StartTime,
		Category:          a.Category,
		Description:       a.Description,
		Duration:          a.Duration,
		DurationFormatted: a.DurationFormatted(),
		Recurrence:        a.Recurrence,
		CustomDays:        a.CustomDays,
		Location:          a.Location,
		PrepTime:          a.PrepTime,
		IsOutdoor:         a.IsOutdoor,
		IsActive:          a.IsActive,
	}
}

func toActivityResponses(activities []model.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}

type createActivityRequest struct {
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Recurrence  string `json:"recurrence"`
	CustomDays  string `json:"custom_days"`
	Location    string `json:"location"`
	PrepTime    *int   `json:"prep_time"`
	IsOutdoor   bool   `json:"is_outdoor"`
}

type updateActivityRequest struct {
	Title       *string `json:"title"`
	StartTime   *string `json:"start_time"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
	Recurrence  *string `json:"recurrence"`
	CustomDays  *string `json:"custom_days"`
	Location    *string `json:"location"`
	PrepTime    *int    `json:"prep_time"`
	IsOutdoor   *bool   `json:"is_outdoor"`
}

type markRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
	Date   string `json:"date"`
}

// handleListActivities supports ?all, ?category, ?week and ?date filters;
// with none it returns today's schedule.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		activities []model.Activity
		err        error
	)
	switch {
	case queryBool(r, "all"):
		activities, err = s.activities.List(ctx, false)
	case q.Get("category") != "":
		activities, err = s.activities.ListByCategory(ctx, q.Get("category"))
	case queryBool(r, "week"):
		activities, err = s.activities.ForWeek(ctx, s.now())
	default:
		date := s.now()
		if raw := q.Get("date"); raw != "" {
			date, err = dateutil.ParseDate(raw, s.now())
			if err != nil {
				writeError(w, err)
				return
			}
		}
		activities, err = s.activities.ForDate(ctx, date)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponses(activities))
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	input := service.ActivityInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Recurrence:  req.Recurrence,
		CustomDays:  req.CustomDays,
		Location:    req.Location,
		IsOutdoor:   req.IsOutdoor,
	}
	if req.PrepTime != nil {
		input.PrepTime = *req.PrepTime
	} else {
		input.PrepTime = s.defaultPrepTime()
	}

	activity, err := s.activities.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(*activity))
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	activity, err := s.activities.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*activity))
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateActivityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.activities.Update(r.Context(), id, service.ActivityUpdate{
		Title:       req.Title,
		StartTime:   req.StartTime,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Recurrence:  req.Recurrence,
		CustomDays:  req.CustomDays,
		Location:    req.Location,
		PrepTime:    req.PrepTime,
		IsOutdoor:   req.IsOutdoor,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*activity))
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.activities.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted"})
}

func (s *Server) handleToggleActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	activity, err := s.activities.Toggle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*activity))
}

func (s *Server) handleMarkActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req markRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = dateutil.ParseDate(req.Date, s.now())
		if err != nil {
			writeError(w, err)
			return
		}
	}

	completion, err := s.ledger.Mark(r.Context(), id, req.Status, date, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"activity_id": completion.ActivityID,
		"date":        completion.Date.Format("2006-01-02"),
		"status":      completion.Status,
		"notes":       completion.Notes,
	})
}

type historyEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func (s *Server) handleActivityHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ctx := r.Context()

	activity, err := s.activities.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := queryInt(r, "limit", 10)
	completions, err := s.ledger.History(ctx, id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	streak, err := s.ledger.Streak(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	history := make([]historyEntry, 0, len(completions))
	for _, c := range completions {
		history = append(history, historyEntry{
			Date:   c.Date.Format("2006-01-02"),
			Status: c.Status,
			Notes:  c.Notes,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"activity": toActivityResponse(*activity),
		"streak":   streak,
		"history":  history,
	})
}

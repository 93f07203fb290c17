package api

import (
	"net/http"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

type analyticsResponse struct {
	service.WeekStats
	Insights []string              `json:"insights"`
	Streaks  []service.StreakEntry `json:"streaks"`
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var ref time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dateutil.ParseDate(raw, s.now())
		if err != nil {
			writeError(w, err)
			return
		}
		ref = parsed
	}

	stats, err := s.analytics.WeekStats(ctx, ref)
	if err != nil {
		writeError(w, err)
		return
	}
	streaks, err := s.analytics.Streaks(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(streaks) > 5 {
		streaks = streaks[:5]
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		WeekStats: stats,
		Insights:  s.analytics.Insights(stats),
		Streaks:   streaks,
	})
}

func (s *Server) handleAnalyticsCompare(w http.ResponseWriter, r *http.Request) {
	var ref time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dateutil.ParseDate(raw, s.now())
		if err != nil {
			writeError(w, err)
			return
		}
		ref = parsed
	}

	comparison, err := s.analytics.CompareWeeks(r.Context(), ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"current_rate":  comparison.Current.CompletionRate,
		"previous_rate": comparison.Previous.CompletionRate,
		"change":        comparison.RateChange,
		"improved":      comparison.Improved,
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dateutil.ParseDate(raw, s.now())
		if err != nil {
			writeError(w, err)
			return
		}
		date = parsed
	}

	suggestions, err := s.suggestions.ForDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

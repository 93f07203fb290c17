package api

import (
	"net/http"

	"github.com/LashaJaparidze15/Buddy/internal/config"
)

type settingsResponse struct {
	Location   string `json:"location"`
	Units      string `json:"units"`
	ReportTime string `json:"report_time"`
	ReviewTime string `json:"review_time"`
	PrepTime   int    `json:"prep_time"`
	WeekStart  string `json:"week_start"`
}

type settingsUpdateRequest struct {
	Location   string `json:"location"`
	Units      string `json:"units"`
	ReportTime string `json:"report_time"`
	ReviewTime string `json:"review_time"`
	PrepTime   int    `json:"prep_time"`
	WeekStart  string `json:"week_start"`
}

func toSettingsResponse(prefs config.Preferences) settingsResponse {
	return settingsResponse{
		Location:   prefs.Location,
		Units:      prefs.Units,
		ReportTime: prefs.ReportTime,
		ReviewTime: prefs.ReviewTime,
		PrepTime:   prefs.PrepTime,
		WeekStart:  prefs.WeekStart,
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := config.LoadPreferences(s.cfg.PrefsPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(prefs))
}

// handleUpdateSettings merges the provided fields over the stored overlay.
// Changes to report/review times take effect on the next process start.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	prefs, err := config.SavePreferences(s.cfg.PrefsPath, config.Preferences{
		Location:   req.Location,
		Units:      req.Units,
		ReportTime: req.ReportTime,
		ReviewTime: req.ReviewTime,
		PrepTime:   req.PrepTime,
		WeekStart:  req.WeekStart,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Settings updated",
		"settings": toSettingsResponse(prefs),
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences are the user-tunable settings stored as a YAML overlay on top
// of the compiled-in defaults. Zero-valued fields in the file fall back to
// the defaults on load.
type Preferences struct {
	Location   string `yaml:"location,omitempty"`
	Units      string `yaml:"units,omitempty"`
	ReportTime string `yaml:"report_time,omitempty"`
	ReviewTime string `yaml:"review_time,omitempty"`
	PrepTime   int    `yaml:"prep_time,omitempty"`
	WeekStart  string `yaml:"week_start,omitempty"`
}

// DefaultPreferences returns the compiled-in preference values.
func DefaultPreferences() Preferences {
	return Preferences{
		Location:   DefaultLocation,
		Units:      DefaultUnits,
		ReportTime: DefaultReportTime,
		ReviewTime: DefaultReviewTime,
		PrepTime:   DefaultPrepTime,
		WeekStart:  DefaultWeekStart,
	}
}

// LoadPreferences reads the overlay file and merges it over the defaults.
// A missing file is not an error.
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}

	var stored Preferences
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return prefs, fmt.Errorf("parse preferences: %w", err)
	}
	prefs.merge(stored)
	return prefs, nil
}

// SavePreferences applies updates on top of whatever the file currently
// holds and writes the result back (read-merge-write).
func SavePreferences(path string, updates Preferences) (Preferences, error) {
	current, err := LoadPreferences(path)
	if err != nil {
		return current, err
	}
	current.merge(updates)

	data, err := yaml.Marshal(current)
	if err != nil {
		return current, fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return current, fmt.Errorf("create config dir %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return current, fmt.Errorf("write preferences: %w", err)
	}
	return current, nil
}

func (p *Preferences) merge(other Preferences) {
	if other.Location != "" {
		p.Location = other.Location
	}
	if other.Units != "" {
		p.Units = other.Units
	}
	if other.ReportTime != "" {
		p.ReportTime = other.ReportTime
	}
	if other.ReviewTime != "" {
		p.ReviewTime = other.ReviewTime
	}
	if other.PrepTime != 0 {
		p.PrepTime = other.PrepTime
	}
	if other.WeekStart != "" {
		p.WeekStart = other.WeekStart
	}
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults for user-tunable preferences.
const (
	DefaultLocation   = "London"
	DefaultUnits      = "metric" // "metric" (Celsius) or "imperial" (Fahrenheit)
	DefaultReportTime = "06:00"
	DefaultReviewTime = "21:00"
	DefaultPrepTime   = 15
	DefaultWeekStart  = "monday"
)

// Config keeps runtime settings for the planner. It is assembled once at
// process start and handed to the constructors that need it; there is no
// global settings singleton.
type Config struct {
	DatabasePath string
	PrefsPath    string

	WeatherAPIKey string
	NewsAPIKey    string
	StocksAPIKey  string

	TelegramToken  string
	TelegramChatID int64

	Prefs Preferences
}

// Load reads configuration from environment variables with sane defaults
// and merges the stored preference overlay on top.
func Load() (Config, error) {
	cfg := Config{
		DatabasePath:  strings.TrimSpace(os.Getenv("BUDDY_DATABASE_PATH")),
		PrefsPath:     strings.TrimSpace(os.Getenv("BUDDY_CONFIG_PATH")),
		WeatherAPIKey: strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		NewsAPIKey:    strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
		StocksAPIKey:  strings.TrimSpace(os.Getenv("STOCKS_API_KEY")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	dir := dataDir()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(dir, "buddy.db")
	}
	if cfg.PrefsPath == "" {
		cfg.PrefsPath = filepath.Join(dir, "config.yaml")
	}
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	prefs, err := LoadPreferences(cfg.PrefsPath)
	if err != nil {
		return cfg, err
	}
	cfg.Prefs = prefs

	return cfg, nil
}

func dataDir() string {
	if dir := strings.TrimSpace(os.Getenv("BUDDY_DATA_DIR")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".buddy")
}

// Package external holds the third-party snapshot providers the planner
// composes into reports and suggestions. Every client fails soft: a missing
// API key, timeout or bad payload yields an absent result, never an error,
// so one dead integration cannot block schedule or analytics work.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const weatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Weather is a current-conditions snapshot.
type Weather struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	Units       string  `json:"units"`
}

// TempUnit returns the display unit for the configured unit system.
func (w Weather) TempUnit() string {
	if w.Units == "imperial" {
		return "°F"
	}
	return "°C"
}

// WindUnit returns the wind-speed display unit.
func (w Weather) WindUnit() string {
	if w.Units == "imperial" {
		return "mph"
	}
	return "m/s"
}

// Summary returns a one-line description.
func (w Weather) Summary() string {
	return fmt.Sprintf("%.1f%s, %s", w.Temperature, w.TempUnit(), w.Description)
}

// ForecastItem is a single 3-hour forecast entry.
type ForecastItem struct {
	Datetime    string  `json:"datetime"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Units       string  `json:"units"`
}

// WeatherClient fetches data from OpenWeatherMap.
type WeatherClient struct {
	apiKey   string
	location string
	units    string
	client   *http.Client
	baseURL  string
}

func NewWeatherClient(apiKey, location, units string) *WeatherClient {
	return &WeatherClient{
		apiKey:   apiKey,
		location: location,
		units:    units,
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  weatherBaseURL,
	}
}

func (c *WeatherClient) get(ctx context.Context, endpoint string, params url.Values, out any) bool {
	if c.apiKey == "" {
		return false
	}
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}

type owmCurrent struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the current weather, or nil when unavailable. location
// overrides the configured default when non-empty.
func (c *WeatherClient) Current(ctx context.Context, location string) *Weather {
	loc := location
	if loc == "" {
		loc = c.location
	}

	var payload owmCurrent
	if !c.get(ctx, "weather", url.Values{"q": {loc}}, &payload) {
		return nil
	}
	if len(payload.Weather) == 0 {
		return nil
	}

	name := payload.Name
	if name == "" {
		name = loc
	}
	return &Weather{
		Location:    name,
		Temperature: round1(payload.Main.Temp),
		FeelsLike:   round1(payload.Main.FeelsLike),
		Humidity:    payload.Main.Humidity,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		WindSpeed:   round1(payload.Wind.Speed),
		Units:       c.units,
	}
}

type owmForecast struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast returns up to hours/3 three-hour entries, empty when
// unavailable.
func (c *WeatherClient) Forecast(ctx context.Context, location string, hours int) []ForecastItem {
	loc := location
	if loc == "" {
		loc = c.location
	}

	var payload owmForecast
	if !c.get(ctx, "forecast", url.Values{"q": {loc}}, &payload) {
		return nil
	}

	intervals := hours / 3
	items := make([]ForecastItem, 0, intervals)
	for i, entry := range payload.List {
		if i >= intervals {
			break
		}
		item := ForecastItem{
			Datetime:    entry.DtTxt,
			Temperature: round1(entry.Main.Temp),
			Units:       c.units,
		}
		if len(entry.Weather) > 0 {
			item.Description = entry.Weather[0].Description
			item.Icon = entry.Weather[0].Icon
		}
		items = append(items, item)
	}
	return items
}

// Suggestion returns a single standalone weather tip, or "" when the
// snapshot is unavailable or unremarkable.
func (c *WeatherClient) Suggestion(ctx context.Context, isOutdoor bool) string {
	weather := c.Current(ctx, "")
	if weather == nil {
		return ""
	}

	hot, veryHot, cold, freezing := 30.0, 35.0, 5.0, 0.0
	if c.units == "imperial" {
		hot, veryHot, cold, freezing = 86, 95, 41, 32
	}

	switch {
	case weather.Temperature > veryHot:
		return "🔥 Very hot - stay hydrated and avoid peak sun hours"
	case weather.Temperature > hot:
		return "☀️ Hot day - drink plenty of water"
	case weather.Temperature < freezing:
		return "❄️ Freezing - watch for ice"
	case weather.Temperature < cold:
		return "🥶 Cold weather - dress warmly"
	}

	desc := strings.ToLower(weather.Description)
	switch {
	case strings.Contains(desc, "rain"):
		return "🌧️ Rain expected - bring an umbrella"
	case strings.Contains(desc, "snow"):
		return "🌨️ Snow expected - allow extra travel time"
	case strings.Contains(desc, "storm"), strings.Contains(desc, "thunder"):
		return "⛈️ Storms expected - consider rescheduling outdoor activities"
	}

	windLimit := 10.0
	if c.units == "imperial" {
		windLimit = 22
	}
	if weather.WindSpeed > windLimit {
		return "💨 Strong winds expected"
	}

	if isOutdoor && (strings.Contains(desc, "clear") || strings.Contains(desc, "sun")) {
		return "😎 Great weather for outdoor activities!"
	}
	return ""
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

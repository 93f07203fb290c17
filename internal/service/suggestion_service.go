package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/external"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
)

// Suggestion priorities and categories.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is a single context-aware tip for the day.
type Suggestion struct {
	Message    string `json:"message"`
	Priority   string `json:"priority"`
	Category   string `json:"category"`
	ActivityID uint   `json:"activity_id,omitempty"`
}

// Icon returns the marker shown before the message.
func (s Suggestion) Icon() string {
	switch s.Category {
	case "weather":
		return "🌤️"
	case "time":
		return "⏰"
	case "pattern":
		return "📊"
	case "reminder":
		return "🔔"
	case "health":
		return "💪"
	default:
		return "💡"
	}
}

// Display returns the icon-prefixed message.
func (s Suggestion) Display() string {
	return s.Icon() + " " + s.Message
}

// WeatherProvider is the slice of the weather client the suggestion engine
// needs. A nil snapshot silently skips the weather rules.
type WeatherProvider interface {
	Current(ctx context.Context, location string) *external.Weather
}

// Rush hour windows, inclusive on both ends, in minutes since midnight.
var (
	morningRushStart = 7*60 + 0
	morningRushEnd   = 9*60 + 30
	eveningRushStart = 16*60 + 30
	eveningRushEnd   = 19*60 + 0
)

// SuggestionService generates context-aware suggestions for a date by
// combining the schedule, the completion ledger and the current weather.
type SuggestionService struct {
	activities  *ActivityService
	completions *repository.CompletionRepository
	weather     WeatherProvider

	now func() time.Time
}

func NewSuggestionService(activities *ActivityService, completions *repository.CompletionRepository, weather WeatherProvider) *SuggestionService {
	return &SuggestionService{
		activities:  activities,
		completions: completions,
		weather:     weather,
		now:         time.Now,
	}
}

// ForDate returns all suggestions for a date (today when zero), ordered
// high, medium then low. Within a priority the rule order is stable:
// weather, time, pattern, activity.
func (s *SuggestionService) ForDate(ctx context.Context, date time.Time) ([]Suggestion, error) {
	if date.IsZero() {
		date = s.now()
	}

	dayActivities, err := s.activities.ForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var suggestions []Suggestion
	suggestions = append(suggestions, s.weatherSuggestions(ctx, date, dayActivities)...)

	timeBased, err := s.timeSuggestions(ctx, date, dayActivities)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, timeBased...)

	patterns, err := s.patternSuggestions(ctx, date, dayActivities)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, patterns...)
	suggestions = append(suggestions, s.activitySuggestions(ctx, dayActivities)...)

	rank := map[string]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, ok := rank[suggestions[i].Priority]
		if !ok {
			ri = 2
		}
		rj, ok := rank[suggestions[j].Priority]
		if !ok {
			rj = 2
		}
		return ri < rj
	})
	return suggestions, nil
}

// weatherSuggestions only fires for today, since the snapshot describes
// current conditions.
func (s *SuggestionService) weatherSuggestions(ctx context.Context, date time.Time, activities []model.Activity) []Suggestion {
	if !dateutil.SameDay(date, s.now()) || s.weather == nil {
		return nil
	}
	weather := s.weather.Current(ctx, "")
	if weather == nil {
		return nil
	}

	var suggestions []Suggestion

	temp := weather.Temperature
	unit := weather.TempUnit()
	veryHot, hot, freezing, cold := 35.0, 30.0, 0.0, 10.0
	if weather.Units == "imperial" {
		veryHot, hot, freezing, cold = 95, 86, 32, 50
	}
	switch {
	case temp > veryHot:
		suggestions = append(suggestions, Suggestion{
			Message:  fmt.Sprintf("Extreme heat (%.1f%s)! Stay hydrated and avoid midday sun.", temp, unit),
			Priority: PriorityHigh,
			Category: "weather",
		})
	case temp > hot:
		suggestions = append(suggestions, Suggestion{
			Message:  fmt.Sprintf("Hot day (%.1f%s) - drink plenty of water.", temp, unit),
			Priority: PriorityMedium,
			Category: "weather",
		})
	case temp < freezing:
		suggestions = append(suggestions, Suggestion{
			Message:  fmt.Sprintf("Freezing (%.1f%s)! Watch for ice, dress warmly.", temp, unit),
			Priority: PriorityHigh,
			Category: "weather",
		})
	case temp < cold:
		suggestions = append(suggestions, Suggestion{
			Message:  fmt.Sprintf("Cold day (%.1f%s) - dress in layers.", temp, unit),
			Priority: PriorityLow,
			Category: "weather",
		})
	}

	desc := strings.ToLower(weather.Description)
	if strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle") {
		suggestions = append(suggestions, Suggestion{
			Message:  "Rain expected - bring an umbrella! ☔",
			Priority: PriorityHigh,
			Category: "weather",
		})
		for _, a := range activities {
			if a.IsOutdoor {
				suggestions = append(suggestions, Suggestion{
					Message:    fmt.Sprintf("Consider moving '%s' indoors due to rain.", a.Title),
					Priority:   PriorityMedium,
					Category:   "weather",
					ActivityID: a.ID,
				})
			}
		}
	}
	if strings.Contains(desc, "snow") {
		suggestions = append(suggestions, Suggestion{
			Message:  "Snow expected - allow extra travel time. ❄️",
			Priority: PriorityHigh,
			Category: "weather",
		})
	}
	if strings.Contains(desc, "storm") || strings.Contains(desc, "thunder") {
		suggestions = append(suggestions, Suggestion{
			Message:  "Storms expected - stay safe, avoid outdoor activities. ⛈️",
			Priority: PriorityHigh,
			Category: "weather",
		})
	}

	windLimit := 15.0
	if weather.Units == "imperial" {
		windLimit = 33
	}
	if weather.WindSpeed > windLimit {
		suggestions = append(suggestions, Suggestion{
			Message:  "Strong winds today - secure loose items.",
			Priority: PriorityMedium,
			Category: "weather",
		})
	}

	return suggestions
}

// timeSuggestions covers rush-hour conflicts, imminent starts within the
// prep window and early starts tomorrow evening. Like the weather rules it
// only applies to today, where "now" is meaningful.
func (s *SuggestionService) timeSuggestions(ctx context.Context, date time.Time, activities []model.Activity) ([]Suggestion, error) {
	now := s.now()
	if !dateutil.SameDay(date, now) {
		return nil, nil
	}
	nowMinutes := now.Hour()*60 + now.Minute()

	var suggestions []Suggestion
	for _, a := range activities {
		start := a.StartMinutes()
		if a.Location != "" && isRushHour(start) {
			suggestions = append(suggestions, Suggestion{
				Message:    fmt.Sprintf("'%s' is during rush hour - leave early!", a.Title),
				Priority:   PriorityMedium,
				Category:   "time",
				ActivityID: a.ID,
			})
		}
		if start > nowMinutes {
			until := start - nowMinutes
			if until <= a.PrepTime {
				suggestions = append(suggestions, Suggestion{
					Message:    fmt.Sprintf("'%s' starts in %d minutes!", a.Title, until),
					Priority:   PriorityHigh,
					Category:   "reminder",
					ActivityID: a.ID,
				})
			}
		}
	}

	if nowMinutes >= 20*60 {
		tomorrow, err := s.activities.ForDate(ctx, date.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		var earliest *model.Activity
		for i := range tomorrow {
			if tomorrow[i].StartMinutes() >= 8*60 {
				continue
			}
			if earliest == nil || tomorrow[i].StartMinutes() < earliest.StartMinutes() {
				earliest = &tomorrow[i]
			}
		}
		if earliest != nil {
			suggestions = append(suggestions, Suggestion{
				Message:  fmt.Sprintf("Early start tomorrow: '%s' at %s", earliest.Title, earliest.StartTime),
				Priority: PriorityMedium,
				Category: "time",
			})
		}
	}

	return suggestions, nil
}

// patternSuggestions inspects each activity's last ten ledger records for a
// low overall done rate and for weekdays where it keeps getting missed.
func (s *SuggestionService) patternSuggestions(ctx context.Context, date time.Time, activities []model.Activity) ([]Suggestion, error) {
	var suggestions []Suggestion
	dayName := dateutil.DayName(date)

	for _, a := range activities {
		history, err := s.completions.ListByActivity(ctx, a.ID, 10)
		if err != nil {
			return nil, err
		}
		if len(history) < 3 {
			continue
		}

		done := 0
		for _, c := range history {
			if c.Status == model.StatusDone {
				done++
			}
		}
		rate := float64(done) / float64(len(history)) * 100
		if rate < 40 {
			suggestions = append(suggestions, Suggestion{
				Message:    fmt.Sprintf("'%s' often missed (%d%%). Set extra reminders?", a.Title, int(rate)),
				Priority:   PriorityMedium,
				Category:   "pattern",
				ActivityID: a.ID,
			})
		}

		sameDay, sameDayMissed := 0, 0
		for _, c := range history {
			if dateutil.DayName(c.Date) != dayName {
				continue
			}
			sameDay++
			if c.Status == model.StatusMissed {
				sameDayMissed++
			}
		}
		if sameDay >= 2 && float64(sameDayMissed)/float64(sameDay) > 0.5 {
			suggestions = append(suggestions, Suggestion{
				Message:    fmt.Sprintf("'%s' is often missed on %ss.", a.Title, dayName),
				Priority:   PriorityLow,
				Category:   "pattern",
				ActivityID: a.ID,
			})
		}
	}

	return suggestions, nil
}

// activitySuggestions flags humid conditions for outdoor health activities
// and tight gaps between consecutive activities.
func (s *SuggestionService) activitySuggestions(ctx context.Context, activities []model.Activity) []Suggestion {
	var suggestions []Suggestion

	var weather *external.Weather
	weatherFetched := false
	for _, a := range activities {
		if a.Category != "Health" || !a.IsOutdoor {
			continue
		}
		if !weatherFetched {
			weatherFetched = true
			if s.weather != nil {
				weather = s.weather.Current(ctx, "")
			}
		}
		if weather != nil && weather.Humidity > 80 {
			suggestions = append(suggestions, Suggestion{
				Message:    fmt.Sprintf("High humidity (%d%%) for '%s' - take it easy.", weather.Humidity, a.Title),
				Priority:   PriorityMedium,
				Category:   "health",
				ActivityID: a.ID,
			})
		}
	}

	for i := 0; i+1 < len(activities); i++ {
		current, next := activities[i], activities[i+1]
		end := current.EndMinutes()
		if end < 0 {
			continue
		}
		gap := next.StartMinutes() - end
		if gap >= 0 && gap < 15 {
			suggestions = append(suggestions, Suggestion{
				Message:  fmt.Sprintf("Tight schedule: only %d min between '%s' and '%s'", gap, current.Title, next.Title),
				Priority: PriorityLow,
				Category: "time",
			})
		}
	}

	return suggestions
}

func isRushHour(startMinutes int) bool {
	morning := startMinutes >= morningRushStart && startMinutes <= morningRushEnd
	evening := startMinutes >= eveningRushStart && startMinutes <= eveningRushEnd
	return morning || evening
}

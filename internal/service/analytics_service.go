package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
)

// CategoryStats holds per-category completion numbers for one week. Done
// carries half credit for partial completions, truncated to an int for
// display while the rate keeps the fraction.
type CategoryStats struct {
	Done  int     `json:"done"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}

// DayStats mirrors CategoryStats keyed by full day name.
type DayStats struct {
	Done  int     `json:"done"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}

// WeekStats is the full analytics breakdown for one week window.
type WeekStats struct {
	WeekStart      time.Time                `json:"week_start"`
	WeekEnd        time.Time                `json:"week_end"`
	Total          int                      `json:"total"`
	Done           int                      `json:"done"`
	Missed         int                      `json:"missed"`
	Partial        int                      `json:"partial"`
	Rescheduled    int                      `json:"rescheduled"`
	CompletionRate float64                  `json:"completion_rate"`
	ByCategory     map[string]CategoryStats `json:"by_category"`
	ByDay          map[string]DayStats      `json:"by_day"`
	BestDay        string                   `json:"best_day,omitempty"`
	WorstDay       string                   `json:"worst_day,omitempty"`
}

// StreakEntry pairs an activity with its current streak.
type StreakEntry struct {
	ActivityID uint   `json:"activity_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Streak     int    `json:"streak"`
}

// WeekComparison holds this week's stats against the previous week's.
type WeekComparison struct {
	Current    WeekStats `json:"current"`
	Previous   WeekStats `json:"previous"`
	RateChange float64   `json:"rate_change"`
	Improved   bool      `json:"improved"`
}

// AnalyticsService derives weekly statistics, streaks and insights from the
// completion ledger.
type AnalyticsService struct {
	activities  *repository.ActivityRepository
	completions *repository.CompletionRepository
	ledger      *CompletionService
	weekStart   string

	now func() time.Time
}

func NewAnalyticsService(activities *repository.ActivityRepository, completions *repository.CompletionRepository, ledger *CompletionService, weekStart string) *AnalyticsService {
	if weekStart == "" {
		weekStart = dateutil.WeekStartMonday
	}
	return &AnalyticsService{
		activities:  activities,
		completions: completions,
		ledger:      ledger,
		weekStart:   weekStart,
		now:         time.Now,
	}
}

// WeekStats computes the full breakdown for the week containing ref
// (today when zero).
func (s *AnalyticsService) WeekStats(ctx context.Context, ref time.Time) (WeekStats, error) {
	if ref.IsZero() {
		ref = s.now()
	}
	weekStart, weekEnd := dateutil.WeekBounds(ref, s.weekStart)

	completions, err := s.completions.ListByDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		return WeekStats{}, err
	}

	stats := WeekStats{
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		ByCategory: map[string]CategoryStats{},
		ByDay:      map[string]DayStats{},
	}
	if len(completions) == 0 {
		return stats, nil
	}

	tally := tallyStats(completions)
	stats.Total = tally.Total
	stats.Done = tally.Done
	stats.Missed = tally.Missed
	stats.Partial = tally.Partial
	stats.Rescheduled = tally.Rescheduled
	stats.CompletionRate = tally.CompletionRate

	byCategory, err := s.categoryBreakdown(ctx, completions)
	if err != nil {
		return WeekStats{}, err
	}
	stats.ByCategory = byCategory
	stats.ByDay = dayBreakdown(completions)
	stats.BestDay, stats.WorstDay = pickBestWorstDays(stats.ByDay)

	return stats, nil
}

// categoryBreakdown joins each completion to its owning activity's category.
func (s *AnalyticsService) categoryBreakdown(ctx context.Context, completions []model.Completion) (map[string]CategoryStats, error) {
	activities, err := s.activities.ListAll(ctx, false)
	if err != nil {
		return nil, err
	}
	categoryByID := make(map[uint]string, len(activities))
	for _, a := range activities {
		categoryByID[a.ID] = a.Category
	}

	credit := map[string]float64{}
	totals := map[string]int{}
	for _, c := range completions {
		category, ok := categoryByID[c.ActivityID]
		if !ok {
			continue
		}
		totals[category]++
		switch c.Status {
		case model.StatusDone:
			credit[category]++
		case model.StatusPartial:
			credit[category] += 0.5
		}
	}

	result := make(map[string]CategoryStats, len(totals))
	for category, total := range totals {
		result[category] = CategoryStats{
			Done:  int(credit[category]),
			Total: total,
			Rate:  completionRate(credit[category], total),
		}
	}
	return result, nil
}

func dayBreakdown(completions []model.Completion) map[string]DayStats {
	credit := map[string]float64{}
	totals := map[string]int{}
	for _, c := range completions {
		day := dateutil.DayName(c.Date)
		totals[day]++
		switch c.Status {
		case model.StatusDone:
			credit[day]++
		case model.StatusPartial:
			credit[day] += 0.5
		}
	}

	result := make(map[string]DayStats, len(totals))
	for day, total := range totals {
		result[day] = DayStats{
			Done:  int(credit[day]),
			Total: total,
			Rate:  completionRate(credit[day], total),
		}
	}
	return result
}

var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// pickBestWorstDays sorts the present days by rate descending and takes the
// two ends independently. A week with a single active day therefore yields
// bestDay == worstDay; that has always been the behavior and consumers
// rely on it.
func pickBestWorstDays(byDay map[string]DayStats) (string, string) {
	if len(byDay) == 0 {
		return "", ""
	}

	days := make([]string, 0, len(byDay))
	for _, day := range weekdayOrder {
		if _, ok := byDay[day]; ok {
			days = append(days, day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return byDay[days[i]].Rate > byDay[days[j]].Rate
	})

	best := ""
	if byDay[days[0]].Rate > 0 {
		best = days[0]
	}
	worst := ""
	if byDay[days[len(days)-1]].Total > 0 {
		worst = days[len(days)-1]
	}
	return best, worst
}

// Streaks returns the current streak for every active activity, longest
// first.
func (s *AnalyticsService) Streaks(ctx context.Context) ([]StreakEntry, error) {
	activities, err := s.activities.ListAll(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := make([]StreakEntry, 0, len(activities))
	for _, a := range activities {
		streak, err := s.ledger.Streak(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, StreakEntry{
			ActivityID: a.ID,
			Title:      a.Title,
			Category:   a.Category,
			Streak:     streak,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Streak > entries[j].Streak
	})
	return entries, nil
}

// Insights turns week stats into qualitative messages. Each rule emits at
// most one message, in a fixed order.
func (s *AnalyticsService) Insights(stats WeekStats) []string {
	var insights []string

	rate := stats.CompletionRate
	switch {
	case rate >= 80:
		insights = append(insights, "🌟 Excellent week! You completed over 80% of your activities.")
	case rate >= 60:
		insights = append(insights, "👍 Good progress this week! Keep pushing to reach 80%.")
	case rate >= 40:
		insights = append(insights, "💪 Room for improvement. Try breaking activities into smaller tasks.")
	case stats.Total > 0:
		insights = append(insights, "🎯 Challenging week. Consider reducing the number of activities.")
	}

	if best, ok := bestCategory(stats.ByCategory); ok && stats.ByCategory[best].Rate > 0 {
		insights = append(insights, fmt.Sprintf("🏆 Best category: %s (%.1f%% completion)", best, stats.ByCategory[best].Rate))
	}
	if len(stats.ByCategory) > 1 {
		if worst, ok := worstCategory(stats.ByCategory); ok && stats.ByCategory[worst].Rate < 50 {
			insights = append(insights, fmt.Sprintf("📉 Needs attention: %s (%.1f%% completion)", worst, stats.ByCategory[worst].Rate))
		}
	}
	if stats.BestDay != "" {
		insights = append(insights, fmt.Sprintf("📅 Most productive day: %s", stats.BestDay))
	}
	if stats.Missed > stats.Done {
		insights = append(insights, "⚠️ More activities missed than completed. Review your schedule.")
	}

	return insights
}

// CompareWeeks contrasts the week of ref against the week seven days
// earlier.
func (s *AnalyticsService) CompareWeeks(ctx context.Context, ref time.Time) (WeekComparison, error) {
	if ref.IsZero() {
		ref = s.now()
	}
	current, err := s.WeekStats(ctx, ref)
	if err != nil {
		return WeekComparison{}, err
	}
	previous, err := s.WeekStats(ctx, ref.AddDate(0, 0, -7))
	if err != nil {
		return WeekComparison{}, err
	}

	change := round1(current.CompletionRate - previous.CompletionRate)
	return WeekComparison{
		Current:    current,
		Previous:   previous,
		RateChange: change,
		Improved:   change > 0,
	}, nil
}

// bestCategory and worstCategory scan in canonical category order so ties
// resolve deterministically.
func bestCategory(byCategory map[string]CategoryStats) (string, bool) {
	best, found := "", false
	for _, category := range categoryScanOrder(byCategory) {
		if !found || byCategory[category].Rate > byCategory[best].Rate {
			best, found = category, true
		}
	}
	return best, found
}

func worstCategory(byCategory map[string]CategoryStats) (string, bool) {
	worst, found := "", false
	for _, category := range categoryScanOrder(byCategory) {
		if !found || byCategory[category].Rate < byCategory[worst].Rate {
			worst, found = category, true
		}
	}
	return worst, found
}

func categoryScanOrder(byCategory map[string]CategoryStats) []string {
	ordered := make([]string, 0, len(byCategory))
	for _, category := range model.Categories {
		if _, ok := byCategory[category]; ok {
			ordered = append(ordered, category)
		}
	}
	// Anything outside the canonical list (legacy rows) goes last.
	if len(ordered) < len(byCategory) {
		var extras []string
		for category := range byCategory {
			if !contains(ordered, category) {
				extras = append(extras, category)
			}
		}
		sort.Strings(extras)
		ordered = append(ordered, extras...)
	}
	return ordered
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/report"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		noWeather    bool
		noNews       bool
		noStocks     bool
		noHolidays   bool
		noActivities bool
		noQuote      bool
		newsCount    int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the daily report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := report.NewBuilder(app.Activities, app.Weather, app.News, app.Stocks, app.Holidays)

			opts := report.DefaultOptions()
			opts.Weather = !noWeather
			opts.News = !noNews
			opts.Stocks = !noStocks
			opts.Holidays = !noHolidays
			opts.Activities = !noActivities
			opts.Quote = !noQuote
			opts.NewsCount = newsCount

			rep, err := builder.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rep.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noWeather, "no-weather", false, "skip the weather section")
	cmd.Flags().BoolVar(&noNews, "no-news", false, "skip the news section")
	cmd.Flags().BoolVar(&noStocks, "no-stocks", false, "skip the market section")
	cmd.Flags().BoolVar(&noHolidays, "no-holidays", false, "skip the holidays section")
	cmd.Flags().BoolVar(&noActivities, "no-activities", false, "skip the schedule section")
	cmd.Flags().BoolVar(&noQuote, "no-quote", false, "skip the quote section")
	cmd.Flags().IntVar(&newsCount, "news-count", 5, "number of headlines")

	return cmd
}

func newAnalyticsCmd(app *App) *cobra.Command {
	var (
		dateStr string
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show weekly statistics, streaks and insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var ref time.Time
			if dateStr != "" {
				parsed, err := dateutil.ParseDate(dateStr, time.Now())
				if err != nil {
					return err
				}
				ref = parsed
			}

			if compare {
				comparison, err := app.Analytics.CompareWeeks(ctx, ref)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "This week:     %.1f%%\n", comparison.Current.CompletionRate)
				fmt.Fprintf(out, "Previous week: %.1f%%\n", comparison.Previous.CompletionRate)
				trend := "📉"
				if comparison.Improved {
					trend = "📈"
				}
				fmt.Fprintf(out, "Change:        %s %+.1f%%\n", trend, comparison.RateChange)
				return nil
			}

			stats, err := app.Analytics.WeekStats(ctx, ref)
			if err != nil {
				return err
			}
			renderWeekStats(out, stats)

			for _, insight := range app.Analytics.Insights(stats) {
				fmt.Fprintln(out, insight)
			}

			streaks, err := app.Analytics.Streaks(ctx)
			if err != nil {
				return err
			}
			printed := 0
			for _, entry := range streaks {
				if entry.Streak == 0 || printed == 5 {
					break
				}
				if printed == 0 {
					fmt.Fprintln(out, "\nStreaks:")
				}
				fmt.Fprintf(out, "  🔥 %d days - %s (%s)\n", entry.Streak, entry.Title, entry.Category)
				printed++
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "analyze the week containing this date")
	cmd.Flags().BoolVar(&compare, "compare", false, "compare against the previous week")

	return cmd
}

func renderWeekStats(out io.Writer, stats service.WeekStats) {
	fmt.Fprintf(out, "Week %s - %s\n\n", stats.WeekStart.Format("Jan 02"), stats.WeekEnd.Format("Jan 02"))
	fmt.Fprintf(out, "Total: %d  Done: %d  Missed: %d  Partial: %d  Rescheduled: %d\n",
		stats.Total, stats.Done, stats.Missed, stats.Partial, stats.Rescheduled)
	fmt.Fprintf(out, "Completion rate: %.1f%%\n", stats.CompletionRate)

	if len(stats.ByCategory) > 0 {
		fmt.Fprintln(out, "\nBy category:")
		for category, cs := range stats.ByCategory {
			fmt.Fprintf(out, "  %-10s %d/%d (%.1f%%)\n", category, cs.Done, cs.Total, cs.Rate)
		}
	}
	if stats.BestDay != "" {
		fmt.Fprintf(out, "\nBest day:  %s\n", stats.BestDay)
	}
	if stats.WorstDay != "" {
		fmt.Fprintf(out, "Worst day: %s\n", stats.WorstDay)
	}
	fmt.Fprintln(out)
}

func newSuggestCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show context-aware suggestions for the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var date time.Time
			if dateStr != "" {
				parsed, err := dateutil.ParseDate(dateStr, time.Now())
				if err != nil {
					return err
				}
				date = parsed
			}

			suggestions, err := app.Suggestions.ForDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "✨ No suggestions - you're all set!")
				return nil
			}

			printGroup := func(header, priority string) {
				first := true
				for _, s := range suggestions {
					if s.Priority != priority {
						continue
					}
					if first {
						fmt.Fprintln(out, header)
						first = false
					}
					fmt.Fprintf(out, "  %s\n", s.Display())
				}
			}
			printGroup("⚠️ Important:", service.PriorityHigh)
			printGroup("📌 Recommended:", service.PriorityMedium)
			printGroup("💭 Tips:", service.PriorityLow)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "suggestions for a specific date")
	return cmd
}

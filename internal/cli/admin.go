package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/config"
	"github.com/LashaJaparidze15/Buddy/internal/model"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func newConfigCmd(app *App) *cobra.Command {
	var (
		show       bool
		location   string
		units      string
		reportTime string
		reviewTime string
		weekStart  string
		prepTime   int
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			flags := cmd.Flags()

			updates := config.Preferences{
				Location:   location,
				ReportTime: reportTime,
				ReviewTime: reviewTime,
				PrepTime:   prepTime,
			}
			if flags.Changed("units") {
				u := strings.ToLower(units)
				if u != "metric" && u != "imperial" {
					return model.Validationf("units must be metric or imperial")
				}
				updates.Units = u
			}
			if flags.Changed("week-start") {
				ws := strings.ToLower(weekStart)
				if ws != "monday" && ws != "sunday" {
					return model.Validationf("week-start must be monday or sunday")
				}
				updates.WeekStart = ws
			}

			changed := updates != (config.Preferences{})
			if changed {
				prefs, err := config.SavePreferences(app.Config.PrefsPath, updates)
				if err != nil {
					return err
				}
				app.Config.Prefs = prefs
				fmt.Fprintln(out, "Preferences saved.")
			}

			if show || !changed {
				prefs := app.Config.Prefs
				fmt.Fprintf(out, "Location:    %s\n", prefs.Location)
				fmt.Fprintf(out, "Units:       %s\n", prefs.Units)
				fmt.Fprintf(out, "Report time: %s\n", prefs.ReportTime)
				fmt.Fprintf(out, "Review time: %s\n", prefs.ReviewTime)
				fmt.Fprintf(out, "Prep time:   %d min\n", prefs.PrepTime)
				fmt.Fprintf(out, "Week start:  %s\n", prefs.WeekStart)
				fmt.Fprintf(out, "\nConfig file: %s\n", app.Config.PrefsPath)
				fmt.Fprintf(out, "Database:    %s\n", app.Config.DatabasePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the current preferences")
	cmd.Flags().StringVar(&location, "location", "", "default weather location")
	cmd.Flags().StringVar(&units, "units", "", "metric or imperial")
	cmd.Flags().StringVar(&reportTime, "report-time", "", "daily report time, HH:MM")
	cmd.Flags().StringVar(&reviewTime, "review-time", "", "evening review time, HH:MM")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "monday or sunday")
	cmd.Flags().IntVar(&prepTime, "prep-time", 0, "default prep lead time in minutes")

	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List valid categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, category := range model.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
			return nil
		},
	}
}

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory, database and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The database was migrated while wiring; persisting the defaults
			// materializes the config file.
			prefs, err := config.SavePreferences(app.Config.PrefsPath, app.Config.Prefs)
			if err != nil {
				return err
			}
			app.Config.Prefs = prefs

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database ready: %s\n", app.Config.DatabasePath)
			fmt.Fprintf(out, "Config ready:   %s\n", app.Config.PrefsPath)
			fmt.Fprintln(out, "All set. Try: buddy add \"Morning run\" --time 07:00 --recurrence daily")
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a one-glance summary of today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := time.Now()

			items, err := app.Reminders.Review(ctx, now)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s\n\n", now.Format("Monday, January 02, 2006"))
			if len(items) == 0 {
				fmt.Fprintln(out, "Nothing scheduled today.")
				return nil
			}

			done, unmarked := 0, 0
			for _, item := range items {
				fmt.Fprintf(out, "%s %s - %s\n", statusIcon(item.Status), item.Activity.StartTime, item.Activity.Title)
				switch item.Status {
				case model.StatusDone:
					done++
				case "":
					unmarked++
				}
			}
			fmt.Fprintf(out, "\n%d/%d done", done, len(items))
			if unmarked > 0 {
				fmt.Fprintf(out, ", %d unmarked", unmarked)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// No database or config needed for the version string.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "buddy %s\n", Version)
		},
	}
}

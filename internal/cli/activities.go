package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, model.Validationf("invalid activity id %q", arg)
	}
	return uint(id), nil
}

func newAddCmd(app *App) *cobra.Command {
	var (
		startTime  string
		category   string
		desc       string
		duration   int
		recurrence string
		customDays string
		location   string
		prepTime   int
		outdoor    bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Schedule a new activity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.ActivityInput{
				Title:       strings.Join(args, " "),
				StartTime:   startTime,
				Category:    category,
				Description: desc,
				Recurrence:  recurrence,
				CustomDays:  customDays,
				Location:    location,
				PrepTime:    prepTime,
				IsOutdoor:   outdoor,
			}
			if duration > 0 {
				input.Duration = &duration
			}

			activity, err := app.Activities.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added activity #%d: %s at %s (%s)\n",
				activity.ID, activity.Title, activity.StartTime, activity.Recurrence)
			return nil
		},
	}

	cmd.Flags().StringVarP(&startTime, "time", "t", "", "start time, e.g. 09:00 or 6:30pm (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (default Other)")
	cmd.Flags().StringVarP(&desc, "description", "d", "", "longer description")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().StringVarP(&recurrence, "recurrence", "r", "", "once|daily|weekdays|weekends|weekly|custom")
	cmd.Flags().StringVar(&customDays, "days", "", "custom recurrence days, e.g. mon,wed,fri")
	cmd.Flags().StringVarP(&location, "location", "l", "", "location")
	cmd.Flags().IntVar(&prepTime, "prep", 0, "preparation lead time in minutes")
	cmd.Flags().BoolVar(&outdoor, "outdoor", false, "mark as an outdoor activity")
	cobra.CheckErr(cmd.MarkFlagRequired("time"))

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var (
		week     bool
		all      bool
		category string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities (today by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				activities []model.Activity
				err        error
			)
			switch {
			case all:
				activities, err = app.Activities.List(ctx, false)
			case category != "":
				activities, err = app.Activities.ListByCategory(ctx, category)
			case week:
				activities, err = app.Activities.ForWeek(ctx, time.Now())
			default:
				date := time.Now()
				if dateStr != "" {
					date, err = dateutil.ParseDate(dateStr, time.Now())
					if err != nil {
						return err
					}
				}
				activities, err = app.Activities.ForDate(ctx, date)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderActivityTable(activities))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&week, "week", "w", false, "show this week's activities")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every activity, including paused")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "show a specific date (today, tomorrow, 2026-03-04, ...)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			activity, err := app.Activities.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderActivityDetail(*activity))

			streak, err := app.Ledger.Streak(cmd.Context(), id)
			if err != nil {
				return err
			}
			if streak > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  Streak:      🔥 %d days\n", streak)
			}
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var (
		title      string
		startTime  string
		category   string
		desc       string
		duration   int
		recurrence string
		customDays string
		location   string
		prepTime   int
		outdoor    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			var update service.ActivityUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				update.Title = &title
			}
			if flags.Changed("time") {
				update.StartTime = &startTime
			}
			if flags.Changed("category") {
				update.Category = &category
			}
			if flags.Changed("description") {
				update.Description = &desc
			}
			if flags.Changed("duration") {
				update.Duration = &duration
			}
			if flags.Changed("recurrence") {
				update.Recurrence = &recurrence
			}
			if flags.Changed("days") {
				update.CustomDays = &customDays
			}
			if flags.Changed("location") {
				update.Location = &location
			}
			if flags.Changed("prep") {
				update.PrepTime = &prepTime
			}
			if flags.Changed("outdoor") {
				update.IsOutdoor = &outdoor
			}

			activity, err := app.Activities.Update(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity #%d: %s\n", activity.ID, activity.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&startTime, "time", "t", "", "new start time")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&desc, "description", "d", "", "new description")
	cmd.Flags().IntVar(&duration, "duration", 0, "new duration in minutes")
	cmd.Flags().StringVarP(&recurrence, "recurrence", "r", "", "new recurrence")
	cmd.Flags().StringVar(&customDays, "days", "", "new custom recurrence days")
	cmd.Flags().StringVarP(&location, "location", "l", "", "new location")
	cmd.Flags().IntVar(&prepTime, "prep", 0, "new prep time in minutes")
	cmd.Flags().BoolVar(&outdoor, "outdoor", false, "outdoor flag")

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity and its completion history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			activity, err := app.Activities.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete '%s' and all its history? [y/N]: ", activity.Title)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Activities.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity #%d: %s\n", id, activity.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Pause or resume an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			activity, err := app.Activities.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "paused"
			if activity.IsActive {
				state = "active"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activity #%d is now %s.\n", activity.ID, state)
			return nil
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search activities by title or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderActivityTable(activities))
			return nil
		},
	}
}

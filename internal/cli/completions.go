package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/dateutil"
	"github.com/LashaJaparidze15/Buddy/internal/model"
)

func newMarkCmd(app *App) *cobra.Command {
	var (
		note    string
		dateStr string
	)

	cmd := &cobra.Command{
		Use:   "mark <id> <done|missed|partial|rescheduled>",
		Short: "Record how an activity went",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = dateutil.ParseDate(dateStr, time.Now())
				if err != nil {
					return err
				}
			}

			completion, err := app.Ledger.Mark(cmd.Context(), id, args[1], date, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Marked activity #%d as %s for %s\n",
				statusIcon(completion.Status), id, completion.Status, completion.Date.Format("2006-01-02"))

			if completion.Status == model.StatusDone {
				streak, err := app.Ledger.Streak(cmd.Context(), id)
				if err != nil {
					return err
				}
				if streak > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "🔥 %d day streak!\n", streak)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "attach a note to the record")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "mark a past date (today, yesterday, 2026-03-04, ...)")

	return cmd
}

func newReviewCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Walk through today's activities and record each outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := time.Now()
			if dateStr != "" {
				var err error
				date, err = dateutil.ParseDate(dateStr, time.Now())
				if err != nil {
					return err
				}
			}

			items, err := app.Reminders.Review(ctx, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No activities scheduled for this day.")
				return nil
			}

			fmt.Fprintf(out, "Reviewing %s (%d activities)\n", date.Format("Monday, January 02"), len(items))
			fmt.Fprintln(out, "For each: [d]one, [m]issed, [p]artial, [r]escheduled, [s]kip, [q]uit")

			reader := bufio.NewReader(cmd.InOrStdin())
			for _, item := range items {
				current := item.Status
				if current == "" {
					current = "unmarked"
				}
				fmt.Fprintf(out, "\n%s %s - %s [%s]: ", statusIcon(item.Status), item.Activity.StartTime, item.Activity.Title, current)

				line, err := reader.ReadString('\n')
				if err != nil {
					break
				}
				var status string
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "d", "done":
					status = model.StatusDone
				case "m", "missed":
					status = model.StatusMissed
				case "p", "partial":
					status = model.StatusPartial
				case "r", "rescheduled":
					status = model.StatusRescheduled
				case "q", "quit":
					fmt.Fprintln(out, "Review stopped.")
					return nil
				default:
					continue
				}

				if _, err := app.Ledger.Mark(ctx, item.Activity.ID, status, date, ""); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s recorded\n", statusIcon(status))
			}

			fmt.Fprintln(out, "\nReview complete.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "review a specific date")
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show the completion record for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			activity, err := app.Activities.Get(ctx, id)
			if err != nil {
				return err
			}
			completions, err := app.Ledger.History(ctx, id, limit)
			if err != nil {
				return err
			}
			streak, err := app.Ledger.Streak(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "History for #%d %s\n", activity.ID, activity.Title)
			if streak > 0 {
				fmt.Fprintf(out, "Current streak: 🔥 %d days\n", streak)
			}
			if len(completions) == 0 {
				fmt.Fprintln(out, "No completions recorded yet.")
				return nil
			}
			for _, c := range completions {
				line := fmt.Sprintf("%s %s %s", statusIcon(c.Status), c.Date.Format("2006-01-02"), c.Status)
				if c.Notes != "" {
					line += " - " + c.Notes
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of records to show (0 for all)")
	return cmd
}

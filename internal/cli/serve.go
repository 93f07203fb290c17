package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/api"
	"github.com/LashaJaparidze15/Buddy/internal/notify"
	"github.com/LashaJaparidze15/Buddy/internal/report"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily report/review jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scheduler, err := startJobs(ctx, app)
			if err != nil {
				return err
			}
			defer scheduler.Stop()

			server := api.NewServer(
				app.Config,
				app.Activities,
				app.Ledger,
				app.Analytics,
				app.Suggestions,
				app.Weather,
				app.News,
				app.Stocks,
				app.Holidays,
			)
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// startJobs registers the morning report and evening review jobs at the
// configured times. When Telegram is set up the texts are pushed there;
// either way they go to the log.
func startJobs(ctx context.Context, app *App) (*service.SchedulerService, error) {
	notifier, err := notify.NewTelegramNotifier(app.Config.TelegramToken, app.Config.TelegramChatID)
	if err != nil {
		return nil, err
	}
	if notifier != nil {
		log.Printf("telegram notifications enabled")
	}

	deliver := func(text string) {
		log.Printf("scheduled job output:\n%s", text)
		if notifier == nil {
			return
		}
		if err := notifier.Send(text); err != nil {
			log.Printf("telegram delivery failed: %v", err)
		}
	}

	builder := report.NewBuilder(app.Activities, app.Weather, app.News, app.Stocks, app.Holidays)
	scheduler := service.NewSchedulerService(time.Local)

	if _, err := scheduler.ScheduleDaily(app.Config.Prefs.ReportTime, func() {
		jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		rep, err := builder.Build(jobCtx, report.DefaultOptions())
		if err != nil {
			log.Printf("build daily report: %v", err)
			return
		}
		deliver(rep.Render())
	}); err != nil {
		return nil, fmt.Errorf("schedule report job: %w", err)
	}

	if _, err := scheduler.ScheduleDaily(app.Config.Prefs.ReviewTime, func() {
		jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		summary, err := app.Reminders.EveningSummary(jobCtx, time.Time{})
		if err != nil {
			log.Printf("build evening review: %v", err)
			return
		}
		deliver(summary)
	}); err != nil {
		return nil, fmt.Errorf("schedule review job: %w", err)
	}

	scheduler.Start()
	log.Printf("daily jobs scheduled: report %s, review %s", app.Config.Prefs.ReportTime, app.Config.Prefs.ReviewTime)
	return scheduler, nil
}

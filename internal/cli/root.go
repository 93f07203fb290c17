// Package cli implements the buddy command tree. Commands are thin: they
// parse flags, call the service layer and render plain text.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LashaJaparidze15/Buddy/internal/config"
	"github.com/LashaJaparidze15/Buddy/internal/external"
	"github.com/LashaJaparidze15/Buddy/internal/repository"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

// App carries the wired dependencies shared by every command. It is filled
// in once by PersistentPreRunE so flag parsing and help never touch the
// database.
type App struct {
	Config config.Config

	Activities  *service.ActivityService
	Ledger      *service.CompletionService
	Analytics   *service.AnalyticsService
	Suggestions *service.SuggestionService
	Reminders   *service.ReminderService

	Weather  *external.WeatherClient
	News     *external.NewsClient
	Stocks   *external.StocksClient
	Holidays *external.HolidaysClient
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "buddy",
		Short:        "Buddy - your smart daily planner",
		Long:         "Buddy tracks recurring activities, marks how each day went and turns the record into weekly analytics, streaks and context-aware suggestions.",
		SilenceUsage: true,
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.wire()
	}

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newMarkCmd(app))
	cmd.AddCommand(newReviewCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newReportCmd(app))
	cmd.AddCommand(newAnalyticsCmd(app))
	cmd.AddCommand(newSuggestCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// wire loads configuration, opens the database and builds the service
// graph.
func (a *App) wire() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.Config = cfg

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	activityRepo := repository.NewActivityRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	a.Activities = service.NewActivityService(activityRepo, cfg.Prefs.WeekStart)
	a.Ledger = service.NewCompletionService(completionRepo, activityRepo)
	a.Analytics = service.NewAnalyticsService(activityRepo, completionRepo, a.Ledger, cfg.Prefs.WeekStart)

	a.Weather = external.NewWeatherClient(cfg.WeatherAPIKey, cfg.Prefs.Location, cfg.Prefs.Units)
	a.News = external.NewNewsClient(cfg.NewsAPIKey)
	a.Stocks = external.NewStocksClient(cfg.StocksAPIKey)
	a.Holidays = external.NewHolidaysClient()

	a.Suggestions = service.NewSuggestionService(a.Activities, completionRepo, a.Weather)
	a.Reminders = service.NewReminderService(a.Activities, a.Ledger)

	return nil
}

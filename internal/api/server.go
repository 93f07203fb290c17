// Package api exposes the planner over a JSON HTTP API. Handlers translate
// between wire types and the service layer; domain errors map to status
// codes (validation 400, not found 404) and integration outages degrade to
// explicit unavailable payloads instead of 5xx.
package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/config"
	"github.com/LashaJaparidze15/Buddy/internal/external"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	activities  *service.ActivityService
	ledger      *service.CompletionService
	analytics   *service.AnalyticsService
	suggestions *service.SuggestionService

	weather  *external.WeatherClient
	news     *external.NewsClient
	stocks   *external.StocksClient
	holidays *external.HolidaysClient

	cfg config.Config

	now func() time.Time
}

func NewServer(
	cfg config.Config,
	activities *service.ActivityService,
	ledger *service.CompletionService,
	analytics *service.AnalyticsService,
	suggestions *service.SuggestionService,
	weather *external.WeatherClient,
	news *external.NewsClient,
	stocks *external.StocksClient,
	holidays *external.HolidaysClient,
) *Server {
	return &Server{
		activities:  activities,
		ledger:      ledger,
		analytics:   analytics,
		suggestions: suggestions,
		weather:     weather,
		news:        news,
		stocks:      stocks,
		holidays:    holidays,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *Server) defaultPrepTime() int {
	if s.cfg.Prefs.PrepTime > 0 {
		return s.cfg.Prefs.PrepTime
	}
	return config.DefaultPrepTime
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/activities", s.handleListActivities)
	mux.HandleFunc("POST /api/activities", s.handleCreateActivity)
	mux.HandleFunc("GET /api/activities/{id}", s.handleGetActivity)
	mux.HandleFunc("PUT /api/activities/{id}", s.handleUpdateActivity)
	mux.HandleFunc("DELETE /api/activities/{id}", s.handleDeleteActivity)
	mux.HandleFunc("POST /api/activities/{id}/toggle", s.handleToggleActivity)
	mux.HandleFunc("POST /api/activities/{id}/mark", s.handleMarkActivity)
	mux.HandleFunc("GET /api/activities/{id}/history", s.handleActivityHistory)

	mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	mux.HandleFunc("GET /api/analytics/compare", s.handleAnalyticsCompare)
	mux.HandleFunc("GET /api/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	mux.HandleFunc("GET /api/weather", s.handleWeather)
	mux.HandleFunc("GET /api/weather/forecast", s.handleWeatherForecast)
	mux.HandleFunc("GET /api/weather/suggestion", s.handleWeatherSuggestion)
	mux.HandleFunc("GET /api/news", s.handleNews)
	mux.HandleFunc("GET /api/news/categories", s.handleNewsCategories)
	mux.HandleFunc("GET /api/news/search", s.handleNewsSearch)
	mux.HandleFunc("GET /api/stocks", s.handleStocksWatchlist)
	mux.HandleFunc("GET /api/stocks/quote/{symbol}", s.handleStockQuote)
	mux.HandleFunc("GET /api/stocks/market", s.handleMarketSummary)

	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handleUpdateSettings)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// ListenAndServe runs the API until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("api listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

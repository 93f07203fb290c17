package api

import (
	"net/http"

	"github.com/LashaJaparidze15/Buddy/internal/external"
)

// Integration endpoints degrade to explicit unavailable payloads when the
// upstream is down or unconfigured, never 5xx.

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	var weather *external.Weather
	if s.weather != nil {
		weather = s.weather.Current(r.Context(), r.URL.Query().Get("location"))
	}
	if weather == nil {
		writeJSON(w, http.StatusOK, errorResponse{Error: "Weather data unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, weather)
}

func (s *Server) handleWeatherForecast(w http.ResponseWriter, r *http.Request) {
	hours := queryInt(r, "hours", 24)
	var items []external.ForecastItem
	if s.weather != nil {
		items = s.weather.Forecast(r.Context(), r.URL.Query().Get("location"), hours)
	}
	if items == nil {
		items = []external.ForecastItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleWeatherSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestion := ""
	if s.weather != nil {
		suggestion = s.weather.Suggestion(r.Context(), queryBool(r, "is_outdoor"))
	}
	writeJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var articles []external.Article
	if s.news != nil {
		articles = s.news.TopHeadlines(r.Context(), q.Get("category"), q.Get("country"), queryInt(r, "count", 10))
	}
	if articles == nil {
		articles = []external.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleNewsCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": external.NewsCategories})
}

func (s *Server) handleNewsSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter is required"})
		return
	}
	var articles []external.Article
	if s.news != nil {
		articles = s.news.Search(r.Context(), query, queryInt(r, "count", 10))
	}
	if articles == nil {
		articles = []external.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleStocksWatchlist(w http.ResponseWriter, r *http.Request) {
	var quotes []external.Quote
	if s.stocks != nil {
		quotes = s.stocks.WatchlistQuotes(r.Context(), nil)
	}
	if quotes == nil {
		quotes = []external.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *Server) handleStockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	var quote *external.Quote
	if s.stocks != nil {
		quote = s.stocks.GetQuote(r.Context(), symbol)
	}
	if quote == nil {
		writeJSON(w, http.StatusOK, errorResponse{Error: "Quote for " + symbol + " not available"})
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handleMarketSummary(w http.ResponseWriter, r *http.Request) {
	var summary []external.IndexQuote
	if s.stocks != nil {
		summary = s.stocks.MarketSummary(r.Context())
	}
	if summary == nil {
		summary = []external.IndexQuote{}
	}
	writeJSON(w, http.StatusOK, summary)
}

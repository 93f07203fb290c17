package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stocksBaseURL = "https://www.alphavantage.co/query"

// DefaultWatchlist is the symbol set quoted when none is configured.
var DefaultWatchlist = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA"}

// marketIndices maps display names to ETF proxies for the major indices.
var marketIndices = []struct {
	Name   string
	Symbol string
}{
	{"S&P 500", "SPY"},
	{"Nasdaq", "QQQ"},
	{"Dow Jones", "DIA"},
}

// Quote is a single stock quote.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Volume        int64   `json:"volume"`
}

// Direction returns an up/down/flat marker.
func (q Quote) Direction() string {
	switch {
	case q.Change > 0:
		return "🟢"
	case q.Change < 0:
		return "🔴"
	default:
		return "⚪"
	}
}

// Summary returns a one-line quote description.
func (q Quote) Summary() string {
	sign := ""
	if q.Change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s %s: $%.2f (%s%.2f%%)", q.Direction(), q.Symbol, q.Price, sign, q.ChangePercent)
}

// IndexQuote pairs an index display name with its proxy quote.
type IndexQuote struct {
	Name  string `json:"name"`
	Quote Quote  `json:"quote"`
}

// StocksClient fetches quotes from Alpha Vantage.
type StocksClient struct {
	apiKey    string
	watchlist []string
	client    *http.Client
	baseURL   string
}

func NewStocksClient(apiKey string) *StocksClient {
	return &StocksClient{
		apiKey:    apiKey,
		watchlist: DefaultWatchlist,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   stocksBaseURL,
	}
}

type avPayload struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	ErrorMsg    string            `json:"Error Message"`
	Note        string            `json:"Note"`
}

// GetQuote returns the quote for one symbol, or nil when unavailable.
func (c *StocksClient) GetQuote(ctx context.Context, symbol string) *Quote {
	if c.apiKey == "" {
		return nil
	}

	params := url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {strings.ToUpper(symbol)},
		"apikey":   {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload avPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}
	if payload.ErrorMsg != "" || payload.Note != "" || len(payload.GlobalQuote) == 0 {
		return nil
	}

	q := payload.GlobalQuote
	quoteSymbol := q["01. symbol"]
	if quoteSymbol == "" {
		quoteSymbol = strings.ToUpper(symbol)
	}
	return &Quote{
		Symbol:        quoteSymbol,
		Price:         parseFloat(q["05. price"]),
		Change:        parseFloat(q["09. change"]),
		ChangePercent: parseFloat(strings.TrimSuffix(q["10. change percent"], "%")),
		High:          parseFloat(q["03. high"]),
		Low:           parseFloat(q["04. low"]),
		Volume:        parseInt(q["06. volume"]),
	}
}

// WatchlistQuotes returns quotes for the given symbols (the default
// watchlist when empty), skipping unavailable ones.
func (c *StocksClient) WatchlistQuotes(ctx context.Context, symbols []string) []Quote {
	if len(symbols) == 0 {
		symbols = c.watchlist
	}
	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		if quote := c.GetQuote(ctx, symbol); quote != nil {
			quotes = append(quotes, *quote)
		}
	}
	return quotes
}

// MarketSummary quotes the major indices via ETF proxies, skipping any
// that are unavailable.
func (c *StocksClient) MarketSummary(ctx context.Context) []IndexQuote {
	summary := make([]IndexQuote, 0, len(marketIndices))
	for _, index := range marketIndices {
		if quote := c.GetQuote(ctx, index.Symbol); quote != nil {
			summary = append(summary, IndexQuote{Name: index.Name, Quote: *quote})
		}
	}
	return summary
}

func parseFloat(raw string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v
}

func parseInt(raw string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return v
}

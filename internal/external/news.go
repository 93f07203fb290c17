package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const newsBaseURL = "https://newsapi.org/v2"

// NewsCategories lists the categories NewsAPI accepts.
var NewsCategories = []string{
	"general",
	"business",
	"technology",
	"science",
	"health",
	"sports",
	"entertainment",
}

// Article is a single news headline.
type Article struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// NewsClient fetches headlines from NewsAPI.
type NewsClient struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewNewsClient(apiKey string) *NewsClient {
	return &NewsClient{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: newsBaseURL,
	}
}

type newsPayload struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (c *NewsClient) get(ctx context.Context, endpoint string, params url.Values) []Article {
	if c.apiKey == "" {
		return nil
	}
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
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

	var payload newsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Status != "ok" {
		return nil
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		title := item.Title
		if title == "" {
			title = "No title"
		}
		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, Article{
			Title:       title,
			Source:      source,
			Description: item.Description,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}
	return articles
}

// TopHeadlines returns up to count headlines for a category. Unknown
// categories fall back to general.
func (c *NewsClient) TopHeadlines(ctx context.Context, category, country string, count int) []Article {
	category = strings.ToLower(category)
	if !validNewsCategory(category) {
		category = "general"
	}
	if country == "" {
		country = "us"
	}
	return c.get(ctx, "top-headlines", url.Values{
		"category": {category},
		"country":  {country},
		"pageSize": {strconv.Itoa(count)},
	})
}

// Search queries all articles, newest first.
func (c *NewsClient) Search(ctx context.Context, query string, count int) []Article {
	return c.get(ctx, "everything", url.Values{
		"q":        {query},
		"pageSize": {strconv.Itoa(count)},
		"sortBy":   {"publishedAt"},
	})
}

func validNewsCategory(category string) bool {
	for _, c := range NewsCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Package report assembles the daily report: schedule, weather, holidays,
// news and market data fetched concurrently, rendered as plain text for the
// terminal, Telegram or export.
package report

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/LashaJaparidze15/Buddy/internal/external"
	"github.com/LashaJaparidze15/Buddy/internal/model"
	"github.com/LashaJaparidze15/Buddy/internal/service"
)

// quote pairs a motivational line with its author.
type quote struct {
	Text   string
	Author string
}

var motivationalQuotes = []quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"It's not about perfect. It's about effort.", "Jillian Michaels"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"Your limitation? It's only your imagination.", "Unknown"},
	{"Push yourself, because no one else is going to do it for you.", "Unknown"},
	{"Great things never come from comfort zones.", "Unknown"},
	{"Dream it. Wish it. Do it.", "Unknown"},
	{"Success doesn't just find you. You have to go out and get it.", "Unknown"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Don't stop when you're tired. Stop when you're done.", "Unknown"},
	{"Wake up with determination. Go to bed with satisfaction.", "Unknown"},
	{"Do something today that your future self will thank you for.", "Sean Patrick Flanery"},
	{"Little things make big days.", "Unknown"},
	{"It's going to be hard, but hard does not mean impossible.", "Unknown"},
}

// Section is one titled block of the report.
type Section struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Report is the assembled daily report.
type Report struct {
	Greeting string    `json:"greeting"`
	DateLine string    `json:"date_line"`
	Sections []Section `json:"sections"`
}

// Options selects which sections to build.
type Options struct {
	Weather    bool
	Activities bool
	Holidays   bool
	News       bool
	Stocks     bool
	Quote      bool
	NewsCount  int
}

// DefaultOptions enables every section with five headlines.
func DefaultOptions() Options {
	return Options{
		Weather:    true,
		Activities: true,
		Holidays:   true,
		News:       true,
		Stocks:     true,
		Quote:      true,
		NewsCount:  5,
	}
}

// Builder assembles reports from the schedule and external providers.
type Builder struct {
	activities *service.ActivityService
	weather    *external.WeatherClient
	news       *external.NewsClient
	stocks     *external.StocksClient
	holidays   *external.HolidaysClient

	now func() time.Time
}

func NewBuilder(activities *service.ActivityService, weather *external.WeatherClient, news *external.NewsClient, stocks *external.StocksClient, holidays *external.HolidaysClient) *Builder {
	return &Builder{
		activities: activities,
		weather:    weather,
		news:       news,
		stocks:     stocks,
		holidays:   holidays,
		now:        time.Now,
	}
}

// Build assembles the report for today. External sections are fetched
// concurrently; each fails soft into an "unavailable" line, so the schedule
// section always renders regardless of dead integrations.
func (b *Builder) Build(ctx context.Context, opts Options) (*Report, error) {
	now := b.now()
	report := &Report{
		Greeting: greeting(now.Hour()),
		DateLine: now.Format("Monday, January 02, 2006"),
	}

	var (
		wg           sync.WaitGroup
		weather      *external.Weather
		weatherTip   string
		articles     []external.Article
		market       []external.IndexQuote
		holidaysList []external.Holiday
	)

	if opts.Weather && b.weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			weather = b.weather.Current(ctx, "")
			weatherTip = b.weather.Suggestion(ctx, false)
		}()
	}
	if opts.News && b.news != nil {
		count := opts.NewsCount
		if count <= 0 {
			count = 5
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			articles = b.news.TopHeadlines(ctx, "general", "", count)
		}()
	}
	if opts.Stocks && b.stocks != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			market = b.stocks.MarketSummary(ctx)
		}()
	}
	if opts.Holidays && b.holidays != nil {
		holidaysList = b.holidays.Upcoming(7)
	}

	var (
		dayActivities []model.Activity
		activitiesErr error
	)
	if opts.Activities {
		dayActivities, activitiesErr = b.activities.ForDate(ctx, now)
	}
	wg.Wait()
	if activitiesErr != nil {
		return nil, fmt.Errorf("load today's activities: %w", activitiesErr)
	}

	if opts.Weather {
		report.Sections = append(report.Sections, weatherSection(weather, weatherTip))
	}
	if opts.Activities {
		report.Sections = append(report.Sections, activitiesSection(dayActivities))
	}
	if opts.Holidays && len(holidaysList) > 0 {
		report.Sections = append(report.Sections, holidaysSection(holidaysList, now))
	}
	if opts.News {
		report.Sections = append(report.Sections, newsSection(articles))
	}
	if opts.Stocks {
		report.Sections = append(report.Sections, stocksSection(market))
	}
	if opts.Quote {
		report.Sections = append(report.Sections, quoteSection())
	}
	return report, nil
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func weatherSection(weather *external.Weather, tip string) Section {
	section := Section{Title: "☀️ WEATHER"}
	if weather == nil {
		section.Lines = []string{"Weather data unavailable. Check API key."}
		return section
	}
	section.Lines = []string{
		fmt.Sprintf("Location: %s", weather.Location),
		fmt.Sprintf("Temperature: %.1f%s (feels like %.1f%s)", weather.Temperature, weather.TempUnit(), weather.FeelsLike, weather.TempUnit()),
		fmt.Sprintf("Conditions: %s", weather.Description),
		fmt.Sprintf("Humidity: %d%%, Wind: %.1f %s", weather.Humidity, weather.WindSpeed, weather.WindUnit()),
	}
	if tip != "" {
		section.Lines = append(section.Lines, tip)
	}
	return section
}

func activitiesSection(activities []model.Activity) Section {
	section := Section{Title: "📋 TODAY'S ACTIVITIES"}
	if len(activities) == 0 {
		section.Lines = []string{
			"No activities scheduled for today.",
			"Use 'buddy add' to schedule something!",
		}
		return section
	}
	for _, a := range activities {
		section.Lines = append(section.Lines, fmt.Sprintf("%s - %s (%s)", a.StartTime, a.Title, a.Category))
	}
	section.Lines = append(section.Lines, fmt.Sprintf("Total: %d activities", len(activities)))
	return section
}

func holidaysSection(holidays []external.Holiday, now time.Time) Section {
	section := Section{Title: "🎉 UPCOMING HOLIDAYS"}
	for _, h := range holidays {
		section.Lines = append(section.Lines, h.Summary(now))
	}
	return section
}

func newsSection(articles []external.Article) Section {
	section := Section{Title: "📰 TOP NEWS"}
	if len(articles) == 0 {
		section.Lines = []string{"News unavailable. Check API key."}
		return section
	}
	for i, article := range articles {
		section.Lines = append(section.Lines,
			fmt.Sprintf("%d. %s", i+1, article.Title),
			fmt.Sprintf("   %s", article.Source),
		)
	}
	return section
}

func stocksSection(market []external.IndexQuote) Section {
	section := Section{Title: "📈 MARKET WATCH"}
	if len(market) == 0 {
		section.Lines = []string{"Stock data unavailable. Check API key."}
		return section
	}
	for _, index := range market {
		section.Lines = append(section.Lines, fmt.Sprintf("%s: %s", index.Name, index.Quote.Summary()))
	}
	return section
}

func quoteSection() Section {
	q := motivationalQuotes[rand.Intn(len(motivationalQuotes))]
	return Section{
		Title: "💡 QUOTE OF THE DAY",
		Lines: []string{
			fmt.Sprintf("\"%s\"", q.Text),
			fmt.Sprintf("- %s", q.Author),
		},
	}
}

// Render formats the report as plain text.
func (r *Report) Render() string {
	var sb strings.Builder
	rule := strings.Repeat("=", 50)

	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("%s! BUDDY DAILY REPORT - %s\n", r.Greeting, r.DateLine))
	sb.WriteString(rule + "\n")

	for _, section := range r.Sections {
		sb.WriteString("\n" + section.Title + "\n")
		sb.WriteString(strings.Repeat("-", 30) + "\n")
		for _, line := range section.Lines {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString("\n" + rule + "\n")
	return sb.String()
}

package config

import (
	"fmt"
	"os"

	"github.com/daguenette/statbook/domain"
)

const (
	defaultStatsBaseURL = "https://api.mysportsfeeds.com/v2.1"
	defaultNewsBaseURL  = "https://newsapi.org/v2"

	// maxNewsPageSize is the hard page-size cap enforced by NewsAPI
	maxNewsPageSize = 100
)

// NewsConfig tunes the default news query built for summary requests.
type NewsConfig struct {
	// MaxArticles is the page size of the default summary news query
	MaxArticles int
	// LookbackDays limits news to the last N days. Zero disables date
	// filtering, which keeps requests compatible with the NewsAPI free tier.
	LookbackDays int
	// SortBy is the default result ordering
	SortBy domain.SortOrder
	// Language is the preferred article language (informational; not sent
	// on the wire by the shipped news provider)
	Language string
}

// DefaultNewsConfig returns the news defaults: 5 articles, no date filter,
// most recent first, English.
func DefaultNewsConfig() NewsConfig {
	return NewsConfig{
		MaxArticles:  5,
		LookbackDays: 0,
		SortBy:       domain.SortByRecency,
		Language:     "en",
	}
}

func (n NewsConfig) validate() error {
	if n.MaxArticles <= 0 {
		return fmt.Errorf("%w: news max articles must be positive, got %d", domain.ErrConfiguration, n.MaxArticles)
	}
	if n.MaxArticles > maxNewsPageSize {
		return fmt.Errorf("%w: news max articles must be at most %d, got %d", domain.ErrConfiguration, maxNewsPageSize, n.MaxArticles)
	}
	if n.LookbackDays < 0 {
		return fmt.Errorf("%w: news lookback days must not be negative, got %d", domain.ErrConfiguration, n.LookbackDays)
	}
	if n.SortBy.String() == "" {
		return fmt.Errorf("%w: unknown news sort order %d", domain.ErrConfiguration, int(n.SortBy))
	}
	return nil
}

// Config holds the credentials and endpoints for the two upstream sources.
// Values are fixed at construction; use New or FromEnv.
type Config struct {
	statsAPIKey  string
	newsAPIKey   string
	statsBaseURL string
	newsBaseURL  string
	news         NewsConfig
}

// Options are the named inputs to New. StatsAPIKey and NewsAPIKey are
// required; the rest default when zero.
type Options struct {
	StatsAPIKey  string
	NewsAPIKey   string
	StatsBaseURL string
	NewsBaseURL  string
	News         *NewsConfig
}

// New validates opts and assembles a Config. Missing keys fail with
// domain.ErrMissingCredential and invalid news settings with
// domain.ErrConfiguration.
func New(opts Options) (Config, error) {
	if opts.StatsAPIKey == "" {
		return Config{}, &domain.MissingCredentialError{Key: "StatsAPIKey"}
	}
	if opts.NewsAPIKey == "" {
		return Config{}, &domain.MissingCredentialError{Key: "NewsAPIKey"}
	}

	statsBaseURL := opts.StatsBaseURL
	if statsBaseURL == "" {
		statsBaseURL = defaultStatsBaseURL
	}
	newsBaseURL := opts.NewsBaseURL
	if newsBaseURL == "" {
		newsBaseURL = defaultNewsBaseURL
	}

	news := DefaultNewsConfig()
	if opts.News != nil {
		news = *opts.News
	}
	if err := news.validate(); err != nil {
		return Config{}, err
	}

	return Config{
		statsAPIKey:  opts.StatsAPIKey,
		newsAPIKey:   opts.NewsAPIKey,
		statsBaseURL: statsBaseURL,
		newsBaseURL:  newsBaseURL,
		news:         news,
	}, nil
}

// FromEnv builds a Config from environment variables:
// STATBOOK_STATS_API_KEY and STATBOOK_NEWS_API_KEY are required,
// STATBOOK_STATS_BASE_URL and STATBOOK_NEWS_BASE_URL are optional.
func FromEnv() (Config, error) {
	statsAPIKey, ok := os.LookupEnv("STATBOOK_STATS_API_KEY")
	if !ok || statsAPIKey == "" {
		return Config{}, &domain.MissingCredentialError{Key: "STATBOOK_STATS_API_KEY"}
	}

	newsAPIKey, ok := os.LookupEnv("STATBOOK_NEWS_API_KEY")
	if !ok || newsAPIKey == "" {
		return Config{}, &domain.MissingCredentialError{Key: "STATBOOK_NEWS_API_KEY"}
	}

	return New(Options{
		StatsAPIKey:  statsAPIKey,
		NewsAPIKey:   newsAPIKey,
		StatsBaseURL: os.Getenv("STATBOOK_STATS_BASE_URL"),
		NewsBaseURL:  os.Getenv("STATBOOK_NEWS_BASE_URL"),
	})
}

func (c Config) StatsAPIKey() string {
	return c.statsAPIKey
}

func (c Config) NewsAPIKey() string {
	return c.newsAPIKey
}

func (c Config) StatsBaseURL() string {
	return c.statsBaseURL
}

func (c Config) NewsBaseURL() string {
	return c.newsBaseURL
}

func (c Config) News() NewsConfig {
	return c.news
}

// Return a string representation suitable for logging etc
func (c Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{statsBaseURL: %s, newsBaseURL: %s, news: %+v, ...}", c.statsBaseURL, c.newsBaseURL, c.news)
}

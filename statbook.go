// Package statbook unifies a player-statistics source and a player-news
// source behind a single client. Statistics are the mandatory path; news is
// supplementary and best-effort, so a failed news fetch degrades a summary to
// an empty article list instead of failing it.
package statbook

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/daguenette/statbook/config"
	"github.com/daguenette/statbook/domain"
	"github.com/daguenette/statbook/internal/logging"
	"github.com/daguenette/statbook/internal/strutils"
	"github.com/daguenette/statbook/newsprovider"
	"github.com/daguenette/statbook/statsprovider"
)

// Client is the entry point of the library. It holds one stats provider and
// one news provider, fixed at construction, and is safe for concurrent use.
type Client struct {
	statsProvider statsprovider.StatsProvider
	newsProvider  newsprovider.NewsProvider
	news          config.NewsConfig
	nowFunc       func() time.Time
}

// NewClient builds a client with the shipped MySportsFeeds stats provider and
// NewsAPI news provider.
func NewClient(cfg config.Config) (*Client, error) {
	httpClient := &http.Client{}

	statsProvider, err := statsprovider.NewMySportsFeedsProvider(httpClient, cfg.StatsAPIKey(), cfg.StatsBaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create stats provider: %w", err)
	}

	newsProvider, err := newsprovider.NewNewsAPIProvider(httpClient, cfg.NewsAPIKey(), cfg.NewsBaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create news provider: %w", err)
	}

	return &Client{
		statsProvider: statsProvider,
		newsProvider:  newsProvider,
		news:          cfg.News(),
		nowFunc:       time.Now,
	}, nil
}

// NewClientFromEnv builds a client from config.FromEnv.
func NewClientFromEnv() (*Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}

// NewClientWithProviders builds a client from custom provider
// implementations. Any type satisfying the provider interfaces works; this is
// how mocks and alternative data sources are injected.
func NewClientWithProviders(statsProvider statsprovider.StatsProvider, newsProvider newsprovider.NewsProvider) *Client {
	return &Client{
		statsProvider: statsProvider,
		newsProvider:  newsProvider,
		news:          config.DefaultNewsConfig(),
		nowFunc:       time.Now,
	}
}

// GetPlayerStats resolves the season descriptor to its token and delegates to
// the stats provider. Provider errors are returned unchanged.
func (c *Client) GetPlayerStats(ctx context.Context, name string, years *domain.YearRange, season domain.Season) (*domain.PlayerStats, error) {
	dashName := strutils.ToDashCase(name)
	if dashName == "" {
		return nil, fmt.Errorf("%w: player name is empty", domain.ErrValidation)
	}

	token, err := domain.ResolveSeasonToken(season, years)
	if err != nil {
		return nil, err
	}

	return c.statsProvider.FetchPlayerStats(ctx, dashName, token)
}

// GetPlayerNews validates the query and delegates to the news provider.
// Provider errors are returned unchanged.
func (c *Client) GetPlayerNews(ctx context.Context, query domain.NewsQuery) (*domain.PlayerNews, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return c.newsProvider.FetchPlayerNews(ctx, query)
}

// GetPlayerSummary fetches stats and news for a player concurrently and
// merges them. A stats failure fails the whole operation; a news failure is
// swallowed here and yields an empty article list, so callers observe it only
// through len(summary.NewsArticles) == 0.
func (c *Client) GetPlayerSummary(ctx context.Context, name string, years *domain.YearRange, season domain.Season) (*domain.PlayerSummary, error) {
	dashName := strutils.ToDashCase(name)
	if dashName == "" {
		return nil, fmt.Errorf("%w: player name is empty", domain.ErrValidation)
	}

	token, err := domain.ResolveSeasonToken(season, years)
	if err != nil {
		return nil, err
	}

	query := c.defaultNewsQuery(dashName)

	var (
		stats    *domain.PlayerStats
		statsErr error
		news     *domain.PlayerNews
		newsErr  error
	)

	// Both fetches are in flight before either result is consulted
	var wg sync.WaitGroup
	wg.Go(func() {
		stats, statsErr = c.statsProvider.FetchPlayerStats(ctx, dashName, token)
	})
	wg.Go(func() {
		news, newsErr = c.newsProvider.FetchPlayerNews(ctx, query)
	})
	wg.Wait()

	if statsErr != nil {
		return nil, statsErr
	}

	// News failure is degraded to an empty list, never surfaced to the caller
	articles := []domain.Article{}
	if newsErr != nil {
		logging.FromContext(ctx).Error("failed to fetch player news for summary", "player", dashName, "error", newsErr.Error())
	} else if news != nil {
		articles = news.Articles
	}

	return &domain.PlayerSummary{
		FirstName:       stats.FirstName,
		LastName:        stats.LastName,
		PrimaryPosition: stats.PrimaryPosition,
		JerseyNumber:    stats.JerseyNumber,
		CurrentTeam:     stats.CurrentTeam,
		Injury:          stats.Injury,
		Rookie:          stats.Rookie,
		GamesPlayed:     stats.GamesPlayed,
		Season:          stats.Season,
		NewsArticles:    articles,
	}, nil
}

// defaultNewsQuery builds the news query used by summary requests from the
// news configuration.
func (c *Client) defaultNewsQuery(dashName string) domain.NewsQuery {
	query := domain.NewsQueryForPlayer(dashName).
		WithPageSize(c.news.MaxArticles).
		WithSortBy(c.news.SortBy)

	if c.news.LookbackDays > 0 {
		from := c.nowFunc().AddDate(0, 0, -c.news.LookbackDays)
		query = query.WithFromDate(from.Format("2006-01-02"))
	}

	return query
}

package statsprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/daguenette/statbook/domain"
	"github.com/daguenette/statbook/internal/constants"
	"github.com/daguenette/statbook/internal/logging"
	"github.com/daguenette/statbook/internal/reporting"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MySportsFeeds authenticates with the API key as username and this fixed
// password.
const mySportsFeedsPassword = "MYSPORTSFEEDS"

type mySportsFeedsProvider struct {
	httpClient HttpClient
	apiKey     string
	baseURL    string

	metrics mySportsFeedsMetricsCollection
}

// NewMySportsFeedsProvider returns a StatsProvider backed by the
// MySportsFeeds NFL API.
func NewMySportsFeedsProvider(httpClient HttpClient, apiKey string, baseURL string) (StatsProvider, error) {
	meter := otel.Meter("statsprovider/mysportsfeeds")
	metrics, err := setupMySportsFeedsMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &mySportsFeedsProvider{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,

		metrics: metrics,
	}, nil
}

func (p *mySportsFeedsProvider) FetchPlayerStats(ctx context.Context, name string, season string) (*domain.PlayerStats, error) {
	logger := logging.FromContext(ctx)
	requestURL := fmt.Sprintf(
		"%s/pull/nfl/%s/player_stats_totals.json?player=%s",
		p.baseURL, season, url.QueryEscape(name),
	)

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)
	req.SetBasicAuth(p.apiKey, mySportsFeedsPassword)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		err := &domain.NetworkError{Err: err}
		reporting.Report(ctx, err)
		return nil, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := &domain.NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
		reporting.Report(ctx, err)
		return nil, err
	}
	logger.Info("mysportsfeeds request completed", "player", name, "season", season, "status", resp.StatusCode, "duration", time.Since(start).String())

	stats, err := playerStatsFromResponse(resp.StatusCode, data, name, season)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"player": name,
			"season": season,
			"status": strconv.Itoa(resp.StatusCode),
		})
		return nil, err
	}

	p.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(attribute.String("season", season)))

	return stats, nil
}

type mySportsFeedsMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupMySportsFeedsMetrics(meter metric.Meter) (mySportsFeedsMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("statsprovider/mysportsfeeds/returned_players")
	if err != nil {
		return mySportsFeedsMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return mySportsFeedsMetricsCollection{
		requestCount: requestCount,
	}, nil
}

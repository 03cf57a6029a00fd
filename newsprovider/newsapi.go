package newsprovider

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

type newsAPIProvider struct {
	httpClient HttpClient
	apiKey     string
	baseURL    string

	metrics newsAPIMetricsCollection
}

// NewNewsAPIProvider returns a NewsProvider backed by NewsAPI.org.
func NewNewsAPIProvider(httpClient HttpClient, apiKey string, baseURL string) (NewsProvider, error) {
	meter := otel.Meter("newsprovider/newsapi")
	metrics, err := setupNewsAPIMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &newsAPIProvider{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,

		metrics: metrics,
	}, nil
}

// sortByParam maps the sort order to the NewsAPI wire value.
func sortByParam(sortBy domain.SortOrder) string {
	switch sortBy {
	case domain.SortByRelevancy:
		return "relevancy"
	case domain.SortByPopularity:
		return "popularity"
	}
	return "publishedAt"
}

func (p *newsAPIProvider) FetchPlayerNews(ctx context.Context, query domain.NewsQuery) (*domain.PlayerNews, error) {
	logger := logging.FromContext(ctx)

	params := url.Values{}
	params.Set("q", query.PlayerName)
	params.Set("pageSize", strconv.Itoa(query.PageSize))
	params.Set("sortBy", sortByParam(query.SortBy))
	params.Set("apiKey", p.apiKey)
	// The "from" parameter needs a paid NewsAPI plan, so it is only sent
	// when a date filter was requested explicitly
	if query.FromDate != "" {
		params.Set("from", query.FromDate)
	}

	requestURL := fmt.Sprintf("%s/everything?%s", p.baseURL, params.Encode())

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)

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
	logger.Info("newsapi request completed", "player", query.PlayerName, "status", resp.StatusCode, "duration", time.Since(start).String())

	news, err := playerNewsFromResponse(resp.StatusCode, data, query)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"player": query.PlayerName,
			"status": strconv.Itoa(resp.StatusCode),
		})
		return nil, err
	}

	p.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(attribute.Int("articles", len(news.Articles))))

	return news, nil
}

type newsAPIMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupNewsAPIMetrics(meter metric.Meter) (newsAPIMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("newsprovider/newsapi/returned_bundles")
	if err != nil {
		return newsAPIMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return newsAPIMetricsCollection{
		requestCount: requestCount,
	}, nil
}

package newsprovider

import (
	"context"
	"time"

	"github.com/daguenette/statbook/domain"
)

// MockNewsProvider is a deterministic in-memory NewsProvider keyed by player
// name. An unknown player yields an empty bundle, not an error. Configure it
// before handing it to a client; lookups are read-only and safe for
// concurrent use after that.
type MockNewsProvider struct {
	// Delay is an artificial latency applied to every fetch
	Delay time.Duration

	responses map[string][]domain.Article
	errors    map[string]error
}

func NewMockNewsProvider() *MockNewsProvider {
	return &MockNewsProvider{
		responses: make(map[string][]domain.Article),
		errors:    make(map[string]error),
	}
}

// NewMockNewsProviderWithDefaults returns a mock pre-seeded with articles for
// josh-allen and tom-brady.
func NewMockNewsProviderWithDefaults() *MockNewsProvider {
	provider := NewMockNewsProvider()

	provider.AddNewsArticles("josh-allen", []domain.Article{
		{
			Title:       "Josh Allen leads Bills to victory",
			Description: "Quarterback throws for 300 yards",
			PublishedAt: "2024-01-15T10:00:00Z",
			Content:     "Full article content here...",
		},
		{
			Title:       "Allen named AFC Player of the Week",
			Description: "Recognition for outstanding performance",
			PublishedAt: "2024-01-14T15:30:00Z",
			Content:     "More article content...",
		},
	})

	provider.AddNewsArticles("tom-brady", []domain.Article{
		{
			Title:       "Brady announces retirement",
			Description: "Legendary quarterback calls it a career",
			PublishedAt: "2024-01-10T12:00:00Z",
			Content:     "Retirement announcement content...",
		},
	})

	return provider
}

func (m *MockNewsProvider) AddNewsArticles(name string, articles []domain.Article) {
	m.responses[name] = articles
}

func (m *MockNewsProvider) AddNewsError(name string, err error) {
	m.errors[name] = err
}

func (m *MockNewsProvider) FetchPlayerNews(ctx context.Context, query domain.NewsQuery) (*domain.PlayerNews, error) {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}

	if err, ok := m.errors[query.PlayerName]; ok {
		return nil, err
	}

	articles := m.responses[query.PlayerName]

	// Honor the requested page size like the real provider does
	if query.PageSize > 0 && len(articles) > query.PageSize {
		articles = articles[:query.PageSize]
	}

	bundle := make([]domain.Article, len(articles))
	copy(bundle, articles)

	return &domain.PlayerNews{
		Articles:     bundle,
		Query:        query,
		TotalResults: len(m.responses[query.PlayerName]),
	}, nil
}

package statsprovider

import (
	"context"
	"time"

	"github.com/daguenette/statbook/domain"
)

// MockStatsProvider is a deterministic in-memory StatsProvider keyed by
// player name. Configure it before handing it to a client; lookups are
// read-only and safe for concurrent use after that.
type MockStatsProvider struct {
	// Delay is an artificial latency applied to every fetch, useful for
	// exercising concurrent callers
	Delay time.Duration

	responses map[string]domain.PlayerStats
	errors    map[string]error
}

func NewMockStatsProvider() *MockStatsProvider {
	return &MockStatsProvider{
		responses: make(map[string]domain.PlayerStats),
		errors:    make(map[string]error),
	}
}

// NewMockStatsProviderWithDefaults returns a mock pre-seeded with josh-allen
// and tom-brady.
func NewMockStatsProviderWithDefaults() *MockStatsProvider {
	provider := NewMockStatsProvider()

	provider.AddPlayerStats("josh-allen", domain.PlayerStats{
		FirstName:       "Josh",
		LastName:        "Allen",
		PrimaryPosition: "QB",
		JerseyNumber:    17,
		CurrentTeam:     "BUF",
		GamesPlayed:     16,
	})

	provider.AddPlayerStats("tom-brady", domain.PlayerStats{
		FirstName:       "Tom",
		LastName:        "Brady",
		PrimaryPosition: "QB",
		JerseyNumber:    12,
		CurrentTeam:     "TB",
		GamesPlayed:     17,
	})

	return provider
}

func (m *MockStatsProvider) AddPlayerStats(name string, stats domain.PlayerStats) {
	m.responses[name] = stats
}

func (m *MockStatsProvider) AddPlayerError(name string, err error) {
	m.errors[name] = err
}

func (m *MockStatsProvider) AddPlayerNotFound(name string) {
	m.errors[name] = &domain.PlayerNotFoundError{Name: name}
}

func (m *MockStatsProvider) FetchPlayerStats(ctx context.Context, name string, season string) (*domain.PlayerStats, error) {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}

	if err, ok := m.errors[name]; ok {
		return nil, err
	}

	stats, ok := m.responses[name]
	if !ok {
		return nil, &domain.PlayerNotFoundError{Name: name}
	}

	// Echo the requested season token like the real provider does
	stats.Season = season
	return &stats, nil
}

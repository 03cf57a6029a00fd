package statsprovider_test

import (
	"testing"

	"github.com/daguenette/statbook/domain"
	"github.com/daguenette/statbook/statsprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStatsProvider(t *testing.T) {
	t.Parallel()

	t.Run("defaults include josh-allen", func(t *testing.T) {
		t.Parallel()

		provider := statsprovider.NewMockStatsProviderWithDefaults()

		stats, err := provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.NoError(t, err)

		assert.Equal(t, "Josh", stats.FirstName)
		assert.Equal(t, "Allen", stats.LastName)
		assert.Equal(t, "QB", stats.PrimaryPosition)
		assert.Equal(t, 17, stats.JerseyNumber)
		assert.Equal(t, "BUF", stats.CurrentTeam)
		assert.Equal(t, "regular", stats.Season)
	})

	t.Run("echoes the requested season token", func(t *testing.T) {
		t.Parallel()

		provider := statsprovider.NewMockStatsProviderWithDefaults()

		stats, err := provider.FetchPlayerStats(t.Context(), "tom-brady", "2023-2024-playoffs")
		require.NoError(t, err)
		assert.Equal(t, "2023-2024-playoffs", stats.Season)
	})

	t.Run("unknown players are not found", func(t *testing.T) {
		t.Parallel()

		provider := statsprovider.NewMockStatsProvider()

		_, err := provider.FetchPlayerStats(t.Context(), "nobody", "regular")
		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("configured errors are returned as-is", func(t *testing.T) {
		t.Parallel()

		provider := statsprovider.NewMockStatsProvider()
		provider.AddPlayerError("josh-allen", &domain.StatsAPIError{Status: 503, Message: "down"})

		_, err := provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.ErrorIs(t, err, domain.ErrStatsAPI)
	})

	t.Run("AddPlayerNotFound", func(t *testing.T) {
		t.Parallel()

		provider := statsprovider.NewMockStatsProviderWithDefaults()
		provider.AddPlayerNotFound("josh-allen")

		_, err := provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

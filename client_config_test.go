package statbook_test

import (
	"testing"

	"github.com/daguenette/statbook"
	"github.com/daguenette/statbook/config"
	"github.com/daguenette/statbook/domain"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.New(config.Options{
		StatsAPIKey: "test-stats-key",
		NewsAPIKey:  "test-news-key",
	})
	require.NoError(t, err)
	return cfg
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("succeeds with both keys set", func(t *testing.T) {
		t.Setenv("STATBOOK_STATS_API_KEY", "test-stats-key")
		t.Setenv("STATBOOK_NEWS_API_KEY", "test-news-key")

		client, err := statbook.NewClientFromEnv()
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("fails without credentials", func(t *testing.T) {
		t.Setenv("STATBOOK_STATS_API_KEY", "")
		t.Setenv("STATBOOK_NEWS_API_KEY", "")

		_, err := statbook.NewClientFromEnv()
		require.ErrorIs(t, err, domain.ErrMissingCredential)
	})
}

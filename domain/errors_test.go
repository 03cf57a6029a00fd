package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/daguenette/statbook/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("typed errors match their sentinels", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			err      error
			sentinel error
		}{
			{
				name:     "player not found",
				err:      &domain.PlayerNotFoundError{Name: "josh-allen"},
				sentinel: domain.ErrPlayerNotFound,
			},
			{
				name:     "network",
				err:      &domain.NetworkError{Err: errors.New("connection refused")},
				sentinel: domain.ErrNetwork,
			},
			{
				name:     "stats api",
				err:      &domain.StatsAPIError{Status: 401, Message: "unauthorized"},
				sentinel: domain.ErrStatsAPI,
			},
			{
				name:     "news api",
				err:      &domain.NewsAPIError{Status: 429, Message: "rate limited"},
				sentinel: domain.ErrNewsAPI,
			},
			{
				name:     "missing credential",
				err:      &domain.MissingCredentialError{Key: "STATBOOK_STATS_API_KEY"},
				sentinel: domain.ErrMissingCredential,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				require.ErrorIs(t, tc.err, tc.sentinel)

				wrapped := fmt.Errorf("fetch failed: %w", tc.err)
				require.ErrorIs(t, wrapped, tc.sentinel)
			})
		}
	})

	t.Run("details are preserved", func(t *testing.T) {
		t.Parallel()

		err := &domain.StatsAPIError{Status: 503, Message: "upstream unavailable"}
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "upstream unavailable")

		notFound := &domain.PlayerNotFoundError{Name: "unknown-player"}
		assert.Contains(t, notFound.Error(), "unknown-player")

		missing := &domain.MissingCredentialError{Key: "STATBOOK_NEWS_API_KEY"}
		assert.Contains(t, missing.Error(), "STATBOOK_NEWS_API_KEY")
	})

	t.Run("network error unwraps to the transport error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: i/o timeout")
		err := &domain.NetworkError{Err: cause}

		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, domain.ErrNetwork)
	})
}

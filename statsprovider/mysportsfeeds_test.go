package statsprovider

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/daguenette/statbook/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "stats-key"

const baseURL = "https://api.mysportsfeeds.com/v2.1"

type mockedHttpClient struct {
	t           *testing.T
	expectedURL string
	statusCode  int
	body        string
	requestErr  error
}

func (m *mockedHttpClient) Do(req *http.Request) (*http.Response, error) {
	require.Equal(m.t, m.expectedURL, req.URL.String())
	require.Equal(m.t, "statbook/0.1.0 (+https://github.com/daguenette/statbook)", req.Header.Get("User-Agent"))

	username, password, ok := req.BasicAuth()
	require.True(m.t, ok, "expected basic auth to be set")
	require.Equal(m.t, apiKey, username)
	require.Equal(m.t, "MYSPORTSFEEDS", password)

	if m.requestErr != nil {
		return nil, m.requestErr
	}

	return &http.Response{
		StatusCode: m.statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.body)),
	}, nil
}

func TestMySportsFeedsProvider(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/regular/player_stats_totals.json?player=josh-allen",
			statusCode:  200,
			body: `{
				"playerStatsTotals": [
					{
						"player": {
							"firstName": "Josh",
							"lastName": "Allen",
							"primaryPosition": "QB",
							"jerseyNumber": 17,
							"currentTeam": {"abbreviation": "BUF"},
							"currentInjury": null,
							"rookie": false
						},
						"team": {"abbreviation": "BUF"},
						"stats": {"gamesPlayed": 16}
					}
				]
			}`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		stats, err := provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.NoError(t, err)

		assert.Equal(t, "Josh", stats.FirstName)
		assert.Equal(t, "Allen", stats.LastName)
		assert.Equal(t, "QB", stats.PrimaryPosition)
		assert.Equal(t, 17, stats.JerseyNumber)
		assert.Equal(t, "BUF", stats.CurrentTeam)
		assert.Empty(t, stats.Injury)
		assert.False(t, stats.Rookie)
		assert.Equal(t, 16, stats.GamesPlayed)
		assert.Equal(t, "regular", stats.Season)
	})

	t.Run("season token is part of the request path", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/2023-2024-playoffs/player_stats_totals.json?player=josh-allen",
			statusCode:  200,
			body:        `{"playerStatsTotals": [{"player": {"firstName": "Josh"}, "stats": {}}]}`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		stats, err := provider.FetchPlayerStats(t.Context(), "josh-allen", "2023-2024-playoffs")
		require.NoError(t, err)
		assert.Equal(t, "2023-2024-playoffs", stats.Season)
	})

	t.Run("player not found", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/regular/player_stats_totals.json?player=unknown-player",
			statusCode:  200,
			body:        `{"playerStatsTotals": []}`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		_, err = provider.FetchPlayerStats(t.Context(), "unknown-player", "regular")
		require.ErrorIs(t, err, domain.ErrPlayerNotFound)

		var notFound *domain.PlayerNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "unknown-player", notFound.Name)
	})

	t.Run("upstream error status", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/regular/player_stats_totals.json?player=josh-allen",
			statusCode:  401,
			body:        `{"message": "unauthorized"}`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		_, err = provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.ErrorIs(t, err, domain.ErrStatsAPI)

		var apiErr *domain.StatsAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/regular/player_stats_totals.json?player=josh-allen",
			statusCode:  200,
			body:        `not json`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		_, err = provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.ErrorIs(t, err, domain.ErrStatsAPI)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/regular/player_stats_totals.json?player=josh-allen",
			requestErr:  assert.AnError,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		_, err = provider.FetchPlayerStats(t.Context(), "josh-allen", "regular")
		require.ErrorIs(t, err, domain.ErrNetwork)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("team abbreviation falls back to the totals entry", func(t *testing.T) {
		t.Parallel()

		httpClient := &mockedHttpClient{
			t:           t,
			expectedURL: baseURL + "/pull/nfl/latest/player_stats_totals.json?player=tom-brady",
			statusCode:  200,
			body: `{
				"playerStatsTotals": [
					{
						"player": {"firstName": "Tom", "lastName": "Brady"},
						"team": {"abbreviation": "TB"},
						"stats": {"gamesPlayed": 17}
					}
				]
			}`,
		}

		provider, err := NewMySportsFeedsProvider(httpClient, apiKey, baseURL)
		require.NoError(t, err)

		stats, err := provider.FetchPlayerStats(t.Context(), "tom-brady", "latest")
		require.NoError(t, err)
		assert.Equal(t, "TB", stats.CurrentTeam)
	})
}

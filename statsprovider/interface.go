package statsprovider

import (
	"context"

	"github.com/daguenette/statbook/domain"
)

// StatsProvider fetches statistics for a single player and season token.
// Implementations must be safe for concurrent use.
type StatsProvider interface {
	// Raises domain.ErrPlayerNotFound if the source has no player matching name
	//
	// Raises domain.ErrStatsAPI on a non-success upstream response and
	// domain.ErrNetwork on a transport-level failure.
	FetchPlayerStats(ctx context.Context, name string, season string) (*domain.PlayerStats, error)
}

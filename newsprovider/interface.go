package newsprovider

import (
	"context"

	"github.com/daguenette/statbook/domain"
)

// NewsProvider fetches news articles matching a query. The paging, date and
// sort parameters are best-effort directives passed through to the source.
// Implementations must be safe for concurrent use.
type NewsProvider interface {
	// Raises domain.ErrNewsAPI on a non-success upstream response and
	// domain.ErrNetwork on a transport-level failure.
	FetchPlayerNews(ctx context.Context, query domain.NewsQuery) (*domain.PlayerNews, error)
}

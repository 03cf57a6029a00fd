package domain

import "fmt"

// SortOrder selects how the news provider orders results.
type SortOrder int

const (
	SortByRecency SortOrder = iota
	SortByRelevancy
	SortByPopularity
)

func (s SortOrder) String() string {
	switch s {
	case SortByRecency:
		return "recency"
	case SortByRelevancy:
		return "relevancy"
	case SortByPopularity:
		return "popularity"
	}
	return ""
}

const defaultNewsPageSize = 5

// NewsQuery describes a news search for a single player. Queries are value
// types: the With* builders return a modified copy and never mutate the
// receiver, so a query can be shared and refined freely.
type NewsQuery struct {
	// PlayerName is the dash-case player identifier to search for
	PlayerName string
	// PageSize is the maximum number of articles to return
	PageSize int
	// FromDate is an optional ISO date ("2006-01-02") lower bound. Empty
	// means no date filter, which keeps the query compatible with the
	// NewsAPI free tier.
	FromDate string
	// SortBy selects the result ordering
	SortBy SortOrder
}

// NewsQueryForPlayer returns a query for the given player with the default
// page size, recency ordering and no date filter.
func NewsQueryForPlayer(name string) NewsQuery {
	return NewsQuery{
		PlayerName: name,
		PageSize:   defaultNewsPageSize,
		SortBy:     SortByRecency,
	}
}

func (q NewsQuery) WithPageSize(size int) NewsQuery {
	q.PageSize = size
	return q
}

func (q NewsQuery) WithFromDate(fromDate string) NewsQuery {
	q.FromDate = fromDate
	return q
}

func (q NewsQuery) WithSortBy(sortBy SortOrder) NewsQuery {
	q.SortBy = sortBy
	return q
}

// Validate checks that the query can be handed to a provider.
func (q NewsQuery) Validate() error {
	if q.PlayerName == "" {
		return fmt.Errorf("%w: news query player name is empty", ErrValidation)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: news query page size must be positive, got %d", ErrValidation, q.PageSize)
	}
	if q.SortBy.String() == "" {
		return fmt.Errorf("%w: unknown news sort order %d", ErrValidation, int(q.SortBy))
	}
	return nil
}

// Article is a single news article as sourced from upstream. All fields are
// passed through verbatim; no validation is imposed here.
type Article struct {
	Title       string
	Description string
	Content     string
	PublishedAt string
}

// PlayerNews is the bundle returned by a news provider: the articles in
// provider order, the query that produced them, and the upstream total-count
// hint (0 when the provider did not report one).
type PlayerNews struct {
	Articles     []Article
	Query        NewsQuery
	TotalResults int
}

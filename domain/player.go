package domain

// PlayerStats holds the core statistics for one player in one season.
// Season echoes the resolved season token used in the request so callers can
// verify the provider honored it.
type PlayerStats struct {
	FirstName       string
	LastName        string
	PrimaryPosition string
	JerseyNumber    int
	CurrentTeam     string
	// Injury is the current injury status, empty when healthy
	Injury      string
	Rookie      bool
	GamesPlayed int
	Season      string
}

// PlayerSummary is the merged result of a combined stats and news fetch.
// NewsArticles is always non-nil: a failed news fetch yields an empty list
// rather than an error.
type PlayerSummary struct {
	FirstName       string
	LastName        string
	PrimaryPosition string
	JerseyNumber    int
	CurrentTeam     string
	Injury          string
	Rookie          bool
	GamesPlayed     int
	Season          string
	NewsArticles    []Article
}

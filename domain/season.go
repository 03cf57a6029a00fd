package domain

import "fmt"

// Season selects which statistical period to query.
type Season int

const (
	SeasonRegular Season = iota
	SeasonPlayoffs
	SeasonCurrent
	SeasonLatest
	SeasonUpcoming
)

func (s Season) String() string {
	switch s {
	case SeasonRegular:
		return "regular"
	case SeasonPlayoffs:
		return "playoffs"
	case SeasonCurrent:
		return "current"
	case SeasonLatest:
		return "latest"
	case SeasonUpcoming:
		return "upcoming"
	}
	return ""
}

// YearRange is an explicit start/end year pair for a season descriptor.
type YearRange struct {
	Start int
	End   int
}

// ResolveSeasonToken produces the canonical season token for a season and an
// optional year range. The token is used as the request parameter to the
// stats provider and echoed back on PlayerStats.Season.
//
// Without years the token is the variant's bare name ("regular", "latest").
// With years it is "{start}-{end}-{variant}", which is only defined for the
// regular and playoffs variants. All other combinations fail with
// ErrValidation.
func ResolveSeasonToken(season Season, years *YearRange) (string, error) {
	name := season.String()
	if name == "" {
		return "", fmt.Errorf("%w: unknown season variant %d", ErrValidation, int(season))
	}

	if years == nil {
		return name, nil
	}

	if season != SeasonRegular && season != SeasonPlayoffs {
		return "", fmt.Errorf("%w: season %q cannot be combined with an explicit year range", ErrValidation, name)
	}
	if years.Start <= 0 {
		return "", fmt.Errorf("%w: year range start must be positive, got %d", ErrValidation, years.Start)
	}
	if years.End < years.Start {
		return "", fmt.Errorf("%w: year range end %d precedes start %d", ErrValidation, years.End, years.Start)
	}

	return fmt.Sprintf("%d-%d-%s", years.Start, years.End, name), nil
}

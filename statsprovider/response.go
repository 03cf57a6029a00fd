package statsprovider

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/daguenette/statbook/domain"
)

type playerStatsResponse struct {
	PlayerStatsTotals []playerStatsTotal `json:"playerStatsTotals"`
}

type playerStatsTotal struct {
	Player playerInfo `json:"player"`
	Team   *teamInfo  `json:"team,omitempty"`
	Stats  statsInfo  `json:"stats"`
}

type playerInfo struct {
	FirstName       *string   `json:"firstName,omitempty"`
	LastName        *string   `json:"lastName,omitempty"`
	PrimaryPosition *string   `json:"primaryPosition,omitempty"`
	JerseyNumber    *int      `json:"jerseyNumber,omitempty"`
	CurrentTeam     *teamInfo `json:"currentTeam,omitempty"`
	CurrentInjury   *string   `json:"currentInjury,omitempty"`
	Rookie          *bool     `json:"rookie,omitempty"`
}

type teamInfo struct {
	Abbreviation *string `json:"abbreviation,omitempty"`
}

type statsInfo struct {
	GamesPlayed int `json:"gamesPlayed,omitempty"`
}

func playerStatsFromResponse(statusCode int, data []byte, name string, season string) (*domain.PlayerStats, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, &domain.StatsAPIError{
			Status:  statusCode,
			Message: fmt.Sprintf("failed to fetch player stats for %q", name),
		}
	}

	var response playerStatsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &domain.StatsAPIError{
			Status:  statusCode,
			Message: fmt.Sprintf("failed to parse player stats response: %v", err),
		}
	}

	if len(response.PlayerStatsTotals) == 0 {
		return nil, &domain.PlayerNotFoundError{Name: name}
	}

	total := response.PlayerStatsTotals[0]
	player := total.Player

	team := ""
	if player.CurrentTeam != nil && player.CurrentTeam.Abbreviation != nil {
		team = *player.CurrentTeam.Abbreviation
	} else if total.Team != nil && total.Team.Abbreviation != nil {
		team = *total.Team.Abbreviation
	}

	return &domain.PlayerStats{
		FirstName:       stringOrEmpty(player.FirstName),
		LastName:        stringOrEmpty(player.LastName),
		PrimaryPosition: stringOrEmpty(player.PrimaryPosition),
		JerseyNumber:    intOrZero(player.JerseyNumber),
		CurrentTeam:     team,
		Injury:          stringOrEmpty(player.CurrentInjury),
		Rookie:          player.Rookie != nil && *player.Rookie,
		GamesPlayed:     total.Stats.GamesPlayed,
		Season:          season,
	}, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

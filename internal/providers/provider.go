package providers

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
)

// Endpoint names an upstream API family that raw resource paths are resolved against.
type Endpoint string

const (
	// EndpointAPIWebV1 is the api-web v1 family (schedules, rosters, gamecenter, club stats).
	EndpointAPIWebV1 Endpoint = "api-web/v1"
	// EndpointStatsREST is the stats REST family (franchises, skater and goalie reports).
	EndpointStatsREST Endpoint = "stats/rest"
)

// Document is a decoded JSON object whose keys callers may extend.
type Document map[string]any

// StatsProvider fetches NHL data. Payloads are passed through untouched unless
// a method returns a typed shape.
type StatsProvider interface {
	Teams(ctx context.Context) ([]teams.Team, error)
	TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error)
	TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error)
	// LeagueStandings returns standings for a YYYY-MM-DD date, or current standings when date is empty.
	LeagueStandings(ctx context.Context, date string) (json.RawMessage, error)
	Boxscore(ctx context.Context, gameID string) (Document, error)
	PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error)
	// Get fetches a raw resource path (e.g. "club-stats/TOR/20242025/2") from the endpoint.
	Get(ctx context.Context, endpoint Endpoint, resource string) (json.RawMessage, error)
}

// InjuryProvider fetches a team's current injury report.
type InjuryProvider interface {
	TeamInjuries(ctx context.Context, teamAbbr string) ([]injuries.Injury, error)
}

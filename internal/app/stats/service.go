package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/seasons"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

const (
	// DefaultGameType is the regular season.
	DefaultGameType = 2

	// LandingKey is the boxscore key the game landing document is attached under.
	LandingKey = "landing"
)

// TeamStats pairs a team's roster with its club stats for the same season.
type TeamStats struct {
	Roster json.RawMessage `json:"roster"`
	Stats  json.RawMessage `json:"stats"`
}

// Service composes provider calls for the HTTP layer. It holds no state of its own.
type Service struct {
	stats    providers.StatsProvider
	injuries providers.InjuryProvider
	now      func() time.Time
}

// NewService constructs a Service over the shared providers.
func NewService(stats providers.StatsProvider, injuryProvider providers.InjuryProvider) *Service {
	return &Service{
		stats:    stats,
		injuries: injuryProvider,
		now:      time.Now,
	}
}

// Teams lists all teams.
func (s *Service) Teams(ctx context.Context) (teams.ListResponse, error) {
	list, err := s.stats.Teams(ctx)
	if err != nil {
		return teams.ListResponse{}, err
	}
	if list == nil {
		list = []teams.Team{}
	}
	return teams.ListResponse{Teams: list}, nil
}

// TeamSchedule returns the team's season schedule as published upstream.
func (s *Service) TeamSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	return s.stats.TeamSeasonSchedule(ctx, teamAbbr, season)
}

// TeamStats fetches the roster, then the club stats. A roster failure skips the stats call.
func (s *Service) TeamStats(ctx context.Context, teamAbbr, season string, gameType int) (TeamStats, error) {
	roster, err := s.stats.TeamRoster(ctx, teamAbbr, season)
	if err != nil {
		return TeamStats{}, err
	}
	clubStats, err := s.stats.Get(ctx, providers.EndpointAPIWebV1, ClubStatsResource(teamAbbr, season, gameType))
	if err != nil {
		return TeamStats{}, err
	}
	return TeamStats{Roster: roster, Stats: clubStats}, nil
}

// Standings returns league standings for date, or current standings when date is empty.
func (s *Service) Standings(ctx context.Context, date string) (json.RawMessage, error) {
	return s.stats.LeagueStandings(ctx, date)
}

// GameDetails returns the boxscore, with the landing document attached when it can be fetched.
func (s *Service) GameDetails(ctx context.Context, gameID string) (providers.Document, error) {
	box, err := s.stats.Boxscore(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		box = providers.Document{}
	}
	if landing, ok := s.landing(ctx, gameID); ok {
		box[LandingKey] = landing
	}
	return box, nil
}

// landing is best effort; failures are dropped silently here. The instrumented
// provider still counts them and logs them at debug level.
func (s *Service) landing(ctx context.Context, gameID string) (json.RawMessage, bool) {
	raw, err := s.stats.Get(ctx, providers.EndpointAPIWebV1, LandingResource(gameID))
	if err != nil {
		return nil, false
	}
	return raw, true
}

// PlayerCareer returns a player's career landing document.
func (s *Service) PlayerCareer(ctx context.Context, playerID string) (json.RawMessage, error) {
	return s.stats.PlayerCareerStats(ctx, playerID)
}

// TeamInjuries returns the team's injury report.
func (s *Service) TeamInjuries(ctx context.Context, teamAbbr string) (injuries.Report, error) {
	if s.injuries == nil {
		return injuries.Report{}, providers.ErrProviderUnavailable
	}
	list, err := s.injuries.TeamInjuries(ctx, teamAbbr)
	if err != nil {
		return injuries.Report{}, err
	}
	report := injuries.Report{Team: strings.ToUpper(strings.TrimSpace(teamAbbr)), Injuries: []injuries.Injury{}}
	if list != nil {
		report.Injuries = list
	}
	return report, nil
}

// Seasons lists the selectable seasons as of now.
func (s *Service) Seasons() seasons.ListResponse {
	now := s.now()
	return seasons.ListResponse{
		Current: seasons.Current(now),
		Seasons: seasons.Available(now, seasons.DefaultYearsBack),
	}
}

// ParseGameType reads the game_type query value, defaulting to the regular season.
func ParseGameType(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultGameType, nil
	}
	gameType, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid game_type %q: must be an integer", raw)
	}
	return gameType, nil
}

// ClubStatsResource is the api-web path for a team's season stats by game type.
func ClubStatsResource(teamAbbr, season string, gameType int) string {
	return fmt.Sprintf("club-stats/%s/%s/%d", url.PathEscape(teamAbbr), url.PathEscape(season), gameType)
}

// LandingResource is the api-web path for a game's landing document.
func LandingResource(gameID string) string {
	return fmt.Sprintf("gamecenter/%s/landing", url.PathEscape(gameID))
}

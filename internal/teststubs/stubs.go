package teststubs

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

// StubStatsProvider is a test double for providers.StatsProvider. Payloads and
// Errs are keyed by operation name (providers.Op*) or, for Get, by resource path.
type StubStatsProvider struct {
	TeamList []teams.Team
	Payloads map[string]json.RawMessage
	Box      providers.Document
	Err      error
	Errs     map[string]error

	mu    sync.Mutex
	calls []string
}

// Calls returns the keys of every call made, in order.
func (s *StubStatsProvider) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *StubStatsProvider) respond(key string) (json.RawMessage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, key)
	s.mu.Unlock()

	if err := s.errFor(key); err != nil {
		return nil, err
	}
	return s.Payloads[key], nil
}

func (s *StubStatsProvider) errFor(key string) error {
	if err, ok := s.Errs[key]; ok {
		return err
	}
	return s.Err
}

func (s *StubStatsProvider) Teams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	if _, err := s.respond(providers.OpTeams); err != nil {
		return nil, err
	}
	return s.TeamList, nil
}

func (s *StubStatsProvider) TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	_ = ctx
	_ = teamAbbr
	_ = season
	return s.respond(providers.OpSchedule)
}

func (s *StubStatsProvider) TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	_ = ctx
	_ = teamAbbr
	_ = season
	return s.respond(providers.OpRoster)
}

func (s *StubStatsProvider) LeagueStandings(ctx context.Context, date string) (json.RawMessage, error) {
	_ = ctx
	_ = date
	return s.respond(providers.OpStandings)
}

// Boxscore returns a fresh copy of Box so callers may add keys.
func (s *StubStatsProvider) Boxscore(ctx context.Context, gameID string) (providers.Document, error) {
	_ = ctx
	_ = gameID
	if _, err := s.respond(providers.OpBoxscore); err != nil {
		return nil, err
	}
	doc := make(providers.Document, len(s.Box))
	for k, v := range s.Box {
		doc[k] = v
	}
	return doc, nil
}

func (s *StubStatsProvider) PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	_ = ctx
	_ = playerID
	return s.respond(providers.OpPlayerCareer)
}

func (s *StubStatsProvider) Get(ctx context.Context, endpoint providers.Endpoint, resource string) (json.RawMessage, error) {
	_ = ctx
	_ = endpoint
	return s.respond(resource)
}

// StubInjuryProvider is a test double for providers.InjuryProvider.
type StubInjuryProvider struct {
	Injuries []injuries.Injury
	Err      error
	Calls    atomic.Int32
	LastTeam atomic.Value
}

// TeamInjuries returns configured injuries and error while tracking calls.
func (s *StubInjuryProvider) TeamInjuries(ctx context.Context, teamAbbr string) ([]injuries.Injury, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastTeam.Store(teamAbbr)
	return s.Injuries, s.Err
}

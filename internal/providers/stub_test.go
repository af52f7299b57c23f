package providers

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
)

// countingProvider answers every call with the same payload and error.
type countingProvider struct {
	raw   json.RawMessage
	err   error
	calls atomic.Int32
	last  string
}

func (c *countingProvider) Teams(context.Context) ([]teams.Team, error) {
	c.calls.Add(1)
	c.last = "teams"
	if c.err != nil {
		return nil, c.err
	}
	return []teams.Team{{Abbr: "TOR"}}, nil
}

func (c *countingProvider) TeamSeasonSchedule(_ context.Context, teamAbbr, season string) (json.RawMessage, error) {
	c.calls.Add(1)
	c.last = "schedule:" + teamAbbr + ":" + season
	return c.raw, c.err
}

func (c *countingProvider) TeamRoster(_ context.Context, teamAbbr, season string) (json.RawMessage, error) {
	c.calls.Add(1)
	c.last = "roster:" + teamAbbr + ":" + season
	return c.raw, c.err
}

func (c *countingProvider) LeagueStandings(_ context.Context, date string) (json.RawMessage, error) {
	c.calls.Add(1)
	c.last = "standings:" + date
	return c.raw, c.err
}

func (c *countingProvider) Boxscore(_ context.Context, gameID string) (Document, error) {
	c.calls.Add(1)
	c.last = "boxscore:" + gameID
	if c.err != nil {
		return nil, c.err
	}
	return Document{"id": gameID}, nil
}

func (c *countingProvider) PlayerCareerStats(_ context.Context, playerID string) (json.RawMessage, error) {
	c.calls.Add(1)
	c.last = "career:" + playerID
	return c.raw, c.err
}

func (c *countingProvider) Get(_ context.Context, endpoint Endpoint, resource string) (json.RawMessage, error) {
	c.calls.Add(1)
	c.last = string(endpoint) + ":" + resource
	return c.raw, c.err
}

type injuryStub struct {
	list []injuries.Injury
	err  error
}

func (s injuryStub) TeamInjuries(context.Context, string) ([]injuries.Injury, error) {
	return s.list, s.err
}

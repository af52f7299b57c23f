package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/metrics"
)

// Operation names recorded for every upstream call.
const (
	OpTeams        = "teams"
	OpSchedule     = "team_schedule"
	OpRoster       = "team_roster"
	OpStandings    = "standings"
	OpBoxscore     = "boxscore"
	OpPlayerCareer = "player_career"
	OpGet          = "get"
	OpInjuries     = "injuries"
)

// instrumentation times each call, feeds the recorder, and logs failures at debug.
type instrumentation struct {
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
}

func observe[T any](ctx context.Context, in instrumentation, operation string, call func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	res, err := call(ctx)
	in.recorder.RecordProviderAttempt(in.name, operation, time.Since(start), err)
	if err == nil {
		return res, nil
	}
	if rlErr, ok := AsRateLimitError(err); ok {
		in.recorder.RecordRateLimit(in.name, rlErr.RetryAfter)
	}
	logWithProvider(ctx, in.logger, slog.LevelDebug, in.name, "provider call failed",
		slog.String("operation", operation),
		slog.Any("err", err),
	)
	return res, err
}

type instrumentedStatsProvider struct {
	next StatsProvider
	in   instrumentation
}

// NewInstrumentedStatsProvider records attempts, errors, latency, and rate-limit hits for next.
// Calls are made exactly once.
func NewInstrumentedStatsProvider(next StatsProvider, name string, recorder *metrics.Recorder, logger *slog.Logger) StatsProvider {
	return &instrumentedStatsProvider{
		next: next,
		in:   instrumentation{name: name, recorder: recorder, logger: logger},
	}
}

func (p *instrumentedStatsProvider) Teams(ctx context.Context) ([]teams.Team, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpTeams, p.next.Teams)
}

func (p *instrumentedStatsProvider) TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpSchedule, func(ctx context.Context) (json.RawMessage, error) {
		return p.next.TeamSeasonSchedule(ctx, teamAbbr, season)
	})
}

func (p *instrumentedStatsProvider) TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpRoster, func(ctx context.Context) (json.RawMessage, error) {
		return p.next.TeamRoster(ctx, teamAbbr, season)
	})
}

func (p *instrumentedStatsProvider) LeagueStandings(ctx context.Context, date string) (json.RawMessage, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpStandings, func(ctx context.Context) (json.RawMessage, error) {
		return p.next.LeagueStandings(ctx, date)
	})
}

func (p *instrumentedStatsProvider) Boxscore(ctx context.Context, gameID string) (Document, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpBoxscore, func(ctx context.Context) (Document, error) {
		return p.next.Boxscore(ctx, gameID)
	})
}

func (p *instrumentedStatsProvider) PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpPlayerCareer, func(ctx context.Context) (json.RawMessage, error) {
		return p.next.PlayerCareerStats(ctx, playerID)
	})
}

func (p *instrumentedStatsProvider) Get(ctx context.Context, endpoint Endpoint, resource string) (json.RawMessage, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpGet, func(ctx context.Context) (json.RawMessage, error) {
		return p.next.Get(ctx, endpoint, resource)
	})
}

type instrumentedInjuryProvider struct {
	next InjuryProvider
	in   instrumentation
}

// NewInstrumentedInjuryProvider records attempts and latency for injury lookups.
func NewInstrumentedInjuryProvider(next InjuryProvider, name string, recorder *metrics.Recorder, logger *slog.Logger) InjuryProvider {
	return &instrumentedInjuryProvider{
		next: next,
		in:   instrumentation{name: name, recorder: recorder, logger: logger},
	}
}

func (p *instrumentedInjuryProvider) TeamInjuries(ctx context.Context, teamAbbr string) ([]injuries.Injury, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p.in, OpInjuries, func(ctx context.Context) ([]injuries.Injury, error) {
		return p.next.TeamInjuries(ctx, teamAbbr)
	})
}

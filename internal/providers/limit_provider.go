package providers

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
)

const rateLimitedName = "rate-limited"

// teamsRequests is the number of upstream requests behind one Teams call
// (standings, then franchises).
const teamsRequests = 2

// rateLimitedProvider wraps a StatsProvider with a token bucket shared by every call.
type rateLimitedProvider struct {
	next    StatsProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider limits upstream requests to rps per second with the given burst.
// Each call takes one token per upstream request it makes.
// A non-positive rps disables limiting and returns next unchanged.
func NewRateLimitedProvider(next StatsProvider, rps float64, burst int, logger *slog.Logger) StatsProvider {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

// wait blocks until a token is available or ctx is done.
func (p *rateLimitedProvider) wait(ctx context.Context, operation string) error {
	return p.waitN(ctx, operation, 1)
}

// waitN takes n tokens one at a time so n may exceed the burst.
func (p *rateLimitedProvider) waitN(ctx context.Context, operation string, n int) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	for i := 0; i < n; i++ {
		if err := p.limiter.Wait(ctx); err != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited call canceled",
				slog.String("operation", operation),
				slog.Any("err", err),
			)
			return err
		}
	}
	return nil
}

func (p *rateLimitedProvider) Teams(ctx context.Context) ([]teams.Team, error) {
	if err := p.waitN(ctx, "teams", teamsRequests); err != nil {
		return nil, err
	}
	return p.next.Teams(ctx)
}

func (p *rateLimitedProvider) TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	if err := p.wait(ctx, "team_schedule"); err != nil {
		return nil, err
	}
	return p.next.TeamSeasonSchedule(ctx, teamAbbr, season)
}

func (p *rateLimitedProvider) TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	if err := p.wait(ctx, "team_roster"); err != nil {
		return nil, err
	}
	return p.next.TeamRoster(ctx, teamAbbr, season)
}

func (p *rateLimitedProvider) LeagueStandings(ctx context.Context, date string) (json.RawMessage, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.LeagueStandings(ctx, date)
}

func (p *rateLimitedProvider) Boxscore(ctx context.Context, gameID string) (Document, error) {
	if err := p.wait(ctx, "boxscore"); err != nil {
		return nil, err
	}
	return p.next.Boxscore(ctx, gameID)
}

func (p *rateLimitedProvider) PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	if err := p.wait(ctx, "player_career"); err != nil {
		return nil, err
	}
	return p.next.PlayerCareerStats(ctx, playerID)
}

func (p *rateLimitedProvider) Get(ctx context.Context, endpoint Endpoint, resource string) (json.RawMessage, error) {
	if err := p.wait(ctx, "get"); err != nil {
		return nil, err
	}
	return p.next.Get(ctx, endpoint, resource)
}

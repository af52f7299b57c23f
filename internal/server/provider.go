package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-stats-service/internal/config"
	"github.com/preston-bernstein/nhl-stats-service/internal/logging"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers/nhle"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers/puckpedia"
)

func selectProviders(cfg config.Config, logger *slog.Logger) (providers.StatsProvider, providers.InjuryProvider) {
	name := providerNHLE
	if strings.TrimSpace(cfg.Provider) != "" {
		name = normalizeProviderName(cfg.Provider, nil)
	}
	switch name {
	case providerFixture:
		f := fixture.New()
		return f, f
	case providerNHLE:
		return newNHLEProviders(cfg)
	default:
		logging.Warn(logger, "unknown provider, falling back to nhle", slog.String(logging.FieldProvider, cfg.Provider))
		return newNHLEProviders(cfg)
	}
}

func newNHLEProviders(cfg config.Config) (providers.StatsProvider, providers.InjuryProvider) {
	stats := nhle.NewClient(nhle.Config{
		WebBaseURL:   cfg.NHLE.WebBaseURL,
		StatsBaseURL: cfg.NHLE.StatsBaseURL,
		Timeout:      cfg.NHLE.Timeout,
	})
	injuries := puckpedia.NewClient(puckpedia.Config{
		BaseURL: cfg.PuckPedia.BaseURL,
	})
	return stats, injuries
}

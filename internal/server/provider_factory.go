package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-stats-service/internal/config"
	"github.com/preston-bernstein/nhl-stats-service/internal/metrics"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

// providerFactory assembles providers with the shared wrappers (rate limit + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.StatsProvider, providers.InjuryProvider) {
	stats, injuries := selectProviders(cfg, f.logger)
	return f.wrap(cfg, stats, injuries)
}

// wrap decorates base providers. The rate limiter sits inside instrumentation so waits count toward latency.
func (f providerFactory) wrap(cfg config.Config, stats providers.StatsProvider, injuries providers.InjuryProvider) (providers.StatsProvider, providers.InjuryProvider) {
	statsName := normalizeProviderName("", stats)
	limited := providers.NewRateLimitedProvider(stats, cfg.NHLE.RateLimit, cfg.NHLE.RateBurst, f.logger)
	wrappedStats := providers.NewInstrumentedStatsProvider(limited, statsName, f.metrics, f.logger)

	var wrappedInjuries providers.InjuryProvider
	if injuries != nil {
		wrappedInjuries = providers.NewInstrumentedInjuryProvider(injuries, normalizeProviderName("", injuries), f.metrics, f.logger)
	}
	return wrappedStats, wrappedInjuries
}

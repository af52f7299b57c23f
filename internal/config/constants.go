package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envNHLEWebBaseURL   = "NHLE_WEB_BASE_URL"
	envNHLEStatsBaseURL = "NHLE_STATS_BASE_URL"
	envNHLETimeout      = "NHLE_HTTP_TIMEOUT"
	envNHLERateLimit    = "NHLE_RATE_LIMIT_RPS"
	envNHLERateBurst    = "NHLE_RATE_LIMIT_BURST"
	envPuckPediaBaseURL = "PUCKPEDIA_BASE_URL"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envCORSCredentials  = "CORS_ALLOW_CREDENTIALS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultProvider    = "nhle"
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-stats-service"

	defaultNHLEWebBaseURL   = "https://api-web.nhle.com/v1"
	defaultNHLEStatsBaseURL = "https://api.nhle.com/stats/rest/en"
	defaultNHLETimeout      = 10 * Duration(time.Second)
	// Zero disables client-side throttling; the upstream publishes no quota.
	defaultNHLERateLimit = 0
	defaultNHLERateBurst = 1

	defaultPuckPediaBaseURL = "https://puckpedia.com"
	defaultCORSOrigins      = "*"
)

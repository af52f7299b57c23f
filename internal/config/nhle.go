package config

import "time"

// NHLEConfig controls how we talk to the public NHL APIs.
type NHLEConfig struct {
	WebBaseURL   string
	StatsBaseURL string
	Timeout      time.Duration
	// RateLimit is requests per second; zero or negative disables limiting.
	RateLimit float64
	RateBurst int
}

func loadNHLE() NHLEConfig {
	return NHLEConfig{
		WebBaseURL:   envOrDefault(envNHLEWebBaseURL, defaultNHLEWebBaseURL),
		StatsBaseURL: envOrDefault(envNHLEStatsBaseURL, defaultNHLEStatsBaseURL),
		Timeout:      durationEnvOrDefault(envNHLETimeout, defaultNHLETimeout),
		RateLimit:    floatEnvOrDefault(envNHLERateLimit, defaultNHLERateLimit),
		RateBurst:    intEnvOrDefault(envNHLERateBurst, defaultNHLERateBurst),
	}
}

package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	NHLE      NHLEConfig
	PuckPedia PuckPediaConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		NHLE:      loadNHLE(),
		PuckPedia: loadPuckPedia(),
		CORS:      loadCORS(),
		Metrics:   loadMetrics(),
	}
}

package config

// PuckPediaConfig points the injury scraper at PuckPedia.
type PuckPediaConfig struct {
	BaseURL string
}

func loadPuckPedia() PuckPediaConfig {
	return PuckPediaConfig{
		BaseURL: envOrDefault(envPuckPediaBaseURL, defaultPuckPediaBaseURL),
	}
}

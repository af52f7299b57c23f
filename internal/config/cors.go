package config

import "strings"

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

func loadCORS() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		AllowCredentials: boolEnvOrDefault(envCORSCredentials, true),
	}
}

func listEnvOrDefault(key, defaultValue string) []string {
	raw := envOrDefault(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}

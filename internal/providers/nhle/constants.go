package nhle

import "time"

const (
	providerName = "nhle"

	defaultWebBaseURL   = "https://api-web.nhle.com/v1"
	defaultStatsBaseURL = "https://api.nhle.com/stats/rest/en"
	defaultHTTPTimeout  = 10 * time.Second
	defaultUserAgent    = "nhl-stats-service"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 512

	currentStandings = "now"
)

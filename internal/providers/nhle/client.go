package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

// Config controls how the client reaches the NHL web and stats APIs.
type Config struct {
	WebBaseURL   string
	StatsBaseURL string
	HTTPClient   *http.Client
	Timeout      time.Duration
	UserAgent    string
}

// Client fetches NHL data and returns upstream JSON mostly untouched.
type Client struct {
	webBaseURL   string
	statsBaseURL string
	userAgent    string
	httpClient   httpDoer
	now          func() time.Time
}

var _ providers.StatsProvider = (*Client)(nil)

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		webBaseURL:   normalizeBaseURL(cfg.WebBaseURL, defaultWebBaseURL),
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		userAgent:    ua,
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:          time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// Teams lists current teams from the standings feed, enriched with franchise ids.
func (c *Client) Teams(ctx context.Context) ([]teams.Team, error) {
	raw, err := c.Get(ctx, providers.EndpointAPIWebV1, "standings/"+currentStandings)
	if err != nil {
		return nil, err
	}
	var standings standingsResponse
	if err := providers.JSON.Unmarshal(raw, &standings); err != nil {
		return nil, fmt.Errorf("%s: decode standings: %w", providerName, err)
	}

	list := make([]teams.Team, 0, len(standings.Standings))
	for _, row := range standings.Standings {
		list = append(list, mapTeam(row))
	}

	raw, err = c.Get(ctx, providers.EndpointStatsREST, "franchise")
	if err != nil {
		return nil, err
	}
	var franchises franchiseResponse
	if err := providers.JSON.Unmarshal(raw, &franchises); err != nil {
		return nil, fmt.Errorf("%s: decode franchises: %w", providerName, err)
	}
	attachFranchiseIDs(list, franchises.Data)

	return list, nil
}

func (c *Client) TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	return c.Get(ctx, providers.EndpointAPIWebV1, resourcePath("club-schedule-season", teamAbbr, season))
}

func (c *Client) TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	return c.Get(ctx, providers.EndpointAPIWebV1, resourcePath("roster", teamAbbr, season))
}

func (c *Client) LeagueStandings(ctx context.Context, date string) (json.RawMessage, error) {
	if strings.TrimSpace(date) == "" {
		date = currentStandings
	}
	return c.Get(ctx, providers.EndpointAPIWebV1, resourcePath("standings", date))
}

// Boxscore decodes the game boxscore into a document so callers can attach keys.
func (c *Client) Boxscore(ctx context.Context, gameID string) (providers.Document, error) {
	raw, err := c.Get(ctx, providers.EndpointAPIWebV1, resourcePath("gamecenter", gameID, "boxscore"))
	if err != nil {
		return nil, err
	}
	var doc providers.Document
	if err := providers.JSON.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode boxscore: %w", providerName, err)
	}
	if doc == nil {
		doc = providers.Document{}
	}
	return doc, nil
}

func (c *Client) PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	return c.Get(ctx, providers.EndpointAPIWebV1, resourcePath("player", playerID, "landing"))
}

// Get fetches resource from the endpoint's base URL and returns the body once it is valid JSON.
func (c *Client) Get(ctx context.Context, endpoint providers.Endpoint, resource string) (json.RawMessage, error) {
	base, err := c.baseURL(endpoint)
	if err != nil {
		return nil, err
	}
	resource = strings.TrimPrefix(strings.TrimSpace(resource), "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+resource, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    fmt.Sprintf("%s: rate limited on %s", providerName, resource),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Resource:   resource,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", providerName, resource, err)
	}
	if !providers.JSON.Valid(body) {
		return nil, fmt.Errorf("%s: invalid JSON from %s", providerName, resource)
	}
	return json.RawMessage(body), nil
}

func (c *Client) baseURL(endpoint providers.Endpoint) (string, error) {
	switch endpoint {
	case providers.EndpointAPIWebV1:
		return c.webBaseURL, nil
	case providers.EndpointStatsREST:
		return c.statsBaseURL, nil
	default:
		return "", fmt.Errorf("%s: unknown endpoint %q", providerName, endpoint)
	}
}

// resourcePath joins escaped path segments.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

package puckpedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

const (
	providerName       = "puckpedia"
	defaultBaseURL     = "https://puckpedia.com"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBody       = 512

	browserAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Config controls how the scraper reaches PuckPedia.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads team injury reports from PuckPedia, preferring the JSON API and
// falling back to the public team page.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

var _ providers.InjuryProvider = (*Client)(nil)

// NewClient constructs a PuckPedia client.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: doer,
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// TeamInjuries returns the injury report for a team. Unknown abbreviations yield an empty list.
func (c *Client) TeamInjuries(ctx context.Context, teamAbbr string) ([]injuries.Injury, error) {
	entry, ok := teams.Lookup(teamAbbr)
	if !ok || entry.PuckPediaSlug == "" {
		return []injuries.Injury{}, nil
	}

	list, err := c.fetchAPI(ctx, entry.PuckPediaSlug)
	if err == nil {
		return list, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return c.fetchPage(ctx, entry.PuckPediaSlug)
}

func (c *Client) fetchAPI(ctx context.Context, slug string) ([]injuries.Injury, error) {
	resource := "api/teams/" + slug + "/injuries"
	resp, err := c.get(ctx, resource, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload []apiInjury
	if err := providers.JSON.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", providerName, resource, err)
	}
	return mapAPIInjuries(payload), nil
}

func (c *Client) fetchPage(ctx context.Context, slug string) ([]injuries.Injury, error) {
	resp, err := c.get(ctx, "team/"+slug+"/injuries", browserAccept)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseInjuryPage(resp.Body, c.now())
}

// get issues a request and turns non-2xx responses into StatusErrors. Callers close the body.
func (c *Client) get(ctx context.Context, resource, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Resource:   resource,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}

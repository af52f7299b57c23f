package nhle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
)

const standingsBody = `{
	"wildCardIndicator": true,
	"standings": [
		{
			"conferenceAbbrev": "E",
			"conferenceName": "Eastern",
			"divisionAbbrev": "A",
			"divisionName": "Atlantic",
			"teamName": {"default": "Toronto Maple Leafs", "fr": "Maple Leafs de Toronto"},
			"teamCommonName": {"default": "Maple Leafs"},
			"teamAbbrev": {"default": "TOR"},
			"teamLogo": "https://assets.nhle.com/logos/nhl/svg/TOR_light.svg",
			"points": 102
		},
		{
			"conferenceAbbrev": "W",
			"conferenceName": "Western",
			"divisionAbbrev": "P",
			"divisionName": "Pacific",
			"teamName": {"default": "Edmonton Oilers"},
			"teamCommonName": {"default": "Oilers"},
			"teamAbbrev": {"default": "EDM"},
			"teamLogo": "https://assets.nhle.com/logos/nhl/svg/EDM_light.svg"
		}
	]
}`

const franchiseBody = `{
	"data": [
		{"id": 5, "fullName": "Toronto Maple Leafs", "teamCommonName": "Maple Leafs", "teamPlaceName": "Toronto"},
		{"id": 25, "fullName": "Edmonton Oilers", "teamCommonName": "Oilers", "teamPlaceName": "Edmonton"}
	],
	"total": 2
}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		WebBaseURL:   "http://web.example.com/v1/",
		StatsBaseURL: "http://stats.example.com/rest/en",
		HTTPClient:   &http.Client{Transport: rt},
	})
}

func TestTeamsMapsStandingsAndFranchises(t *testing.T) {
	var paths []string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Host+req.URL.Path)
		if req.Header.Get("Accept") != "application/json" {
			t.Fatalf("expected json accept header")
		}
		switch req.URL.Host + req.URL.Path {
		case "web.example.com/v1/standings/now":
			return jsonResponse(http.StatusOK, standingsBody), nil
		case "stats.example.com/rest/en/franchise":
			return jsonResponse(http.StatusOK, franchiseBody), nil
		}
		t.Fatalf("unexpected request %s", req.URL)
		return nil, nil
	})

	list, err := client.Teams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected standings and franchise calls, got %v", paths)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(list))
	}
	tor := list[0]
	if tor.Abbr != "TOR" || tor.Name != "Toronto Maple Leafs" || tor.FranchiseID != 5 {
		t.Fatalf("unexpected team %+v", tor)
	}
	if tor.Conference.Name != "Eastern" || tor.Division.Abbr != "A" {
		t.Fatalf("unexpected groupings %+v", tor)
	}
	if list[1].FranchiseID != 25 {
		t.Fatalf("expected Oilers franchise id, got %d", list[1].FranchiseID)
	}
}

func TestTeamsFailsWhenFranchiseLookupFails(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/franchise") {
			return jsonResponse(http.StatusServiceUnavailable, "down"), nil
		}
		return jsonResponse(http.StatusOK, standingsBody), nil
	})

	if _, err := client.Teams(context.Background()); err == nil {
		t.Fatalf("expected error when franchise call fails")
	}
}

func TestResourceMethodsHitExpectedPaths(t *testing.T) {
	var got string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		got = req.URL.Path
		return jsonResponse(http.StatusOK, `{"ok":true}`), nil
	})
	ctx := context.Background()

	cases := []struct {
		name string
		call func() (json.RawMessage, error)
		want string
	}{
		{"schedule", func() (json.RawMessage, error) { return client.TeamSeasonSchedule(ctx, "TOR", "20242025") }, "/v1/club-schedule-season/TOR/20242025"},
		{"roster", func() (json.RawMessage, error) { return client.TeamRoster(ctx, "TOR", "20242025") }, "/v1/roster/TOR/20242025"},
		{"standings now", func() (json.RawMessage, error) { return client.LeagueStandings(ctx, "") }, "/v1/standings/now"},
		{"standings date", func() (json.RawMessage, error) { return client.LeagueStandings(ctx, "2024-01-15") }, "/v1/standings/2024-01-15"},
		{"career", func() (json.RawMessage, error) { return client.PlayerCareerStats(ctx, "8478402") }, "/v1/player/8478402/landing"},
		{"raw", func() (json.RawMessage, error) {
			return client.Get(ctx, providers.EndpointAPIWebV1, "/club-stats/TOR/20242025/2")
		}, "/v1/club-stats/TOR/20242025/2"},
	}

	for _, c := range cases {
		raw, err := c.call()
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if string(raw) != `{"ok":true}` {
			t.Fatalf("%s: expected body passthrough, got %s", c.name, raw)
		}
		if got != c.want {
			t.Fatalf("%s: expected path %s, got %s", c.name, c.want, got)
		}
	}
}

func TestBoxscoreDecodesDocument(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v1/gamecenter/2024020001/boxscore" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"id": 2024020001, "gameState": "OFF"}`), nil
	})

	doc, err := client.Boxscore(context.Background(), "2024020001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc["gameState"] != "OFF" {
		t.Fatalf("unexpected document %v", doc)
	}
	if id, ok := doc["id"].(json.Number); !ok || id.String() != "2024020001" {
		t.Fatalf("expected id preserved as number, got %#v", doc["id"])
	}
}

func TestBoxscoreNullBecomesEmptyDocument(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `null`), nil
	})

	doc, err := client.Boxscore(context.Background(), "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc == nil {
		t.Fatalf("expected writable document")
	}
}

func TestGetHandlesNon2xx(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, "not found"), nil
	})

	_, err := client.TeamRoster(context.Background(), "XXX", "20242025")
	st, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.StatusCode != http.StatusNotFound || st.Resource != "roster/XXX/20242025" || st.Body != "not found" {
		t.Fatalf("unexpected status error %+v", st)
	}
}

func TestGetHandlesRateLimit(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "12")
		return resp, nil
	})

	_, err := client.LeagueStandings(context.Background(), "")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 12*time.Second || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestGetRejectsInvalidJSON(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>maintenance</html>"), nil
	})

	if _, err := client.PlayerCareerStats(context.Background(), "1"); err == nil {
		t.Fatal("expected invalid JSON error")
	}
}

func TestGetPropagatesTransportError(t *testing.T) {
	boom := errors.New("dial failure")
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	if _, err := client.TeamSeasonSchedule(context.Background(), "TOR", "20242025"); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestGetRejectsUnknownEndpoint(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		t.Fatal("unexpected request")
		return nil, nil
	})

	if _, err := client.Get(context.Background(), providers.Endpoint("bogus"), "x"); err == nil {
		t.Fatal("expected unknown endpoint error")
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.webBaseURL != defaultWebBaseURL || c.statsBaseURL != defaultStatsBaseURL {
		t.Fatalf("unexpected base urls %s %s", c.webBaseURL, c.statsBaseURL)
	}
	if c.userAgent != defaultUserAgent {
		t.Fatalf("expected default user agent, got %s", c.userAgent)
	}
	if c.Name() != "nhle" {
		t.Fatalf("unexpected provider name %s", c.Name())
	}
}

func TestResourcePathEscapesSegments(t *testing.T) {
	if got := resourcePath("roster", "T/R", "2024"); got != "roster/T%2FR/2024" {
		t.Fatalf("unexpected path %s", got)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

package fixture

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-stats-service/internal/providers"
	"github.com/preston-bernstein/nhl-stats-service/internal/timeutil"
)

const providerName = "fixture"

var fixtureTeams = []teams.Team{
	{
		Name:        "Toronto Maple Leafs",
		CommonName:  "Maple Leafs",
		Abbr:        "TOR",
		Logo:        "https://assets.nhle.com/logos/nhl/svg/TOR_light.svg",
		Conference:  teams.Grouping{Abbr: "E", Name: "Eastern"},
		Division:    teams.Grouping{Abbr: "A", Name: "Atlantic"},
		FranchiseID: 5,
	},
	{
		Name:        "Boston Bruins",
		CommonName:  "Bruins",
		Abbr:        "BOS",
		Logo:        "https://assets.nhle.com/logos/nhl/svg/BOS_light.svg",
		Conference:  teams.Grouping{Abbr: "E", Name: "Eastern"},
		Division:    teams.Grouping{Abbr: "A", Name: "Atlantic"},
		FranchiseID: 6,
	},
	{
		Name:        "Edmonton Oilers",
		CommonName:  "Oilers",
		Abbr:        "EDM",
		Logo:        "https://assets.nhle.com/logos/nhl/svg/EDM_light.svg",
		Conference:  teams.Grouping{Abbr: "W", Name: "Western"},
		Division:    teams.Grouping{Abbr: "P", Name: "Pacific"},
		FranchiseID: 25,
	},
	{
		Name:        "Colorado Avalanche",
		CommonName:  "Avalanche",
		Abbr:        "COL",
		Logo:        "https://assets.nhle.com/logos/nhl/svg/COL_light.svg",
		Conference:  teams.Grouping{Abbr: "W", Name: "Western"},
		Division:    teams.Grouping{Abbr: "C", Name: "Central"},
		FranchiseID: 27,
	},
}

// Provider returns deterministic payloads shaped like the NHL APIs, for local runs and tests.
type Provider struct {
	now func() time.Time
}

var (
	_ providers.StatsProvider  = (*Provider)(nil)
	_ providers.InjuryProvider = (*Provider)(nil)
)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

func (p *Provider) Name() string {
	return providerName
}

// Teams returns a deterministic set of teams.
func (p *Provider) Teams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, len(fixtureTeams))
	copy(out, fixtureTeams)
	return out, nil
}

func (p *Provider) TeamSeasonSchedule(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	_ = ctx
	abbr := strings.ToUpper(teamAbbr)
	return encode(map[string]any{
		"previousSeason": previousSeason(season),
		"currentSeason":  season,
		"clubTimezone":   "America/Toronto",
		"games": []map[string]any{
			{
				"id":       2024020001,
				"season":   season,
				"gameType": 2,
				"gameDate": "2024-10-09",
				"homeTeam": map[string]any{"abbrev": abbr, "score": 3},
				"awayTeam": map[string]any{"abbrev": "MTL", "score": 1},
			},
			{
				"id":       2024020017,
				"season":   season,
				"gameType": 2,
				"gameDate": "2024-10-12",
				"homeTeam": map[string]any{"abbrev": "PIT"},
				"awayTeam": map[string]any{"abbrev": abbr},
			},
		},
	})
}

func (p *Provider) TeamRoster(ctx context.Context, teamAbbr, season string) (json.RawMessage, error) {
	_ = ctx
	_ = teamAbbr
	_ = season
	return encode(map[string]any{
		"forwards": []map[string]any{
			player(8479318, "Auston", "Matthews", "C", 34),
			player(8478483, "Mitch", "Marner", "R", 16),
		},
		"defensemen": []map[string]any{
			player(8476853, "Morgan", "Rielly", "D", 44),
		},
		"goalies": []map[string]any{
			player(8479361, "Joseph", "Woll", "G", 60),
		},
	})
}

func (p *Provider) LeagueStandings(ctx context.Context, date string) (json.RawMessage, error) {
	_ = ctx
	if date == "" {
		date = timeutil.FormatDate(p.now().UTC())
	}
	rows := make([]map[string]any, 0, len(fixtureTeams))
	for i, t := range fixtureTeams {
		rows = append(rows, map[string]any{
			"date":             date,
			"conferenceAbbrev": t.Conference.Abbr,
			"conferenceName":   t.Conference.Name,
			"divisionAbbrev":   t.Division.Abbr,
			"divisionName":     t.Division.Name,
			"teamName":         map[string]string{"default": t.Name},
			"teamCommonName":   map[string]string{"default": t.CommonName},
			"teamAbbrev":       map[string]string{"default": t.Abbr},
			"teamLogo":         t.Logo,
			"points":           100 - 4*i,
		})
	}
	return encode(map[string]any{"wildCardIndicator": true, "standings": rows})
}

// Boxscore returns a minimal final boxscore for any game id.
func (p *Provider) Boxscore(ctx context.Context, gameID string) (providers.Document, error) {
	_ = ctx
	return providers.Document{
		"id":        gameID,
		"gameState": "OFF",
		"homeTeam":  map[string]any{"abbrev": "TOR", "score": 3, "sog": 31},
		"awayTeam":  map[string]any{"abbrev": "MTL", "score": 1, "sog": 24},
	}, nil
}

func (p *Provider) PlayerCareerStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	_ = ctx
	return encode(map[string]any{
		"playerId":  playerID,
		"firstName": map[string]string{"default": "Auston"},
		"lastName":  map[string]string{"default": "Matthews"},
		"position":  "C",
		"careerTotals": map[string]any{
			"regularSeason": map[string]any{"gamesPlayed": 634, "goals": 368, "assists": 301, "points": 669},
		},
	})
}

// Get serves the raw resources the service composes with; anything else is a 404.
func (p *Provider) Get(ctx context.Context, endpoint providers.Endpoint, resource string) (json.RawMessage, error) {
	_ = ctx
	parts := strings.Split(strings.Trim(resource, "/"), "/")
	switch {
	case endpoint == providers.EndpointAPIWebV1 && len(parts) == 4 && parts[0] == "club-stats":
		return encode(map[string]any{
			"season":   parts[2],
			"gameType": parts[3],
			"skaters": []map[string]any{
				{"playerId": 8479318, "gamesPlayed": 81, "goals": 69, "assists": 38, "points": 107},
				{"playerId": 8478483, "gamesPlayed": 81, "goals": 26, "assists": 59, "points": 85},
			},
			"goalies": []map[string]any{
				{"playerId": 8479361, "gamesPlayed": 25, "wins": 12, "savePercentage": 0.907},
			},
		})
	case endpoint == providers.EndpointAPIWebV1 && len(parts) == 3 && parts[0] == "gamecenter" && parts[2] == "landing":
		return encode(map[string]any{
			"id":      parts[1],
			"venue":   map[string]string{"default": "Scotiabank Arena"},
			"summary": map[string]any{"scoring": []any{}},
		})
	case endpoint == providers.EndpointStatsREST && resource == "franchise":
		rows := make([]map[string]any, 0, len(fixtureTeams))
		for _, t := range fixtureTeams {
			rows = append(rows, map[string]any{"id": t.FranchiseID, "fullName": t.Name, "teamCommonName": t.CommonName})
		}
		return encode(map[string]any{"data": rows, "total": len(rows)})
	}
	return nil, &providers.StatusError{
		Provider:   providerName,
		StatusCode: http.StatusNotFound,
		Resource:   resource,
	}
}

// TeamInjuries returns a short report for Toronto and an empty one for everyone else.
func (p *Provider) TeamInjuries(ctx context.Context, teamAbbr string) ([]injuries.Injury, error) {
	_ = ctx
	if !strings.EqualFold(teamAbbr, "TOR") {
		return []injuries.Injury{}, nil
	}
	ret := p.now().UTC().AddDate(0, 0, 10)
	return []injuries.Injury{
		{
			Name:           "Auston Matthews",
			DaysOut:        10,
			ExpectedReturn: ret.Format(timeutil.LongDateLayout),
			Status:         "IR",
			InjuryType:     "UPPER BODY",
		},
		{
			Name:       "Morgan Rielly",
			DaysOut:    injuries.DefaultDaysOut,
			Status:     "OUT",
			InjuryType: "LOWER BODY",
		},
	}, nil
}

func player(id int, first, last, position string, number int) map[string]any {
	return map[string]any{
		"id":            id,
		"firstName":     map[string]string{"default": first},
		"lastName":      map[string]string{"default": last},
		"positionCode":  position,
		"sweaterNumber": number,
	}
}

func previousSeason(season string) string {
	if len(season) != 8 {
		return ""
	}
	start, end := season[:4], season[4:]
	return decrement(start) + decrement(end)
}

func decrement(year string) string {
	t, err := time.Parse("2006", year)
	if err != nil {
		return year
	}
	return t.AddDate(-1, 0, 0).Format("2006")
}

func encode(v any) (json.RawMessage, error) {
	b, err := providers.JSON.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

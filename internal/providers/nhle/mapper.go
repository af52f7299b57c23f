package nhle

import (
	"strings"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/teams"
)

func mapTeam(row standingRow) teams.Team {
	return teams.Team{
		Name:       row.TeamName.Default,
		CommonName: row.TeamCommonName.Default,
		Abbr:       row.TeamAbbrev.Default,
		Logo:       row.TeamLogo,
		Conference: teams.Grouping{Abbr: row.ConferenceAbbrev, Name: row.ConferenceName},
		Division:   teams.Grouping{Abbr: row.DivisionAbbrev, Name: row.DivisionName},
	}
}

// attachFranchiseIDs matches franchises on full name, falling back to common name.
func attachFranchiseIDs(list []teams.Team, franchises []franchiseRow) {
	byName := make(map[string]int, len(franchises))
	byCommon := make(map[string]int, len(franchises))
	for _, f := range franchises {
		byName[normalizeName(f.FullName)] = f.ID
		if f.TeamCommonName != "" {
			byCommon[normalizeName(f.TeamCommonName)] = f.ID
		}
	}
	for i := range list {
		if id, ok := byName[normalizeName(list[i].Name)]; ok {
			list[i].FranchiseID = id
			continue
		}
		if id, ok := byCommon[normalizeName(list[i].CommonName)]; ok {
			list[i].FranchiseID = id
		}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

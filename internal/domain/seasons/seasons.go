// Package seasons computes NHL season identifiers ("20242025") from dates.
package seasons

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultYearsBack is how many completed seasons Available lists before the current one.
const DefaultYearsBack = 25

const idLength = 8

// Season is one NHL season, e.g. 20242025.
type Season struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
}

// ListResponse is the seasons payload served to clients.
type ListResponse struct {
	Current Season   `json:"current"`
	Seasons []Season `json:"seasons"`
}

func newSeason(startYear int) Season {
	endYear := startYear + 1
	return Season{
		ID:          fmt.Sprintf("%d%d", startYear, endYear),
		DisplayName: fmt.Sprintf("%d-%d", startYear, endYear),
		StartYear:   startYear,
		EndYear:     endYear,
	}
}

// Current returns the season in progress at now. Seasons roll over in October.
func Current(now time.Time) Season {
	start := now.Year()
	if now.Month() < time.October {
		start--
	}
	return newSeason(start)
}

// Available lists yearsBack past seasons followed by the current one, oldest first.
// Seasons that have not started yet are never included.
func Available(now time.Time, yearsBack int) []Season {
	if yearsBack < 0 {
		yearsBack = 0
	}
	current := Current(now)
	out := make([]Season, 0, yearsBack+1)
	for i := yearsBack; i > 0; i-- {
		out = append(out, newSeason(current.StartYear-i))
	}
	return append(out, current)
}

// Parse validates an 8-digit season id whose end year follows its start year.
func Parse(id string) (Season, bool) {
	if len(id) != idLength {
		return Season{}, false
	}
	start, err := strconv.Atoi(id[:4])
	if err != nil {
		return Season{}, false
	}
	end, err := strconv.Atoi(id[4:])
	if err != nil || end != start+1 {
		return Season{}, false
	}
	return newSeason(start), true
}

// Display formats a season id as "2024-2025", or returns it unchanged when invalid.
func Display(id string) string {
	if s, ok := Parse(id); ok {
		return s.DisplayName
	}
	return id
}

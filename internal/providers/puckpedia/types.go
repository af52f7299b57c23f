package puckpedia

import (
	"strings"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
)

// apiInjury accepts the field spellings seen on the PuckPedia JSON API.
type apiInjury struct {
	PlayerName     string `json:"playerName"`
	Name           string `json:"name"`
	DaysOut        int    `json:"daysOut"`
	ExpectedReturn string `json:"expectedReturn"`
	ReturnDate     string `json:"returnDate"`
	Status         string `json:"status"`
	InjuryType     string `json:"injuryType"`
	Injury         string `json:"injury"`
}

func mapAPIInjuries(payload []apiInjury) []injuries.Injury {
	out := make([]injuries.Injury, 0, len(payload))
	for _, p := range payload {
		out = append(out, injuries.Injury{
			Name:           firstNonEmpty(p.PlayerName, p.Name, "Unknown"),
			DaysOut:        daysOrDefault(p.DaysOut),
			ExpectedReturn: firstNonEmpty(p.ExpectedReturn, p.ReturnDate),
			Status:         strings.TrimSpace(p.Status),
			InjuryType:     firstNonEmpty(p.InjuryType, p.Injury),
		})
	}
	return out
}

func daysOrDefault(days int) int {
	if days <= 0 {
		return injuries.DefaultDaysOut
	}
	return days
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

package injuries

// DefaultDaysOut is reported when no expected return date is published.
const DefaultDaysOut = 7

// Injury describes one player on a team's injury report.
type Injury struct {
	Name           string `json:"name"`
	DaysOut        int    `json:"daysOut"`
	ExpectedReturn string `json:"expectedReturn,omitempty"`
	Status         string `json:"status,omitempty"`
	InjuryType     string `json:"injuryType,omitempty"`
}

// Report is the injuries payload for a single team.
type Report struct {
	Team     string   `json:"team"`
	Injuries []Injury `json:"injuries"`
}

package nhle

// localized is the api-web shape for translatable strings.
type localized struct {
	Default string `json:"default"`
}

type standingsResponse struct {
	Standings []standingRow `json:"standings"`
}

type standingRow struct {
	ConferenceAbbrev string    `json:"conferenceAbbrev"`
	ConferenceName   string    `json:"conferenceName"`
	DivisionAbbrev   string    `json:"divisionAbbrev"`
	DivisionName     string    `json:"divisionName"`
	TeamName         localized `json:"teamName"`
	TeamCommonName   localized `json:"teamCommonName"`
	TeamAbbrev       localized `json:"teamAbbrev"`
	TeamLogo         string    `json:"teamLogo"`
}

type franchiseResponse struct {
	Data []franchiseRow `json:"data"`
}

type franchiseRow struct {
	ID             int    `json:"id"`
	FullName       string `json:"fullName"`
	TeamCommonName string `json:"teamCommonName"`
}

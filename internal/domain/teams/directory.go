package teams

import "strings"

// Entry is static reference data for one franchise, keyed by NHL abbreviation.
type Entry struct {
	Abbr          string
	FullName      string
	PuckPediaSlug string
}

var directory = map[string]Entry{
	"ANA": {Abbr: "ANA", FullName: "Anaheim Ducks", PuckPediaSlug: "anaheim-ducks"},
	"BOS": {Abbr: "BOS", FullName: "Boston Bruins", PuckPediaSlug: "boston-bruins"},
	"BUF": {Abbr: "BUF", FullName: "Buffalo Sabres", PuckPediaSlug: "buffalo-sabres"},
	"CAR": {Abbr: "CAR", FullName: "Carolina Hurricanes", PuckPediaSlug: "carolina-hurricanes"},
	"CBJ": {Abbr: "CBJ", FullName: "Columbus Blue Jackets", PuckPediaSlug: "columbus-blue-jackets"},
	"CGY": {Abbr: "CGY", FullName: "Calgary Flames", PuckPediaSlug: "calgary-flames"},
	"CHI": {Abbr: "CHI", FullName: "Chicago Blackhawks", PuckPediaSlug: "chicago-blackhawks"},
	"COL": {Abbr: "COL", FullName: "Colorado Avalanche", PuckPediaSlug: "colorado-avalanche"},
	"DAL": {Abbr: "DAL", FullName: "Dallas Stars", PuckPediaSlug: "dallas-stars"},
	"DET": {Abbr: "DET", FullName: "Detroit Red Wings", PuckPediaSlug: "detroit-red-wings"},
	"EDM": {Abbr: "EDM", FullName: "Edmonton Oilers", PuckPediaSlug: "edmonton-oilers"},
	"FLA": {Abbr: "FLA", FullName: "Florida Panthers", PuckPediaSlug: "florida-panthers"},
	"LAK": {Abbr: "LAK", FullName: "Los Angeles Kings", PuckPediaSlug: "los-angeles-kings"},
	"MIN": {Abbr: "MIN", FullName: "Minnesota Wild", PuckPediaSlug: "minnesota-wild"},
	"MTL": {Abbr: "MTL", FullName: "Montréal Canadiens", PuckPediaSlug: "montreal-canadiens"},
	"NJD": {Abbr: "NJD", FullName: "New Jersey Devils", PuckPediaSlug: "new-jersey-devils"},
	"NSH": {Abbr: "NSH", FullName: "Nashville Predators", PuckPediaSlug: "nashville-predators"},
	"NYI": {Abbr: "NYI", FullName: "New York Islanders", PuckPediaSlug: "new-york-islanders"},
	"NYR": {Abbr: "NYR", FullName: "New York Rangers", PuckPediaSlug: "new-york-rangers"},
	"OTT": {Abbr: "OTT", FullName: "Ottawa Senators", PuckPediaSlug: "ottawa-senators"},
	"PHI": {Abbr: "PHI", FullName: "Philadelphia Flyers", PuckPediaSlug: "philadelphia-flyers"},
	"PIT": {Abbr: "PIT", FullName: "Pittsburgh Penguins", PuckPediaSlug: "pittsburgh-penguins"},
	"SEA": {Abbr: "SEA", FullName: "Seattle Kraken", PuckPediaSlug: "seattle-kraken"},
	"SJS": {Abbr: "SJS", FullName: "San Jose Sharks", PuckPediaSlug: "san-jose-sharks"},
	"STL": {Abbr: "STL", FullName: "St. Louis Blues", PuckPediaSlug: "st-louis-blues"},
	"TBL": {Abbr: "TBL", FullName: "Tampa Bay Lightning", PuckPediaSlug: "tampa-bay-lightning"},
	"TOR": {Abbr: "TOR", FullName: "Toronto Maple Leafs", PuckPediaSlug: "toronto-maple-leafs"},
	"UTA": {Abbr: "UTA", FullName: "Utah Mammoth", PuckPediaSlug: "utah-mammoth"},
	"VAN": {Abbr: "VAN", FullName: "Vancouver Canucks", PuckPediaSlug: "vancouver-canucks"},
	"VGK": {Abbr: "VGK", FullName: "Vegas Golden Knights", PuckPediaSlug: "vegas-golden-knights"},
	"WPG": {Abbr: "WPG", FullName: "Winnipeg Jets", PuckPediaSlug: "winnipeg-jets"},
	"WSH": {Abbr: "WSH", FullName: "Washington Capitals", PuckPediaSlug: "washington-capitals"},
}

// Lookup returns the directory entry for an abbreviation (case-insensitive).
func Lookup(abbr string) (Entry, bool) {
	e, ok := directory[strings.ToUpper(strings.TrimSpace(abbr))]
	return e, ok
}

// Count reports how many franchises the directory knows.
func Count() int {
	return len(directory)
}

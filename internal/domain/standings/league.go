package standings

import "strings"

// League identifies one of the scraped divisions.
type League string

const (
	LeagueEredivisie League = "eredivisie"
	LeagueKKD        League = "kkd"
)

// LeagueInfo describes the upstream table of a league.
type LeagueInfo struct {
	League      League
	DisplayName string
	// ExpectedTeams is the number of clubs in the division and the row count
	// the table locator looks for.
	ExpectedTeams int
	DefaultURL    string
}

var leagues = map[League]LeagueInfo{
	LeagueEredivisie: {
		League:        LeagueEredivisie,
		DisplayName:   "Eredivisie",
		ExpectedTeams: 18,
		DefaultURL:    "https://eredivisie.nl/competitie/stand/",
	},
	LeagueKKD: {
		League:        LeagueKKD,
		DisplayName:   "Keuken Kampioen Divisie",
		ExpectedTeams: 20,
		DefaultURL:    "https://keukenkampioendivisie.nl/klassement",
	},
}

// AllLeagues returns the supported leagues in display order.
func AllLeagues() []League {
	return []League{LeagueEredivisie, LeagueKKD}
}

// Info returns the static description of a league.
func Info(l League) (LeagueInfo, bool) {
	info, ok := leagues[l]
	return info, ok
}

// ParseLeague resolves a case-insensitive league name.
func ParseLeague(raw string) (League, bool) {
	l := League(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := leagues[l]; !ok {
		return "", false
	}
	return l, true
}

// DisplayName returns the human readable league name, falling back to the raw id.
func (l League) DisplayName() string {
	if info, ok := leagues[l]; ok {
		return info.DisplayName
	}
	return string(l)
}

func (l League) String() string {
	return string(l)
}

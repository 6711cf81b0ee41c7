package standings

// MinTeams is the smallest team count a snapshot needs before it is published.
const MinTeams = 10

// Team is one row of a league table.
// Goal difference and points are taken as published upstream; points can be
// negative after a sanction.
type Team struct {
	Position       int    `json:"position" validate:"gte=1"`
	Name           string `json:"name" validate:"min=2"`
	Games          int    `json:"games" validate:"gte=0"`
	Wins           int    `json:"wins" validate:"gte=0"`
	Losses         int    `json:"losses" validate:"gte=0"`
	Draws          int    `json:"draws" validate:"gte=0"`
	GoalsFor       int    `json:"goals_for" validate:"gte=0"`
	GoalsAgainst   int    `json:"goals_against" validate:"gte=0"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Snapshot is an assembled league table at one point in time.
// Treat it as read-only; Teams and Top hand out copies.
type Snapshot struct {
	League      League `json:"league"`
	Standings   []Team `json:"standings"`
	LastUpdated string `json:"last_updated"`
}

// NewSnapshot copies teams into a new Snapshot.
func NewSnapshot(league League, teams []Team, lastUpdated string) Snapshot {
	return Snapshot{
		League:      league,
		Standings:   cloneTeams(teams),
		LastUpdated: lastUpdated,
	}
}

// Teams returns a copy of the table rows.
func (s Snapshot) Teams() []Team {
	return cloneTeams(s.Standings)
}

// Len reports the number of teams in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Standings)
}

// Top returns a copy of the snapshot limited to the first n teams.
// A non-positive n keeps every team.
func (s Snapshot) Top(n int) Snapshot {
	teams := s.Standings
	if n > 0 && n < len(teams) {
		teams = teams[:n]
	}
	return NewSnapshot(s.League, teams, s.LastUpdated)
}

// Response is the payload returned by the standings endpoints.
type Response struct {
	Standings   []Team `json:"standings"`
	LastUpdated string `json:"last_updated"`
}

// NewResponse builds the standings payload for a snapshot.
func NewResponse(s Snapshot) Response {
	teams := s.Teams()
	if teams == nil {
		teams = []Team{}
	}
	return Response{
		Standings:   teams,
		LastUpdated: s.LastUpdated,
	}
}

func cloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

package models

import "time"

type Match struct {
	ID      int64     `db:"id"`
	Team1   string    `db:"team1"`
	Team2   string    `db:"team2"`
	Stage   string    `db:"stage"`
	Venue   string    `db:"venue"`
	Kickoff time.Time `db:"kickoff"`
}

// Opponent returns the side of the match that is not team.
func (m Match) Opponent(team string) string {
	if m.Team1 == team {
		return m.Team2
	}
	return m.Team1
}

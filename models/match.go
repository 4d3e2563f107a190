package models

import "time"

// MatchState representa los estados del partido, según el ENUM de la BD.
type MatchState string

const (
	MatchScheduled  MatchState = "SCHEDULED"
	MatchInProgress MatchState = "IN_PROGRESS"
	MatchFinished   MatchState = "FINISHED"
)

func (s MatchState) Valid() bool {
	switch s {
	case MatchScheduled, MatchInProgress, MatchFinished:
		return true
	}
	return false
}

type Match struct {
	ID             int        `json:"id" db:"id"`
	ChampionshipID int        `json:"championship_id" db:"championship_id"`
	HomeTeamID     int        `json:"home_team_id" db:"home_team_id"`
	AwayTeamID     int        `json:"away_team_id" db:"away_team_id"`
	Date           time.Time  `json:"date" db:"date"`
	StartTime      string     `json:"start_time" db:"start_time"` // formato HH:MM
	Venue          string     `json:"venue" db:"venue"`
	RefereeID      *int       `json:"referee_id,omitempty" db:"referee_id"`
	HomeScore      *int       `json:"home_score,omitempty" db:"home_score"`
	AwayScore      *int       `json:"away_score,omitempty" db:"away_score"`
	State          MatchState `json:"state" db:"state"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`

	Championship *Championship `json:"championship,omitempty" db:"-"`
	HomeTeam     *Team         `json:"home_team,omitempty" db:"-"`
	AwayTeam     *Team         `json:"away_team,omitempty" db:"-"`
	Referee      *Referee      `json:"referee,omitempty" db:"-"`
}

// InvolvesTeam reports whether the team plays in the match, in either role.
func (m *Match) InvolvesTeam(teamID int) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

package models

import "time"

// Stream apunta a una transmisión en vivo externa de un partido.
type Stream struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	MatchID        *int      `json:"match_id,omitempty" db:"match_id"`
	Name           string    `json:"name" db:"name"`
	URL            string    `json:"url" db:"url"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	Match *Match `json:"match,omitempty" db:"-"`
}

package models

import "time"

// MinPlayerAge es la edad mínima para inscribir un jugador.
const MinPlayerAge = 17

type Player struct {
	ID           int       `json:"id" db:"id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	UserID       int       `json:"user_id" db:"user_id"`
	JerseyNumber int       `json:"jersey_number" db:"jersey_number"`
	Age          int       `json:"age" db:"age"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Team *Team `json:"team,omitempty" db:"-"`
	User *User `json:"user,omitempty" db:"-"`

	Suspensions []Suspension `json:"suspensions,omitempty" db:"-"`
}

// SuspendedOn reports whether any loaded suspension covers the given date.
// Para una comprobación contra la BD se usa SuspensionService.
func (p *Player) SuspendedOn(date time.Time) bool {
	for i := range p.Suspensions {
		if p.Suspensions[i].ActiveOn(date) {
			return true
		}
	}
	return false
}

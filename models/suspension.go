package models

import "time"

type Suspension struct {
	ID        int       `json:"id" db:"id"`
	PlayerID  int       `json:"player_id" db:"player_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

// ActiveOn reports whether date falls within [StartDate, EndDate], both inclusive.
// Se compara solo la parte de fecha; la hora se ignora.
func (s *Suspension) ActiveOn(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(s.StartDate)) && !d.After(truncateToDate(s.EndDate))
}

// IsActive evaluates ActiveOn against the current date at call time.
func (s *Suspension) IsActive() bool {
	return s.ActiveOn(time.Now())
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

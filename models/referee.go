package models

type Referee struct {
	ID         int     `json:"id" db:"id"`
	FirstName  string  `json:"first_name" db:"first_name"`
	LastName   string  `json:"last_name" db:"last_name"`
	Experience *string `json:"experience,omitempty" db:"experience"`
	Contact    string  `json:"contact" db:"contact"`
	Active     bool    `json:"active" db:"active"`

	// Deportes que puede arbitrar (relación muchos a muchos)
	SportIDs []int   `json:"sport_ids,omitempty" db:"-"`
	Sports   []Sport `json:"sports,omitempty" db:"-"`
}

package models

import "time"

type Team struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	Name           string    `json:"name" db:"name"`
	Program        *string   `json:"program,omitempty" db:"program"`
	Approved       bool      `json:"approved" db:"approved"`
	DelegateID     *int      `json:"delegate_id,omitempty" db:"delegate_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`

	Championship *Championship `json:"championship,omitempty" db:"-"`
	Delegate     *User         `json:"delegate,omitempty" db:"-"`
	Players      []Player      `json:"players,omitempty" db:"-"`
}

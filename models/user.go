package models

import "time"

// UserRole representa los roles de usuario, según el ENUM de la BD.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleDelegate UserRole = "DELEGATE"
	RolePlayer   UserRole = "PLAYER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDelegate, RolePlayer:
		return true
	}
	return false
}

// CanManageCatalog reports whether the role may create or edit reference data
// (sports, championship types, programs, referees, bank codes).
func (r UserRole) CanManageCatalog() bool {
	return r == RoleAdmin
}

// CanRegisterTeam reports whether the role may register teams for a championship.
func (r UserRole) CanRegisterTeam() bool {
	return r == RoleDelegate
}

// CanScheduleMatches reports whether the role may create or edit matches.
func (r UserRole) CanScheduleMatches() bool {
	return r == RoleAdmin
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Program      *string   `json:"program,omitempty" db:"program"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

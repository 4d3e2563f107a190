package models

// Program es la carrera académica a la que pertenecen delegados y equipos.
type Program struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

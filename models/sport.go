package models

// Sport representa un deporte (fútbol, básquet, etc.).
type Sport struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

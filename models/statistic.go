package models

import "time"

// TeamStatistic acumula los contadores de un equipo dentro de un campeonato.
// Única por pareja (campeonato, equipo). Los contadores que no aplican al
// deporte quedan en cero (canastas en fútbol, sets en básquet, etc.).
type TeamStatistic struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	TeamID         int       `json:"team_id" db:"team_id"`
	GamesPlayed    int       `json:"games_played" db:"games_played"`
	Wins           int       `json:"wins" db:"wins"`
	Draws          int       `json:"draws" db:"draws"`
	Losses         int       `json:"losses" db:"losses"`
	GoalsFor       int       `json:"goals_for" db:"goals_for"`
	GoalsAgainst   int       `json:"goals_against" db:"goals_against"`
	Baskets        int       `json:"baskets" db:"baskets"`
	SetsWon        int       `json:"sets_won" db:"sets_won"`
	SetsLost       int       `json:"sets_lost" db:"sets_lost"`
	YellowCards    int       `json:"yellow_cards" db:"yellow_cards"`
	RedCards       int       `json:"red_cards" db:"red_cards"`
	Points         int       `json:"points" db:"points"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}

// GoalDifference se usa como desempate en la tabla de posiciones.
func (s *TeamStatistic) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// PlayerStatistic acumula los contadores individuales de un jugador dentro de
// un campeonato. Única por pareja (campeonato, jugador).
type PlayerStatistic struct {
	ID             int       `json:"id" db:"id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	PlayerID       int       `json:"player_id" db:"player_id"`
	GamesPlayed    int       `json:"games_played" db:"games_played"`
	Goals          int       `json:"goals" db:"goals"`
	Baskets        int       `json:"baskets" db:"baskets"`
	SetsWon        int       `json:"sets_won" db:"sets_won"`
	YellowCards    int       `json:"yellow_cards" db:"yellow_cards"`
	RedCards       int       `json:"red_cards" db:"red_cards"`
	Points         int       `json:"points" db:"points"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

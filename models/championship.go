package models

import "time"

// ChampionshipState representa los estados del campeonato, según el ENUM de la BD.
type ChampionshipState string

const (
	ChampionshipOpen       ChampionshipState = "OPEN"
	ChampionshipClosed     ChampionshipState = "CLOSED"
	ChampionshipInProgress ChampionshipState = "IN_PROGRESS"
	ChampionshipFinished   ChampionshipState = "FINISHED"
)

func (s ChampionshipState) Valid() bool {
	switch s {
	case ChampionshipOpen, ChampionshipClosed, ChampionshipInProgress, ChampionshipFinished:
		return true
	}
	return false
}

// CanTransitionTo enforces the OPEN → CLOSED → IN_PROGRESS → FINISHED lifecycle.
func (s ChampionshipState) CanTransitionTo(next ChampionshipState) bool {
	switch s {
	case ChampionshipOpen:
		return next == ChampionshipClosed
	case ChampionshipClosed:
		return next == ChampionshipInProgress
	case ChampionshipInProgress:
		return next == ChampionshipFinished
	}
	return false
}

// Weekday nombra los días en los que se puede jugar un partido.
type Weekday string

const (
	WeekdayMonday    Weekday = "MONDAY"
	WeekdayTuesday   Weekday = "TUESDAY"
	WeekdayWednesday Weekday = "WEDNESDAY"
	WeekdayThursday  Weekday = "THURSDAY"
	WeekdayFriday    Weekday = "FRIDAY"
	WeekdaySaturday  Weekday = "SATURDAY"
	WeekdaySunday    Weekday = "SUNDAY"
)

func (w Weekday) Valid() bool {
	switch w {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	}
	return false
}

// WeekdayOf maps a calendar date onto the scheduling day-naming scheme. The
// match validator and the championship weekday set must share this mapping.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

// ChampionshipType clasifica el campeonato (interno, interfacultades, etc.).
type ChampionshipType struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Championship representa un campeonato intramural.
type Championship struct {
	ID            int               `json:"id" db:"id"`
	Name          string            `json:"name" db:"name"`
	Description   *string           `json:"description,omitempty" db:"description"`
	SportID       int               `json:"sport_id" db:"sport_id"`
	TypeID        int               `json:"type_id" db:"type_id"`
	DelegateID    *int              `json:"delegate_id,omitempty" db:"delegate_id"`
	StartDate     time.Time         `json:"start_date" db:"start_date"`
	EndDate       time.Time         `json:"end_date" db:"end_date"`
	State         ChampionshipState `json:"state" db:"state"`
	MatchWeekdays []Weekday         `json:"match_weekdays" db:"match_weekdays"`
	MaxRosterSize int               `json:"max_roster_size" db:"max_roster_size"`
	EntryFee      float64           `json:"entry_fee" db:"entry_fee"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`

	RulesKey *string `json:"-" db:"rules_key"`
	RulesURL *string `json:"rules_url,omitempty" db:"-"`

	// Entidades relacionadas opcionales (no se mapean directamente)
	Sport    *Sport            `json:"sport,omitempty" db:"-"`
	Type     *ChampionshipType `json:"type,omitempty" db:"-"`
	Delegate *User             `json:"delegate,omitempty" db:"-"`
	Teams    []Team            `json:"teams,omitempty" db:"-"`
	Matches  []Match           `json:"matches,omitempty" db:"-"`
}

// AllowsWeekday reports whether the championship calendar admits the given day.
func (c *Championship) AllowsWeekday(day Weekday) bool {
	for _, d := range c.MatchWeekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ContainsDate reports whether date falls within [StartDate, EndDate], inclusive.
func (c *Championship) ContainsDate(date time.Time) bool {
	return !date.Before(c.StartDate) && !date.After(c.EndDate)
}

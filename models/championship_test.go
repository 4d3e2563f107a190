package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChampionshipStateTransitions(t *testing.T) {
	states := []ChampionshipState{
		ChampionshipOpen, ChampionshipClosed, ChampionshipInProgress, ChampionshipFinished,
	}
	allowed := map[ChampionshipState]ChampionshipState{
		ChampionshipOpen:       ChampionshipClosed,
		ChampionshipClosed:     ChampionshipInProgress,
		ChampionshipInProgress: ChampionshipFinished,
	}

	for _, from := range states {
		for _, to := range states {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	// FINISHED es terminal y no hay saltos ni retrocesos.
	assert.False(t, ChampionshipFinished.CanTransitionTo(ChampionshipOpen))
	assert.False(t, ChampionshipOpen.CanTransitionTo(ChampionshipInProgress))
	assert.False(t, ChampionshipClosed.CanTransitionTo(ChampionshipOpen))
}

func TestWeekdayOf(t *testing.T) {
	// La semana del 4 de mayo de 2026 empieza en lunes.
	for i, want := range []Weekday{
		WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday,
	} {
		day := time.Date(2026, 5, 4+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, WeekdayOf(day))
	}
}

func TestChampionshipContainsDate(t *testing.T) {
	c := &Championship{
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, c.ContainsDate(c.StartDate))
	assert.True(t, c.ContainsDate(c.EndDate))
	assert.True(t, c.ContainsDate(time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.ContainsDate(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.ContainsDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestChampionshipAllowsWeekday(t *testing.T) {
	c := &Championship{MatchWeekdays: []Weekday{WeekdayMonday, WeekdaySaturday}}

	assert.True(t, c.AllowsWeekday(WeekdayMonday))
	assert.True(t, c.AllowsWeekday(WeekdaySaturday))
	assert.False(t, c.AllowsWeekday(WeekdayTuesday))

	empty := &Championship{}
	assert.False(t, empty.AllowsWeekday(WeekdayMonday))
}

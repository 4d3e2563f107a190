package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuspensionActiveOn(t *testing.T) {
	s := &Suspension{
		StartDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, s.ActiveOn(time.Date(2026, 5, 9, 23, 59, 0, 0, time.UTC)))
	assert.True(t, s.ActiveOn(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.ActiveOn(time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)))
	// El último día cuenta completo, sin importar la hora consultada.
	assert.True(t, s.ActiveOn(time.Date(2026, 5, 12, 23, 59, 0, 0, time.UTC)))
	assert.False(t, s.ActiveOn(time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC)))
}

func TestSuspensionActiveOn_SingleDay(t *testing.T) {
	s := &Suspension{
		StartDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, s.ActiveOn(time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC)))
	assert.False(t, s.ActiveOn(time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)))
}

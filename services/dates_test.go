package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), parsed)

	for _, value := range []string{"", "04/05/2026", "2026-5-4", "2026-13-01", "2026-02-30", "hoy"} {
		_, err := parseDate(value)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "value %q", value)
	}
}

func TestValidStartTime(t *testing.T) {
	for _, value := range []string{"00:00", "09:30", "10:00", "19:45", "23:59"} {
		assert.True(t, validStartTime(value), "value %q", value)
	}
	for _, value := range []string{"", "24:00", "10:60", "9:30", "10:5", "10.30", "10:30:00", " 10:30"} {
		assert.False(t, validStartTime(value), "value %q", value)
	}
}

package services

import (
	"errors"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var ErrInvalidDateFormat = errors.New("invalid date, expected format YYYY-MM-DD")

// parseDate interpreta fechas del API (YYYY-MM-DD) en UTC.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t.UTC(), nil
}

// validStartTime revisa el formato de hora HH:MM de los partidos.
func validStartTime(value string) bool {
	return startTimePattern.MatchString(value)
}

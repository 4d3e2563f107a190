package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

func newSuspensionServiceForTest(t *testing.T) (SuspensionService, *models.Player) {
	t.Helper()

	playerRepo := newFakePlayerRepo()
	player := playerRepo.add(models.Player{TeamID: 1, UserID: 1, JerseyNumber: 10, Age: 21})

	return NewSuspensionService(newFakeSuspensionRepo(), playerRepo), player
}

func TestSuspendPlayer_ReasonRequired(t *testing.T) {
	svc, player := newSuspensionServiceForTest(t)

	_, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "2026-05-10",
		EndDate:   "2026-05-12",
		Reason:    "   ",
	})
	assert.ErrorIs(t, err, ErrSuspensionReasonRequired)
}

func TestSuspendPlayer_InvalidDates(t *testing.T) {
	svc, player := newSuspensionServiceForTest(t)

	_, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "10/05/2026",
		EndDate:   "2026-05-12",
		Reason:    "doble amarilla",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "2026-05-12",
		EndDate:   "2026-05-10",
		Reason:    "doble amarilla",
	})
	assert.ErrorIs(t, err, ErrSuspensionDatesInvalid)
}

func TestSuspendPlayer_SingleDayWindowIsValid(t *testing.T) {
	svc, player := newSuspensionServiceForTest(t)

	suspension, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "2026-05-10",
		EndDate:   "2026-05-10",
		Reason:    "roja directa",
	})
	require.NoError(t, err)
	assert.Equal(t, suspension.StartDate, suspension.EndDate)
}

func TestSuspendPlayer_PlayerNotFound(t *testing.T) {
	svc, _ := newSuspensionServiceForTest(t)

	_, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  999,
		StartDate: "2026-05-10",
		EndDate:   "2026-05-12",
		Reason:    "roja directa",
	})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

// Los límites de la ventana cuentan como suspendido, incluso cuando la fecha
// consultada trae una hora distinta de medianoche.
func TestIsPlayerSuspended_WindowIsInclusive(t *testing.T) {
	svc, player := newSuspensionServiceForTest(t)

	_, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "2026-05-10",
		EndDate:   "2026-05-12",
		Reason:    "conducta violenta",
	})
	require.NoError(t, err)

	cases := []struct {
		name      string
		date      time.Time
		suspended bool
	}{
		{"day before", time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC), false},
		{"start date", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), true},
		{"inside window", time.Date(2026, 5, 11, 18, 30, 0, 0, time.UTC), true},
		{"end date", time.Date(2026, 5, 12, 23, 0, 0, 0, time.UTC), true},
		{"day after", time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			suspended, err := svc.IsPlayerSuspended(context.Background(), player.ID, tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.suspended, suspended)
		})
	}
}

func TestRevokeSuspension(t *testing.T) {
	svc, player := newSuspensionServiceForTest(t)

	suspension, err := svc.SuspendPlayer(context.Background(), SuspensionInput{
		PlayerID:  player.ID,
		StartDate: "2026-05-10",
		EndDate:   "2026-05-12",
		Reason:    "roja directa",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSuspension(context.Background(), suspension.ID))
	assert.ErrorIs(t, svc.RevokeSuspension(context.Background(), suspension.ID), ErrSuspensionNotFound)

	suspended, err := svc.IsPlayerSuspended(context.Background(), player.ID, time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, suspended)
}

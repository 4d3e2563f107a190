package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

// Recorre el flujo completo de una inscripción: registrar equipos, pagar,
// aprobar el pago y recién entonces poder agendar partidos.
func TestRegistrationToScheduleFlow(t *testing.T) {
	ctx := context.Background()

	championshipRepo := newFakeChampionshipRepo()
	teamRepo := newFakeTeamRepo()
	matchRepo := newFakeMatchRepo()
	paymentRepo := newFakePaymentRepo()
	userRepo := newFakeUserRepo()
	uploader := newFakeUploader()

	championship := championshipRepo.add(models.Championship{
		Name:          "Copa Interna 2024",
		SportID:       1,
		TypeID:        1,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		State:         models.ChampionshipOpen,
		MatchWeekdays: []models.Weekday{models.WeekdaySaturday},
		MaxRosterSize: 12,
	})

	teamService := NewTeamService(teamRepo, championshipRepo, userRepo, uploader)
	paymentService := newPaymentServiceForTest(paymentRepo, teamRepo, newFakeBankCodeRepo(), uploader)
	matchService := NewMatchService(matchRepo, championshipRepo, teamRepo, newFakeRefereeRepo(),
		NewStatisticService(newFakeStatisticRepo(), newFakePlayerRepo()), &fakeBroadcaster{})

	registerAndApprove := func(name string) *models.Team {
		team, err := teamService.RegisterTeam(ctx, TeamInput{ChampionshipID: championship.ID, Name: name})
		require.NoError(t, err)
		require.False(t, team.Approved)

		payment, err := paymentService.SubmitPayment(ctx, PaymentInput{TeamID: team.ID, Method: models.PaymentCash})
		require.NoError(t, err)
		_, err = paymentService.UploadReceipt(ctx, payment.ID, strings.NewReader("comprobante"), "application/pdf")
		require.NoError(t, err)
		_, err = paymentService.ApprovePayment(ctx, payment.ID)
		require.NoError(t, err)

		approved, err := teamService.GetTeamByID(ctx, team.ID)
		require.NoError(t, err)
		require.True(t, approved.Approved)
		return approved
	}

	teamA := registerAndApprove("Equipo A")
	teamB := registerAndApprove("Equipo B")
	teamC := registerAndApprove("Equipo C")

	// El 2 de enero de 2024 es martes y el campeonato juega solo sábados.
	_, err := matchService.ScheduleMatch(ctx, MatchInput{
		ChampionshipID: championship.ID,
		HomeTeamID:     teamA.ID,
		AwayTeamID:     teamB.ID,
		Date:           "2024-01-02",
		StartTime:      "10:00",
		Venue:          "Cancha 1",
	})
	_, ok := AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	// Sábado 6 de enero: el partido entra.
	match, err := matchService.ScheduleMatch(ctx, MatchInput{
		ChampionshipID: championship.ID,
		HomeTeamID:     teamA.ID,
		AwayTeamID:     teamB.ID,
		Date:           "2024-01-06",
		StartTime:      "10:00",
		Venue:          "Cancha 1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchScheduled, match.State)

	// El equipo A ya juega ese sábado a esa hora; el segundo partido no entra.
	_, err = matchService.ScheduleMatch(ctx, MatchInput{
		ChampionshipID: championship.ID,
		HomeTeamID:     teamA.ID,
		AwayTeamID:     teamC.ID,
		Date:           "2024-01-06",
		StartTime:      "10:00",
		Venue:          "Cancha 2",
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "already plays")
}

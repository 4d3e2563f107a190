package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

// Escenario base: campeonato de mayo 2026 que juega lunes y miércoles, con
// dos equipos aprobados.
type matchFixture struct {
	championshipRepo *fakeChampionshipRepo
	teamRepo         *fakeTeamRepo
	matchRepo        *fakeMatchRepo
	refereeRepo      *fakeRefereeRepo
	statisticRepo    *fakeStatisticRepo
	broadcaster      *fakeBroadcaster
	svc              MatchService

	championship *models.Championship
	home         *models.Team
	away         *models.Team
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()

	f := &matchFixture{
		championshipRepo: newFakeChampionshipRepo(),
		teamRepo:         newFakeTeamRepo(),
		matchRepo:        newFakeMatchRepo(),
		refereeRepo:      newFakeRefereeRepo(),
		statisticRepo:    newFakeStatisticRepo(),
		broadcaster:      &fakeBroadcaster{},
	}

	f.championship = f.championshipRepo.add(models.Championship{
		Name:          "Copa Interna 2026",
		SportID:       1,
		TypeID:        1,
		StartDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
		State:         models.ChampionshipInProgress,
		MatchWeekdays: []models.Weekday{models.WeekdayMonday, models.WeekdayWednesday},
		MaxRosterSize: 12,
	})
	f.home = f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Ingeniería", Approved: true})
	f.away = f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Medicina", Approved: true})

	statisticService := NewStatisticService(f.statisticRepo, newFakePlayerRepo())
	f.svc = NewMatchService(f.matchRepo, f.championshipRepo, f.teamRepo, f.refereeRepo, statisticService, f.broadcaster)
	return f
}

// validInput apunta al lunes 4 de mayo de 2026.
func (f *matchFixture) validInput() MatchInput {
	return MatchInput{
		ChampionshipID: f.championship.ID,
		HomeTeamID:     f.home.ID,
		AwayTeamID:     f.away.ID,
		Date:           "2026-05-04",
		StartTime:      "10:00",
		Venue:          "Cancha 1",
	}
}

func TestScheduleMatch_Valid(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)
	assert.Equal(t, models.MatchScheduled, match.State)
	assert.Equal(t, "10:00", match.StartTime)
}

func TestScheduleMatch_DateOutsideWindow(t *testing.T) {
	f := newMatchFixture(t)

	input := f.validInput()
	input.Date = "2026-06-01" // lunes, pero fuera de la ventana

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "outside the championship window")
}

func TestScheduleMatch_SameTeam(t *testing.T) {
	f := newMatchFixture(t)

	input := f.validInput()
	input.AwayTeamID = input.HomeTeamID

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "home and away teams must be different")
}

func TestScheduleMatch_WeekdayNotAllowed(t *testing.T) {
	f := newMatchFixture(t)

	input := f.validInput()
	input.Date = "2026-05-05" // martes

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "does not allow matches on TUESDAY")
}

func TestScheduleMatch_TeamDoubleBooked(t *testing.T) {
	f := newMatchFixture(t)
	third := f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Derecho", Approved: true})

	_, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)

	// El equipo local ya juega ese día a esa hora, en otra cancha.
	input := f.validInput()
	input.AwayTeamID = third.ID
	input.Venue = "Cancha 2"

	_, err = f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "already plays match")
}

func TestScheduleMatch_VenueClashIsCaseInsensitive(t *testing.T) {
	f := newMatchFixture(t)
	third := f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Derecho", Approved: true})
	fourth := f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Economía", Approved: true})

	_, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)

	input := f.validInput()
	input.HomeTeamID = third.ID
	input.AwayTeamID = fourth.ID
	input.Venue = "CANCHA 1"

	_, err = f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "already taken at the same date and time")
}

func TestScheduleMatch_CollectsAllViolations(t *testing.T) {
	f := newMatchFixture(t)

	input := f.validInput()
	input.Date = "2026-06-02"          // fuera de ventana y además martes
	input.AwayTeamID = input.HomeTeamID // mismo equipo

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Messages, 3)
}

func TestScheduleMatch_UnapprovedTeamRejected(t *testing.T) {
	f := newMatchFixture(t)
	pending := f.teamRepo.add(models.Team{ChampionshipID: f.championship.ID, Name: "Arquitectura", Approved: false})

	input := f.validInput()
	input.AwayTeamID = pending.ID

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "is not approved")
}

func TestScheduleMatch_InactiveRefereeRejected(t *testing.T) {
	f := newMatchFixture(t)
	referee := f.refereeRepo.add(models.Referee{FirstName: "Luis", LastName: "Mora", Active: false})

	input := f.validInput()
	input.RefereeID = &referee.ID

	_, err := f.svc.ScheduleMatch(context.Background(), input)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "is not active")
}

func TestUpdateMatch_ExcludesItselfFromSlotCheck(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)

	// Editar sin mover el horario no debe chocar con su propio registro.
	input := f.validInput()
	input.Venue = "Cancha 1"
	updated, err := f.svc.UpdateMatch(context.Background(), match.ID, input)
	require.NoError(t, err)
	assert.Equal(t, match.ID, updated.ID)
}

func TestUpdateMatch_FinishedIsImmutable(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)
	_, err = f.svc.RecordResult(context.Background(), match.ID, 2, 1)
	require.NoError(t, err)

	_, err = f.svc.UpdateMatch(context.Background(), match.ID, f.validInput())
	assert.ErrorIs(t, err, ErrMatchAlreadyFinished)
}

func TestRecordResult_UpdatesStandingsAndBroadcasts(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)

	finished, err := f.svc.RecordResult(context.Background(), match.ID, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, models.MatchFinished, finished.State)

	home, err := f.statisticRepo.GetTeamStatistic(context.Background(), f.championship.ID, f.home.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, home.Wins)
	assert.Equal(t, 3, home.Points)
	assert.Equal(t, 3, home.GoalsFor)
	assert.Equal(t, 1, home.GoalsAgainst)

	away, err := f.statisticRepo.GetTeamStatistic(context.Background(), f.championship.ID, f.away.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, away.Losses)
	assert.Equal(t, 0, away.Points)

	require.Len(t, f.broadcaster.events, 1)
	assert.Equal(t, f.championship.ID, f.broadcaster.events[0])
}

func TestRecordResult_NegativeScore(t *testing.T) {
	f := newMatchFixture(t)

	_, err := f.svc.RecordResult(context.Background(), 1, -1, 0)
	assert.ErrorIs(t, err, ErrNegativeScore)
}

func TestRecordResult_AlreadyFinished(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)
	_, err = f.svc.RecordResult(context.Background(), match.ID, 0, 0)
	require.NoError(t, err)

	_, err = f.svc.RecordResult(context.Background(), match.ID, 1, 0)
	assert.ErrorIs(t, err, ErrMatchAlreadyFinished)
}

func TestDeleteMatch_FinishedIsProtected(t *testing.T) {
	f := newMatchFixture(t)

	match, err := f.svc.ScheduleMatch(context.Background(), f.validInput())
	require.NoError(t, err)
	_, err = f.svc.RecordResult(context.Background(), match.ID, 1, 1)
	require.NoError(t, err)

	err = f.svc.DeleteMatch(context.Background(), match.ID)
	assert.ErrorIs(t, err, ErrMatchAlreadyFinished)
}

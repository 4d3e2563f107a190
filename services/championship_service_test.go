package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

type championshipFixture struct {
	championshipRepo *fakeChampionshipRepo
	sportRepo        *fakeSportRepo
	typeRepo         *fakeChampionshipTypeRepo
	userRepo         *fakeUserRepo
	teamRepo         *fakeTeamRepo
	uploader         *fakeUploader
	svc              ChampionshipService

	sport *models.Sport
	kind  *models.ChampionshipType
}

func newChampionshipFixture(t *testing.T) *championshipFixture {
	t.Helper()

	f := &championshipFixture{
		championshipRepo: newFakeChampionshipRepo(),
		sportRepo:        newFakeSportRepo(),
		typeRepo:         newFakeChampionshipTypeRepo(),
		userRepo:         newFakeUserRepo(),
		teamRepo:         newFakeTeamRepo(),
		uploader:         newFakeUploader(),
	}
	f.sport = f.sportRepo.add(models.Sport{Name: "Fútbol"})
	f.kind = f.typeRepo.add(models.ChampionshipType{Name: "Interno"})
	f.svc = NewChampionshipService(f.championshipRepo, f.sportRepo, f.typeRepo, f.userRepo, f.teamRepo, f.uploader)
	return f
}

func (f *championshipFixture) validInput() ChampionshipInput {
	return ChampionshipInput{
		Name:          "Copa Interna 2026",
		SportID:       f.sport.ID,
		TypeID:        f.kind.ID,
		StartDate:     "2026-05-01",
		EndDate:       "2026-05-31",
		MatchWeekdays: []models.Weekday{models.WeekdayMonday, models.WeekdayWednesday},
		MaxRosterSize: 12,
		EntryFee:      25,
	}
}

func TestCreateChampionship_StartsOpen(t *testing.T) {
	f := newChampionshipFixture(t)

	championship, err := f.svc.CreateChampionship(context.Background(), f.validInput())
	require.NoError(t, err)

	assert.Equal(t, models.ChampionshipOpen, championship.State)
	assert.Equal(t, "Copa Interna 2026", championship.Name)
}

func TestCreateChampionship_CollectsAllViolations(t *testing.T) {
	f := newChampionshipFixture(t)

	input := f.validInput()
	input.Name = "  "
	input.SportID = 999
	input.EndDate = "2026-04-01" // antes del inicio
	input.MaxRosterSize = 0
	input.EntryFee = -5

	_, err := f.svc.CreateChampionship(context.Background(), input)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Messages, 5)
}

func TestCreateChampionship_RejectsBadWeekdays(t *testing.T) {
	f := newChampionshipFixture(t)

	input := f.validInput()
	input.MatchWeekdays = []models.Weekday{models.WeekdayMonday, "LUNES", models.WeekdayMonday}

	_, err := f.svc.CreateChampionship(context.Background(), input)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Messages, 2)
	assert.Contains(t, ve.Messages[0], "invalid weekday")
	assert.Contains(t, ve.Messages[1], "repeated")
}

func TestCreateChampionship_DelegateMustHaveDelegateRole(t *testing.T) {
	f := newChampionshipFixture(t)
	player := f.userRepo.add(models.User{Username: "jperez", Role: models.RolePlayer})

	input := f.validInput()
	input.DelegateID = &player.ID

	_, err := f.svc.CreateChampionship(context.Background(), input)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Messages, 1)
	assert.Contains(t, ve.Messages[0], "DELEGATE")
}

func TestChangeState_FollowsLifecycle(t *testing.T) {
	f := newChampionshipFixture(t)

	championship, err := f.svc.CreateChampionship(context.Background(), f.validInput())
	require.NoError(t, err)

	// Saltarse CLOSED no está permitido.
	_, err = f.svc.ChangeState(context.Background(), championship.ID, models.ChampionshipInProgress)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	for _, next := range []models.ChampionshipState{
		models.ChampionshipClosed,
		models.ChampionshipInProgress,
		models.ChampionshipFinished,
	} {
		updated, err := f.svc.ChangeState(context.Background(), championship.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.State)
	}

	_, err = f.svc.ChangeState(context.Background(), championship.ID, models.ChampionshipOpen)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestUpdateChampionship_FinishedIsImmutable(t *testing.T) {
	f := newChampionshipFixture(t)
	championship := f.championshipRepo.add(models.Championship{
		Name:    "Copa Interna 2025",
		SportID: f.sport.ID,
		TypeID:  f.kind.ID,
		State:   models.ChampionshipFinished,
	})

	_, err := f.svc.UpdateChampionship(context.Background(), championship.ID, f.validInput())
	assert.ErrorIs(t, err, ErrChampionshipNotModifiable)
}

func TestUpdateChampionship_KeepsStateAndRules(t *testing.T) {
	f := newChampionshipFixture(t)

	championship, err := f.svc.CreateChampionship(context.Background(), f.validInput())
	require.NoError(t, err)

	_, err = f.svc.ChangeState(context.Background(), championship.ID, models.ChampionshipClosed)
	require.NoError(t, err)

	input := f.validInput()
	input.Name = "Copa Interna 2026 - Edición Especial"
	updated, err := f.svc.UpdateChampionship(context.Background(), championship.ID, input)
	require.NoError(t, err)

	assert.Equal(t, models.ChampionshipClosed, updated.State)
	assert.Equal(t, "Copa Interna 2026 - Edición Especial", updated.Name)
}

func TestUploadRules_OnlyPDF(t *testing.T) {
	f := newChampionshipFixture(t)

	championship, err := f.svc.CreateChampionship(context.Background(), f.validInput())
	require.NoError(t, err)

	_, err = f.svc.UploadRules(context.Background(), championship.ID, strings.NewReader("reglamento"), "image/png")
	assert.ErrorIs(t, err, ErrInvalidRulesContentType)

	updated, err := f.svc.UploadRules(context.Background(), championship.ID, strings.NewReader("reglamento"), "application/pdf")
	require.NoError(t, err)
	require.NotNil(t, updated.RulesKey)
	assert.Contains(t, *updated.RulesKey, "rules.pdf")
	require.NotNil(t, updated.RulesURL)
}

func TestDeleteChampionship_BlockedByTeams(t *testing.T) {
	f := newChampionshipFixture(t)

	championship, err := f.svc.CreateChampionship(context.Background(), f.validInput())
	require.NoError(t, err)
	f.teamRepo.add(models.Team{ChampionshipID: championship.ID, Name: "Ingeniería"})

	err = f.svc.DeleteChampionship(context.Background(), championship.ID)
	assert.ErrorIs(t, err, ErrChampionshipHasTeams)
}

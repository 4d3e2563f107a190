package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

type fixtureFixture struct {
	championshipRepo *fakeChampionshipRepo
	teamRepo         *fakeTeamRepo
	svc              FixtureService
}

func newFixtureFixture(t *testing.T, start, end time.Time) (*fixtureFixture, *models.Championship) {
	t.Helper()

	f := &fixtureFixture{
		championshipRepo: newFakeChampionshipRepo(),
		teamRepo:         newFakeTeamRepo(),
	}
	championship := f.championshipRepo.add(models.Championship{
		Name:          "Copa Interna 2026",
		StartDate:     start,
		EndDate:       end,
		State:         models.ChampionshipClosed,
		MatchWeekdays: []models.Weekday{models.WeekdayMonday, models.WeekdayWednesday},
		MaxRosterSize: 12,
	})
	f.svc = NewFixtureService(f.championshipRepo, f.teamRepo)
	return f, championship
}

func (f *fixtureFixture) addTeams(championshipID, count int, approved bool) []int {
	ids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		team := f.teamRepo.add(models.Team{
			ChampionshipID: championshipID,
			Name:           fmt.Sprintf("Equipo %d", f.teamRepo.nextID),
			Approved:       approved,
		})
		ids = append(ids, team.ID)
	}
	return ids
}

func TestProposeFixtures_EveryPairPlaysOnce(t *testing.T) {
	f, championship := newFixtureFixture(t,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	)
	ids := f.addTeams(championship.ID, 4, true)

	fixtures, err := f.svc.ProposeFixtures(context.Background(), championship.ID, false)
	require.NoError(t, err)
	require.Len(t, fixtures, 6) // 4 equipos, 3 jornadas de 2 partidos

	seen := make(map[string]int)
	for _, fx := range fixtures {
		assert.NotEqual(t, fx.HomeTeamID, fx.AwayTeamID)
		lo, hi := fx.HomeTeamID, fx.AwayTeamID
		if lo > hi {
			lo, hi = hi, lo
		}
		seen[fmt.Sprintf("%d-%d", lo, hi)]++
	}
	assert.Len(t, seen, len(ids)*(len(ids)-1)/2)
	for pair, n := range seen {
		assert.Equal(t, 1, n, "pair %s scheduled %d times", pair, n)
	}
}

func TestProposeFixtures_AssignsAllowedMatchDays(t *testing.T) {
	f, championship := newFixtureFixture(t,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	)
	f.addTeams(championship.ID, 4, true)

	fixtures, err := f.svc.ProposeFixtures(context.Background(), championship.ID, false)
	require.NoError(t, err)

	// Los días de juego de mayo 2026 para lunes y miércoles arrancan el 4.
	assert.Equal(t, "2026-05-04", fixtures[0].Date)
	for _, fx := range fixtures {
		day, err := time.Parse("2006-01-02", fx.Date)
		require.NoError(t, err)
		assert.True(t, championship.AllowsWeekday(models.WeekdayOf(day)))
		assert.True(t, championship.ContainsDate(day))
	}
}

func TestProposeFixtures_DoubleRoundMirrorsHomeAndAway(t *testing.T) {
	f, championship := newFixtureFixture(t,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	)
	f.addTeams(championship.ID, 4, true)

	fixtures, err := f.svc.ProposeFixtures(context.Background(), championship.ID, true)
	require.NoError(t, err)
	require.Len(t, fixtures, 12)

	ordered := make(map[string]int)
	for _, fx := range fixtures {
		ordered[fmt.Sprintf("%d-%d", fx.HomeTeamID, fx.AwayTeamID)]++
	}
	for pair, n := range ordered {
		assert.Equal(t, 1, n, "ordered pair %s scheduled %d times", pair, n)
	}
}

func TestProposeFixtures_IgnoresUnapprovedTeams(t *testing.T) {
	f, championship := newFixtureFixture(t,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	)
	f.addTeams(championship.ID, 1, true)
	f.addTeams(championship.ID, 3, false)

	_, err := f.svc.ProposeFixtures(context.Background(), championship.ID, false)
	assert.ErrorIs(t, err, ErrNotEnoughTeams)
}

func TestProposeFixtures_WindowTooSmall(t *testing.T) {
	// Una sola semana: dos días de juego para tres jornadas.
	f, championship := newFixtureFixture(t,
		time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
	)
	f.addTeams(championship.ID, 4, true)

	_, err := f.svc.ProposeFixtures(context.Background(), championship.ID, false)
	assert.ErrorIs(t, err, ErrFixtureWindowTooSmall)
}

func TestProposeFixtures_ChampionshipNotFound(t *testing.T) {
	f, _ := newFixtureFixture(t,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	)

	_, err := f.svc.ProposeFixtures(context.Background(), 999, false)
	assert.ErrorIs(t, err, ErrChampionshipNotFound)
}

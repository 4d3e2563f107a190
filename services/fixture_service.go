package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/schedule"
)

var (
	ErrNotEnoughTeams        = errors.New("at least two approved teams are required to build a fixture")
	ErrFixtureWindowTooSmall = errors.New("championship calendar has fewer match days than rounds required")
)

// ProposedFixture es un partido sugerido por el generador de calendario.
// No se persiste: el administrador lo revisa y agenda cada partido.
type ProposedFixture struct {
	Round      int    `json:"round"`
	Date       string `json:"date"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
}

type FixtureService interface {
	// ProposeFixtures arma un todos-contra-todos con los equipos aprobados
	// del campeonato, repartiendo una jornada por día de juego disponible.
	ProposeFixtures(ctx context.Context, championshipID int, doubleRound bool) ([]ProposedFixture, error)
}

type fixtureService struct {
	championshipRepo repositories.ChampionshipRepository
	teamRepo         repositories.TeamRepository
}

func NewFixtureService(
	championshipRepo repositories.ChampionshipRepository,
	teamRepo repositories.TeamRepository,
) FixtureService {
	return &fixtureService{
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
	}
}

func (s *fixtureService) ProposeFixtures(ctx context.Context, championshipID int, doubleRound bool) ([]ProposedFixture, error) {
	championship, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to load championship: %w", err)
	}

	teams, err := s.teamRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teamIDs := make([]int, 0, len(teams))
	for _, team := range teams {
		if team.Approved {
			teamIDs = append(teamIDs, team.ID)
		}
	}
	if len(teamIDs) < 2 {
		return nil, ErrNotEnoughTeams
	}

	matchDays := matchDaysInWindow(championship)
	rounds := schedule.TotalRounds(len(teamIDs), doubleRound)
	if len(matchDays) < rounds {
		return nil, fmt.Errorf("%w: need %d match days, calendar has %d",
			ErrFixtureWindowTooSmall, rounds, len(matchDays))
	}

	pairings := schedule.RoundRobin(teamIDs, doubleRound)
	fixtures := make([]ProposedFixture, 0, len(pairings))
	for _, p := range pairings {
		fixtures = append(fixtures, ProposedFixture{
			Round:      p.Round,
			Date:       matchDays[p.Round-1].Format(dateLayout),
			HomeTeamID: p.HomeTeamID,
			AwayTeamID: p.AwayTeamID,
		})
	}

	return fixtures, nil
}

// matchDaysInWindow recorre [start_date, end_date] y devuelve los días que
// caen en un weekday habilitado del campeonato.
func matchDaysInWindow(c *models.Championship) []time.Time {
	var days []time.Time
	for day := c.StartDate; !day.After(c.EndDate); day = day.AddDate(0, 0, 1) {
		if c.AllowsWeekday(models.WeekdayOf(day)) {
			days = append(days, day)
		}
	}
	return days
}

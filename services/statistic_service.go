package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

type StatisticService interface {
	// ApplyMatchResult acumula el resultado de un partido finalizado en las
	// estadísticas de los dos equipos.
	ApplyMatchResult(ctx context.Context, match *models.Match) error
	// GetStandings devuelve la tabla de posiciones del campeonato, ordenada por
	// puntos y diferencia de gol.
	GetStandings(ctx context.Context, championshipID int) ([]models.TeamStatistic, error)
	GetTeamStatistic(ctx context.Context, championshipID, teamID int) (*models.TeamStatistic, error)
	// RecordPlayerStatistic registra los contadores individuales de un jugador,
	// cargados por el administrador.
	RecordPlayerStatistic(ctx context.Context, input PlayerStatisticInput) (*models.PlayerStatistic, error)
	ListPlayerStatistics(ctx context.Context, championshipID int) ([]models.PlayerStatistic, error)
}

type PlayerStatisticInput struct {
	ChampionshipID int
	PlayerID       int
	GamesPlayed    int
	Goals          int
	Baskets        int
	SetsWon        int
	YellowCards    int
	RedCards       int
	Points         int
}

type statisticService struct {
	statisticRepo repositories.StatisticRepository
	playerRepo    repositories.PlayerRepository
}

func NewStatisticService(statisticRepo repositories.StatisticRepository, playerRepo repositories.PlayerRepository) StatisticService {
	return &statisticService{statisticRepo: statisticRepo, playerRepo: playerRepo}
}

func (s *statisticService) ApplyMatchResult(ctx context.Context, match *models.Match) error {
	if match.HomeScore == nil || match.AwayScore == nil {
		return fmt.Errorf("match %d has no recorded scores", match.ID)
	}

	home, err := s.loadOrInitTeamStatistic(ctx, match.ChampionshipID, match.HomeTeamID)
	if err != nil {
		return err
	}
	away, err := s.loadOrInitTeamStatistic(ctx, match.ChampionshipID, match.AwayTeamID)
	if err != nil {
		return err
	}

	applyResult(home, *match.HomeScore, *match.AwayScore)
	applyResult(away, *match.AwayScore, *match.HomeScore)

	if err := s.statisticRepo.UpsertTeamStatistic(ctx, home); err != nil {
		return fmt.Errorf("failed to save statistics for team %d: %w", home.TeamID, err)
	}
	if err := s.statisticRepo.UpsertTeamStatistic(ctx, away); err != nil {
		return fmt.Errorf("failed to save statistics for team %d: %w", away.TeamID, err)
	}
	return nil
}

func (s *statisticService) GetStandings(ctx context.Context, championshipID int) ([]models.TeamStatistic, error) {
	standings, err := s.statisticRepo.ListTeamStatistics(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings for championship %d: %w", championshipID, err)
	}
	if standings == nil {
		return []models.TeamStatistic{}, nil
	}
	return standings, nil
}

func (s *statisticService) GetTeamStatistic(ctx context.Context, championshipID, teamID int) (*models.TeamStatistic, error) {
	stat, err := s.statisticRepo.GetTeamStatistic(ctx, championshipID, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamStatisticNotFound) {
			return nil, ErrStatisticNotFound
		}
		return nil, fmt.Errorf("failed to get statistics for team %d: %w", teamID, err)
	}
	return stat, nil
}

func (s *statisticService) RecordPlayerStatistic(ctx context.Context, input PlayerStatisticInput) (*models.PlayerStatistic, error) {
	if _, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to check player %d: %w", input.PlayerID, err)
	}

	stat := &models.PlayerStatistic{
		ChampionshipID: input.ChampionshipID,
		PlayerID:       input.PlayerID,
		GamesPlayed:    input.GamesPlayed,
		Goals:          input.Goals,
		Baskets:        input.Baskets,
		SetsWon:        input.SetsWon,
		YellowCards:    input.YellowCards,
		RedCards:       input.RedCards,
		Points:         input.Points,
	}

	if err := s.statisticRepo.UpsertPlayerStatistic(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to save statistics for player %d: %w", input.PlayerID, err)
	}
	return stat, nil
}

func (s *statisticService) ListPlayerStatistics(ctx context.Context, championshipID int) ([]models.PlayerStatistic, error) {
	stats, err := s.statisticRepo.ListPlayerStatistics(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player statistics for championship %d: %w", championshipID, err)
	}
	if stats == nil {
		return []models.PlayerStatistic{}, nil
	}
	return stats, nil
}

func (s *statisticService) loadOrInitTeamStatistic(ctx context.Context, championshipID, teamID int) (*models.TeamStatistic, error) {
	stat, err := s.statisticRepo.GetTeamStatistic(ctx, championshipID, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamStatisticNotFound) {
			return &models.TeamStatistic{ChampionshipID: championshipID, TeamID: teamID}, nil
		}
		return nil, fmt.Errorf("failed to load statistics for team %d: %w", teamID, err)
	}
	return stat, nil
}

// applyResult acumula un resultado desde la perspectiva de un equipo:
// 3 puntos por victoria, 1 por empate, 0 por derrota.
func applyResult(stat *models.TeamStatistic, scored, conceded int) {
	stat.GamesPlayed++
	stat.GoalsFor += scored
	stat.GoalsAgainst += conceded

	switch {
	case scored > conceded:
		stat.Wins++
		stat.Points += pointsPerWin
	case scored == conceded:
		stat.Draws++
		stat.Points += pointsPerDraw
	default:
		stat.Losses++
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

// DashboardService arma los contadores del panel del administrador.
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	userRepo         repositories.UserRepository
	championshipRepo repositories.ChampionshipRepository
	teamRepo         repositories.TeamRepository
	matchRepo        repositories.MatchRepository
	suspensionRepo   repositories.SuspensionRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	championshipRepo repositories.ChampionshipRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	suspensionRepo repositories.SuspensionRepository,
) DashboardService {
	return &dashboardService{
		userRepo:         userRepo,
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		matchRepo:        matchRepo,
		suspensionRepo:   suspensionRepo,
	}
}

// GetStats lanza los conteos en paralelo; cada uno es una consulta
// independiente.
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	today := time.Now().UTC()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.userRepo.CountAll(gctx)
		stats.UsersTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.championshipRepo.CountAll(gctx)
		stats.ChampionshipsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.championshipRepo.CountByState(gctx, models.ChampionshipOpen)
		stats.OpenChampionships = n
		return err
	})
	g.Go(func() error {
		n, err := s.teamRepo.CountAll(gctx)
		stats.TeamsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.teamRepo.CountPendingApproval(gctx)
		stats.TeamsPendingPayment = n
		return err
	})
	g.Go(func() error {
		n, err := s.matchRepo.CountOnDate(gctx, today)
		stats.MatchesToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.suspensionRepo.CountActiveOn(gctx, today)
		stats.ActiveSuspensions = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return stats, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var (
	ErrSuspensionReasonRequired = errors.New("suspension reason is required")
	ErrSuspensionDatesInvalid   = errors.New("suspension end_date must not be before start_date")
)

type SuspensionService interface {
	SuspendPlayer(ctx context.Context, input SuspensionInput) (*models.Suspension, error)
	GetSuspensionByID(ctx context.Context, id int) (*models.Suspension, error)
	ListSuspensions(ctx context.Context) ([]models.Suspension, error)
	ListSuspensionsByPlayer(ctx context.Context, playerID int) ([]models.Suspension, error)
	// IsPlayerSuspended evalúa las suspensiones del jugador contra la fecha
	// dada; los límites de la ventana son inclusivos.
	IsPlayerSuspended(ctx context.Context, playerID int, date time.Time) (bool, error)
	RevokeSuspension(ctx context.Context, id int) error
}

type SuspensionInput struct {
	PlayerID  int
	StartDate string // formato YYYY-MM-DD
	EndDate   string
	Reason    string
}

type suspensionService struct {
	suspensionRepo repositories.SuspensionRepository
	playerRepo     repositories.PlayerRepository
}

func NewSuspensionService(suspensionRepo repositories.SuspensionRepository, playerRepo repositories.PlayerRepository) SuspensionService {
	return &suspensionService{suspensionRepo: suspensionRepo, playerRepo: playerRepo}
}

func (s *suspensionService) SuspendPlayer(ctx context.Context, input SuspensionInput) (*models.Suspension, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, ErrSuspensionReasonRequired
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrSuspensionDatesInvalid
	}

	if _, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to check player %d: %w", input.PlayerID, err)
	}

	suspension := &models.Suspension{
		PlayerID:  input.PlayerID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}

	if err := s.suspensionRepo.Create(ctx, suspension); err != nil {
		return nil, fmt.Errorf("failed to suspend player %d: %w", input.PlayerID, err)
	}
	return suspension, nil
}

func (s *suspensionService) GetSuspensionByID(ctx context.Context, id int) (*models.Suspension, error) {
	suspension, err := s.suspensionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSuspensionNotFound) {
			return nil, ErrSuspensionNotFound
		}
		return nil, fmt.Errorf("failed to get suspension by id %d: %w", id, err)
	}
	return suspension, nil
}

func (s *suspensionService) ListSuspensions(ctx context.Context) ([]models.Suspension, error) {
	suspensions, err := s.suspensionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suspensions: %w", err)
	}
	if suspensions == nil {
		return []models.Suspension{}, nil
	}
	return suspensions, nil
}

func (s *suspensionService) ListSuspensionsByPlayer(ctx context.Context, playerID int) ([]models.Suspension, error) {
	suspensions, err := s.suspensionRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suspensions for player %d: %w", playerID, err)
	}
	if suspensions == nil {
		return []models.Suspension{}, nil
	}
	return suspensions, nil
}

func (s *suspensionService) IsPlayerSuspended(ctx context.Context, playerID int, date time.Time) (bool, error) {
	suspensions, err := s.suspensionRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return false, fmt.Errorf("failed to list suspensions for player %d: %w", playerID, err)
	}
	for i := range suspensions {
		if suspensions[i].ActiveOn(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *suspensionService) RevokeSuspension(ctx context.Context, id int) error {
	if err := s.suspensionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSuspensionNotFound) {
			return ErrSuspensionNotFound
		}
		return fmt.Errorf("failed to revoke suspension %d: %w", id, err)
	}
	return nil
}

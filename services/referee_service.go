package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var ErrRefereeNameRequired = errors.New("referee first and last name are required")

type RefereeService interface {
	CreateReferee(ctx context.Context, input RefereeInput) (*models.Referee, error)
	GetRefereeByID(ctx context.Context, id int) (*models.Referee, error)
	ListReferees(ctx context.Context, onlyActive bool) ([]models.Referee, error)
	UpdateReferee(ctx context.Context, id int, input RefereeInput) (*models.Referee, error)
	DeleteReferee(ctx context.Context, id int) error
}

type RefereeInput struct {
	FirstName  string
	LastName   string
	Experience *string
	Contact    string
	Active     bool
	SportIDs   []int
}

type refereeService struct {
	refereeRepo repositories.RefereeRepository
	sportRepo   repositories.SportRepository
}

func NewRefereeService(refereeRepo repositories.RefereeRepository, sportRepo repositories.SportRepository) RefereeService {
	return &refereeService{refereeRepo: refereeRepo, sportRepo: sportRepo}
}

func (s *refereeService) CreateReferee(ctx context.Context, input RefereeInput) (*models.Referee, error) {
	referee, err := s.buildReferee(ctx, 0, input)
	if err != nil {
		return nil, err
	}

	if err := s.refereeRepo.Create(ctx, referee); err != nil {
		return nil, fmt.Errorf("failed to create referee: %w", err)
	}
	return referee, nil
}

func (s *refereeService) GetRefereeByID(ctx context.Context, id int) (*models.Referee, error) {
	referee, err := s.refereeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRefereeNotFound) {
			return nil, ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to get referee by id %d: %w", id, err)
	}
	return referee, nil
}

func (s *refereeService) ListReferees(ctx context.Context, onlyActive bool) ([]models.Referee, error) {
	referees, err := s.refereeRepo.GetAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list referees: %w", err)
	}
	if referees == nil {
		return []models.Referee{}, nil
	}
	return referees, nil
}

func (s *refereeService) UpdateReferee(ctx context.Context, id int, input RefereeInput) (*models.Referee, error) {
	if _, err := s.GetRefereeByID(ctx, id); err != nil {
		return nil, err
	}

	referee, err := s.buildReferee(ctx, id, input)
	if err != nil {
		return nil, err
	}

	if err := s.refereeRepo.Update(ctx, referee); err != nil {
		if errors.Is(err, repositories.ErrRefereeNotFound) {
			return nil, ErrRefereeNotFound
		}
		return nil, fmt.Errorf("failed to update referee %d: %w", id, err)
	}
	return referee, nil
}

func (s *refereeService) DeleteReferee(ctx context.Context, id int) error {
	if err := s.refereeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRefereeNotFound) {
			return ErrRefereeNotFound
		}
		return fmt.Errorf("failed to delete referee %d: %w", id, err)
	}
	return nil
}

func (s *refereeService) buildReferee(ctx context.Context, id int, input RefereeInput) (*models.Referee, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrRefereeNameRequired
	}

	// Cada deporte asignado debe existir en el catálogo.
	for _, sportID := range input.SportIDs {
		if _, err := s.sportRepo.GetByID(ctx, sportID); err != nil {
			if errors.Is(err, repositories.ErrSportNotFound) {
				return nil, ErrSportNotFound
			}
			return nil, fmt.Errorf("failed to check sport %d: %w", sportID, err)
		}
	}

	return &models.Referee{
		ID:         id,
		FirstName:  firstName,
		LastName:   lastName,
		Experience: input.Experience,
		Contact:    strings.TrimSpace(input.Contact),
		Active:     input.Active,
		SportIDs:   input.SportIDs,
	}, nil
}

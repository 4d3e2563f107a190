package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var (
	ErrTypeNameRequired   = errors.New("championship type name is required")
	ErrTypeCreationFailed = errors.New("failed to create championship type")
	ErrTypeUpdateFailed   = errors.New("failed to update championship type")
	ErrTypeDeleteFailed   = errors.New("failed to delete championship type")
)

type ChampionshipTypeService interface {
	CreateType(ctx context.Context, input ChampionshipTypeInput) (*models.ChampionshipType, error)
	GetTypeByID(ctx context.Context, id int) (*models.ChampionshipType, error)
	GetAllTypes(ctx context.Context) ([]models.ChampionshipType, error)
	UpdateType(ctx context.Context, id int, input ChampionshipTypeInput) (*models.ChampionshipType, error)
	DeleteType(ctx context.Context, id int) error
}

type ChampionshipTypeInput struct {
	Name        string
	Description *string
}

type championshipTypeService struct {
	typeRepo repositories.ChampionshipTypeRepository
}

func NewChampionshipTypeService(typeRepo repositories.ChampionshipTypeRepository) ChampionshipTypeService {
	return &championshipTypeService{typeRepo: typeRepo}
}

func (s *championshipTypeService) CreateType(ctx context.Context, input ChampionshipTypeInput) (*models.ChampionshipType, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTypeNameRequired
	}

	t := &models.ChampionshipType{
		Name:        name,
		Description: input.Description,
	}

	err := s.typeRepo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipTypeNameConflict) {
			return nil, ErrTypeNameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrTypeCreationFailed, err)
	}
	return t, nil
}

func (s *championshipTypeService) GetTypeByID(ctx context.Context, id int) (*models.ChampionshipType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipTypeNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, fmt.Errorf("failed to get championship type by id %d: %w", id, err)
	}
	return t, nil
}

func (s *championshipTypeService) GetAllTypes(ctx context.Context) ([]models.ChampionshipType, error) {
	types, err := s.typeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all championship types: %w", err)
	}
	if types == nil {
		return []models.ChampionshipType{}, nil
	}
	return types, nil
}

func (s *championshipTypeService) UpdateType(ctx context.Context, id int, input ChampionshipTypeInput) (*models.ChampionshipType, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTypeNameRequired
	}

	typeToUpdate := &models.ChampionshipType{
		ID:          id,
		Name:        name,
		Description: input.Description,
	}

	err := s.typeRepo.Update(ctx, typeToUpdate)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipTypeNotFound):
			return nil, ErrTypeNotFound
		case errors.Is(err, repositories.ErrChampionshipTypeNameConflict):
			return nil, ErrTypeNameConflict
		default:
			return nil, fmt.Errorf("%w (id: %d): %w", ErrTypeUpdateFailed, id, err)
		}
	}
	return typeToUpdate, nil
}

func (s *championshipTypeService) DeleteType(ctx context.Context, id int) error {
	err := s.typeRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipTypeNotFound):
			return ErrTypeNotFound
		case errors.Is(err, repositories.ErrChampionshipTypeInUse):
			return ErrTypeInUse
		default:
			return fmt.Errorf("%w (id: %d): %w", ErrTypeDeleteFailed, id, err)
		}
	}
	return nil
}

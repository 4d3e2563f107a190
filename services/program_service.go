package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var ErrProgramNameRequired = errors.New("program name is required")

// ProgramService administra el catálogo de carreras universitarias.
type ProgramService interface {
	CreateProgram(ctx context.Context, name string) (*models.Program, error)
	GetProgramByID(ctx context.Context, id int) (*models.Program, error)
	GetAllPrograms(ctx context.Context) ([]models.Program, error)
	UpdateProgram(ctx context.Context, id int, name string) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int) error
}

type programService struct {
	programRepo repositories.ProgramRepository
}

func NewProgramService(programRepo repositories.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func (s *programService) CreateProgram(ctx context.Context, name string) (*models.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProgramNameRequired
	}

	program := &models.Program{Name: name}
	if err := s.programRepo.Create(ctx, program); err != nil {
		if errors.Is(err, repositories.ErrProgramNameConflict) {
			return nil, ErrProgramNameConflict
		}
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return program, nil
}

func (s *programService) GetProgramByID(ctx context.Context, id int) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program by id %d: %w", id, err)
	}
	return program, nil
}

func (s *programService) GetAllPrograms(ctx context.Context) ([]models.Program, error) {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all programs: %w", err)
	}
	if programs == nil {
		return []models.Program{}, nil
	}
	return programs, nil
}

func (s *programService) UpdateProgram(ctx context.Context, id int, name string) (*models.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProgramNameRequired
	}

	program := &models.Program{ID: id, Name: name}
	if err := s.programRepo.Update(ctx, program); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProgramNotFound):
			return nil, ErrProgramNotFound
		case errors.Is(err, repositories.ErrProgramNameConflict):
			return nil, ErrProgramNameConflict
		default:
			return nil, fmt.Errorf("failed to update program %d: %w", id, err)
		}
	}
	return program, nil
}

func (s *programService) DeleteProgram(ctx context.Context, id int) error {
	if err := s.programRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return ErrProgramNotFound
		}
		return fmt.Errorf("failed to delete program %d: %w", id, err)
	}
	return nil
}

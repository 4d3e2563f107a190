package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var (
	ErrPlayerTooYoung      = fmt.Errorf("player must be at least %d years old", models.MinPlayerAge)
	ErrInvalidJerseyNumber = errors.New("jersey number must be greater than zero")
)

type PlayerService interface {
	// AddPlayer inscribe un jugador en un equipo ya aprobado, respetando el
	// límite de plantel del campeonato.
	AddPlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID int) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	RemovePlayer(ctx context.Context, id int) error
}

type PlayerInput struct {
	TeamID       int
	UserID       int
	JerseyNumber int
	Age          int
}

type playerService struct {
	playerRepo       repositories.PlayerRepository
	teamRepo         repositories.TeamRepository
	championshipRepo repositories.ChampionshipRepository
	userRepo         repositories.UserRepository
	suspensionRepo   repositories.SuspensionRepository
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	championshipRepo repositories.ChampionshipRepository,
	userRepo repositories.UserRepository,
	suspensionRepo repositories.SuspensionRepository,
) PlayerService {
	return &playerService{
		playerRepo:       playerRepo,
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
		userRepo:         userRepo,
		suspensionRepo:   suspensionRepo,
	}
}

func (s *playerService) AddPlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	if err := s.validateInput(ctx, input, nil); err != nil {
		return nil, err
	}

	player := &models.Player{
		TeamID:       input.TeamID,
		UserID:       input.UserID,
		JerseyNumber: input.JerseyNumber,
		Age:          input.Age,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerJerseyConflict):
			return nil, ErrJerseyNumberConflict
		case errors.Is(err, repositories.ErrPlayerUserConflict):
			return nil, ErrPlayerUserConflict
		default:
			return nil, fmt.Errorf("failed to add player: %w", err)
		}
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	suspensions, err := s.suspensionRepo.ListByPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load player %d suspensions: %w", id, err)
	}
	player.Suspensions = suspensions
	return player, nil
}

func (s *playerService) ListPlayersByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	existing, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	if err := s.validateInput(ctx, input, &id); err != nil {
		return nil, err
	}

	existing.TeamID = input.TeamID
	existing.UserID = input.UserID
	existing.JerseyNumber = input.JerseyNumber
	existing.Age = input.Age

	if err := s.playerRepo.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerJerseyConflict):
			return nil, ErrJerseyNumberConflict
		case errors.Is(err, repositories.ErrPlayerUserConflict):
			return nil, ErrPlayerUserConflict
		default:
			return nil, fmt.Errorf("failed to update player %d: %w", id, err)
		}
	}
	return existing, nil
}

func (s *playerService) RemovePlayer(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to remove player %d: %w", id, err)
	}
	return nil
}

// validateInput aplica las reglas de inscripción: equipo aprobado, cupo del
// plantel, edad mínima y rol PLAYER del usuario. excludeID permite editar un
// jugador sin contarse a sí mismo contra el cupo.
func (s *playerService) validateInput(ctx context.Context, input PlayerInput, excludeID *int) error {
	if input.JerseyNumber <= 0 {
		return ErrInvalidJerseyNumber
	}
	if input.Age < models.MinPlayerAge {
		return ErrPlayerTooYoung
	}

	team, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to check team %d: %w", input.TeamID, err)
	}
	if !team.Approved {
		return ErrTeamNotApproved
	}

	championship, err := s.championshipRepo.GetByID(ctx, team.ChampionshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrChampionshipNotFound
		}
		return fmt.Errorf("failed to check championship %d: %w", team.ChampionshipID, err)
	}

	count, err := s.playerRepo.CountByTeam(ctx, input.TeamID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to count players for team %d: %w", input.TeamID, err)
	}
	if count >= championship.MaxRosterSize {
		return ErrRosterFull
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to check user %d: %w", input.UserID, err)
	}
	if user.Role != models.RolePlayer {
		return ErrPlayerRoleRequired
	}
	return nil
}

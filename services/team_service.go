package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/storage"
)

var (
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrInvalidLogoContentType = errors.New("invalid logo content type, allowed: image/jpeg, image/png, image/webp")
	ErrTeamLogoUploadFailed   = errors.New("failed to upload team logo")
)

type TeamService interface {
	// RegisterTeam inscribe un equipo en un campeonato con inscripción abierta.
	// El equipo nace sin aprobar; se aprueba cuando el ADMIN aprueba su pago.
	RegisterTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeamsByChampionship(ctx context.Context, championshipID int) ([]models.Team, error)
	ListTeamsByDelegate(ctx context.Context, delegateID int) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	UploadLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}

type TeamInput struct {
	ChampionshipID int
	Name           string
	Program        *string
	DelegateID     *int
}

type teamService struct {
	teamRepo         repositories.TeamRepository
	championshipRepo repositories.ChampionshipRepository
	userRepo         repositories.UserRepository
	uploader         storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	championshipRepo repositories.ChampionshipRepository,
	userRepo repositories.UserRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
		userRepo:         userRepo,
		uploader:         uploader,
	}
}

func (s *teamService) RegisterTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	championship, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}
	if championship.State != models.ChampionshipOpen {
		return nil, ErrRegistrationNotOpen
	}

	if err := s.checkDelegate(ctx, input.DelegateID); err != nil {
		return nil, err
	}

	team := &models.Team{
		ChampionshipID: input.ChampionshipID,
		Name:           name,
		Program:        input.Program,
		DelegateID:     input.DelegateID,
		Approved:       false,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to register team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %d: %w", id, err)
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) ListTeamsByChampionship(ctx context.Context, championshipID int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for championship %d: %w", championshipID, err)
	}
	for i := range teams {
		s.populateLogoURL(&teams[i])
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) ListTeamsByDelegate(ctx context.Context, delegateID int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByDelegate(ctx, delegateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for delegate %d: %w", delegateID, err)
	}
	for i := range teams {
		s.populateLogoURL(&teams[i])
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDelegate(ctx, input.DelegateID); err != nil {
		return nil, err
	}

	// La actualización no mueve el equipo de campeonato ni toca approved.
	team.Name = name
	team.Program = input.Program
	team.DelegateID = input.DelegateID

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		default:
			return nil, fmt.Errorf("failed to update team %d: %w", id, err)
		}
	}
	return team, nil
}

func (s *teamService) UploadLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Team, error) {
	ext, ok := imageExtensionForContentType(contentType)
	if !ok {
		return nil, ErrInvalidLogoContentType
	}

	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldKey := team.LogoKey
	newKey := fmt.Sprintf("teams/%d/logo.%s", team.ID, ext)

	result, err := s.uploader.Upload(ctx, newKey, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamLogoUploadFailed, err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, team.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save team logo key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	team.LogoKey = &result.Key
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}

	if team.LogoKey != nil {
		_ = s.uploader.Delete(ctx, *team.LogoKey)
	}
	return nil
}

func (s *teamService) checkDelegate(ctx context.Context, delegateID *int) error {
	if delegateID == nil {
		return nil
	}
	delegate, err := s.userRepo.GetByID(ctx, *delegateID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to check delegate %d: %w", *delegateID, err)
	}
	if !delegate.Role.CanRegisterTeam() {
		return ErrDelegateRoleRequired
	}
	return nil
}

func (s *teamService) populateLogoURL(team *models.Team) {
	if team.LogoKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*team.LogoKey); url != "" {
		team.LogoURL = &url
	}
}

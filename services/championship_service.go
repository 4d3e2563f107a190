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
	ErrInvalidRulesContentType   = errors.New("invalid rules content type, allowed: application/pdf")
	ErrChampionshipCreateFailed  = errors.New("failed to create championship")
	ErrChampionshipUpdateFailed  = errors.New("failed to update championship")
	ErrChampionshipRulesUpload   = errors.New("failed to upload championship rules")
	ErrChampionshipHasTeams      = errors.New("championship with registered teams cannot be deleted")
	ErrChampionshipNotModifiable = errors.New("finished championship cannot be modified")
)

type ChampionshipService interface {
	CreateChampionship(ctx context.Context, input ChampionshipInput) (*models.Championship, error)
	GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error)
	ListChampionships(ctx context.Context, state *models.ChampionshipState) ([]models.Championship, error)
	UpdateChampionship(ctx context.Context, id int, input ChampionshipInput) (*models.Championship, error)
	// ChangeState avanza el ciclo de vida OPEN → CLOSED → IN_PROGRESS → FINISHED.
	ChangeState(ctx context.Context, id int, next models.ChampionshipState) (*models.Championship, error)
	UploadRules(ctx context.Context, id int, file io.Reader, contentType string) (*models.Championship, error)
	DeleteChampionship(ctx context.Context, id int) error
}

type ChampionshipInput struct {
	Name          string
	Description   *string
	SportID       int
	TypeID        int
	DelegateID    *int
	StartDate     string // formato YYYY-MM-DD
	EndDate       string
	MatchWeekdays []models.Weekday
	MaxRosterSize int
	EntryFee      float64
}

type championshipService struct {
	championshipRepo repositories.ChampionshipRepository
	sportRepo        repositories.SportRepository
	typeRepo         repositories.ChampionshipTypeRepository
	userRepo         repositories.UserRepository
	teamRepo         repositories.TeamRepository
	uploader         storage.FileUploader
}

func NewChampionshipService(
	championshipRepo repositories.ChampionshipRepository,
	sportRepo repositories.SportRepository,
	typeRepo repositories.ChampionshipTypeRepository,
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	uploader storage.FileUploader,
) ChampionshipService {
	return &championshipService{
		championshipRepo: championshipRepo,
		sportRepo:        sportRepo,
		typeRepo:         typeRepo,
		userRepo:         userRepo,
		teamRepo:         teamRepo,
		uploader:         uploader,
	}
}

func (s *championshipService) CreateChampionship(ctx context.Context, input ChampionshipInput) (*models.Championship, error) {
	championship, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}
	championship.State = models.ChampionshipOpen

	if err := s.championshipRepo.Create(ctx, championship); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNameConflict) {
			return nil, ErrChampionshipNameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrChampionshipCreateFailed, err)
	}
	return championship, nil
}

func (s *championshipService) GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error) {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship by id %d: %w", id, err)
	}
	s.populateRulesURL(championship)
	return championship, nil
}

func (s *championshipService) ListChampionships(ctx context.Context, state *models.ChampionshipState) ([]models.Championship, error) {
	if state != nil && !state.Valid() {
		return nil, ErrInvalidStateTransition
	}

	championships, err := s.championshipRepo.List(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}
	for i := range championships {
		s.populateRulesURL(&championships[i])
	}
	if championships == nil {
		return []models.Championship{}, nil
	}
	return championships, nil
}

func (s *championshipService) UpdateChampionship(ctx context.Context, id int, input ChampionshipInput) (*models.Championship, error) {
	existing, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.State == models.ChampionshipFinished {
		return nil, ErrChampionshipNotModifiable
	}

	championship, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}
	championship.ID = id
	championship.State = existing.State
	championship.RulesKey = existing.RulesKey

	if err := s.championshipRepo.Update(ctx, championship); err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipNotFound):
			return nil, ErrChampionshipNotFound
		case errors.Is(err, repositories.ErrChampionshipNameConflict):
			return nil, ErrChampionshipNameConflict
		default:
			return nil, fmt.Errorf("%w (id: %d): %w", ErrChampionshipUpdateFailed, id, err)
		}
	}
	s.populateRulesURL(championship)
	return championship, nil
}

func (s *championshipService) ChangeState(ctx context.Context, id int, next models.ChampionshipState) (*models.Championship, error) {
	if !next.Valid() {
		return nil, ErrInvalidStateTransition
	}

	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !championship.State.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, championship.State, next)
	}

	if err := s.championshipRepo.UpdateState(ctx, id, next); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to change championship %d state: %w", id, err)
	}

	championship.State = next
	return championship, nil
}

// UploadRules guarda el PDF de reglamento del campeonato en el object storage.
func (s *championshipService) UploadRules(ctx context.Context, id int, file io.Reader, contentType string) (*models.Championship, error) {
	if contentType != "application/pdf" {
		return nil, ErrInvalidRulesContentType
	}

	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldKey := championship.RulesKey
	newKey := fmt.Sprintf("championships/%d/rules.pdf", championship.ID)

	result, err := s.uploader.Upload(ctx, newKey, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChampionshipRulesUpload, err)
	}

	if err := s.championshipRepo.UpdateRulesKey(ctx, championship.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save championship rules key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	championship.RulesKey = &result.Key
	s.populateRulesURL(championship)
	return championship, nil
}

func (s *championshipService) DeleteChampionship(ctx context.Context, id int) error {
	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return err
	}

	teams, err := s.teamRepo.ListByChampionship(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check championship teams: %w", err)
	}
	if len(teams) > 0 {
		return ErrChampionshipHasTeams
	}

	if err := s.championshipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrChampionshipNotFound
		}
		return fmt.Errorf("failed to delete championship %d: %w", id, err)
	}

	if championship.RulesKey != nil {
		_ = s.uploader.Delete(ctx, *championship.RulesKey)
	}
	return nil
}

// validateInput revisa todo el formulario y junta las violaciones en un solo
// ValidationError en lugar de cortar en la primera.
func (s *championshipService) validateInput(ctx context.Context, input ChampionshipInput) (*models.Championship, error) {
	ve := &ValidationError{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		ve.add("name is required")
	}

	if _, err := s.sportRepo.GetByID(ctx, input.SportID); err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			ve.add(fmt.Sprintf("sport %d does not exist", input.SportID))
		} else {
			return nil, fmt.Errorf("failed to check sport %d: %w", input.SportID, err)
		}
	}

	if _, err := s.typeRepo.GetByID(ctx, input.TypeID); err != nil {
		if errors.Is(err, repositories.ErrChampionshipTypeNotFound) {
			ve.add(fmt.Sprintf("championship type %d does not exist", input.TypeID))
		} else {
			return nil, fmt.Errorf("failed to check championship type %d: %w", input.TypeID, err)
		}
	}

	if input.DelegateID != nil {
		delegate, err := s.userRepo.GetByID(ctx, *input.DelegateID)
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			ve.add(fmt.Sprintf("delegate %d does not exist", *input.DelegateID))
		case err != nil:
			return nil, fmt.Errorf("failed to check delegate %d: %w", *input.DelegateID, err)
		case delegate.Role != models.RoleDelegate:
			ve.add("assigned delegate must have the DELEGATE role")
		}
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		ve.add("start_date must have format YYYY-MM-DD")
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		ve.add("end_date must have format YYYY-MM-DD")
	}
	if !startDate.IsZero() && !endDate.IsZero() && endDate.Before(startDate) {
		ve.add("end_date must not be before start_date")
	}

	if len(input.MatchWeekdays) == 0 {
		ve.add("at least one match weekday is required")
	}
	seen := map[models.Weekday]bool{}
	for _, day := range input.MatchWeekdays {
		if !day.Valid() {
			ve.add(fmt.Sprintf("invalid weekday %q", day))
			continue
		}
		if seen[day] {
			ve.add(fmt.Sprintf("weekday %s repeated", day))
		}
		seen[day] = true
	}

	if input.MaxRosterSize <= 0 {
		ve.add("max_roster_size must be greater than zero")
	}
	if input.EntryFee < 0 {
		ve.add("entry_fee must not be negative")
	}

	if ve.hasErrors() {
		return nil, ve
	}

	return &models.Championship{
		Name:          name,
		Description:   input.Description,
		SportID:       input.SportID,
		TypeID:        input.TypeID,
		DelegateID:    input.DelegateID,
		StartDate:     startDate,
		EndDate:       endDate,
		MatchWeekdays: input.MatchWeekdays,
		MaxRosterSize: input.MaxRosterSize,
		EntryFee:      input.EntryFee,
	}, nil
}

func (s *championshipService) populateRulesURL(c *models.Championship) {
	if c.RulesKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*c.RulesKey); url != "" {
		c.RulesURL = &url
	}
}

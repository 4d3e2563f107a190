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
	ErrInvalidStartTime = errors.New("start_time must have format HH:MM")
	ErrNegativeScore    = errors.New("scores must not be negative")
)

// MatchEventBroadcaster empuja eventos de partido a los clientes suscritos al
// campeonato. El hub de websockets lo implementa; en tests se usa un fake.
type MatchEventBroadcaster interface {
	BroadcastMatchUpdate(championshipID int, payload interface{})
}

type MatchService interface {
	// ScheduleMatch valida el partido contra el calendario del campeonato y los
	// choques de equipo y cancha antes de persistirlo. Todas las violaciones se
	// reportan juntas en un ValidationError.
	ScheduleMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatchesByChampionship(ctx context.Context, championshipID int) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	// RecordResult cierra el partido, actualiza las estadísticas de los dos
	// equipos y notifica a los clientes en vivo.
	RecordResult(ctx context.Context, id int, homeScore, awayScore int) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type MatchInput struct {
	ChampionshipID int
	HomeTeamID     int
	AwayTeamID     int
	Date           string // formato YYYY-MM-DD
	StartTime      string // formato HH:MM
	Venue          string
	RefereeID      *int
}

type matchService struct {
	matchRepo        repositories.MatchRepository
	championshipRepo repositories.ChampionshipRepository
	teamRepo         repositories.TeamRepository
	refereeRepo      repositories.RefereeRepository
	statisticService StatisticService
	broadcaster      MatchEventBroadcaster
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	championshipRepo repositories.ChampionshipRepository,
	teamRepo repositories.TeamRepository,
	refereeRepo repositories.RefereeRepository,
	statisticService StatisticService,
	broadcaster MatchEventBroadcaster,
) MatchService {
	return &matchService{
		matchRepo:        matchRepo,
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		refereeRepo:      refereeRepo,
		statisticService: statisticService,
		broadcaster:      broadcaster,
	}
}

func (s *matchService) ScheduleMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	match, err := s.validateMatch(ctx, input, nil)
	if err != nil {
		return nil, err
	}
	match.State = models.MatchScheduled

	if err := s.matchRepo.Create(ctx, match); err != nil {
		// La constraint única de la BD respalda al validador ante dos
		// registros concurrentes sobre el mismo horario.
		if errors.Is(err, repositories.ErrMatchSlotConflict) {
			return nil, ErrMatchSlotConflict
		}
		return nil, fmt.Errorf("failed to schedule match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListMatchesByChampionship(ctx context.Context, championshipID int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for championship %d: %w", championshipID, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	existing, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.State == models.MatchFinished {
		return nil, ErrMatchAlreadyFinished
	}

	match, err := s.validateMatch(ctx, input, &id)
	if err != nil {
		return nil, err
	}
	match.ID = id
	match.State = existing.State

	if err := s.matchRepo.Update(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchSlotConflict):
			return nil, ErrMatchSlotConflict
		default:
			return nil, fmt.Errorf("failed to update match %d: %w", id, err)
		}
	}
	return match, nil
}

func (s *matchService) RecordResult(ctx context.Context, id int, homeScore, awayScore int) (*models.Match, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, ErrNegativeScore
	}

	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.State == models.MatchFinished {
		return nil, ErrMatchAlreadyFinished
	}

	if err := s.matchRepo.UpdateResult(ctx, id, homeScore, awayScore, models.MatchFinished); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to record match %d result: %w", id, err)
	}

	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.State = models.MatchFinished

	if err := s.statisticService.ApplyMatchResult(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update standings for match %d: %w", id, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMatchUpdate(match.ChampionshipID, match)
	}
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return err
	}
	if match.State == models.MatchFinished {
		return ErrMatchAlreadyFinished
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}

// validateMatch corre las cinco reglas de programación y junta todas las
// violaciones; ninguna regla corta la revisión de las demás. excludeID deja
// fuera de los choques al partido que se está editando.
func (s *matchService) validateMatch(ctx context.Context, input MatchInput, excludeID *int) (*models.Match, error) {
	ve := &ValidationError{}

	championship, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		ve.add("date must have format YYYY-MM-DD")
	}
	if !validStartTime(input.StartTime) {
		ve.add("start_time must have format HH:MM")
	}

	venue := strings.TrimSpace(input.Venue)
	if venue == "" {
		ve.add("venue is required")
	}

	// Regla 1: la fecha cae dentro de la ventana del campeonato.
	if !date.IsZero() && !championship.ContainsDate(date) {
		ve.add(fmt.Sprintf("date %s is outside the championship window (%s to %s)",
			date.Format(dateLayout),
			championship.StartDate.Format(dateLayout),
			championship.EndDate.Format(dateLayout)))
	}

	// Regla 2: los equipos local y visitante son distintos.
	if input.HomeTeamID == input.AwayTeamID {
		ve.add("home and away teams must be different")
	}

	// Regla 3: el día de la semana está habilitado en el campeonato.
	if !date.IsZero() {
		if day := models.WeekdayOf(date); !championship.AllowsWeekday(day) {
			ve.add(fmt.Sprintf("championship does not allow matches on %s", day))
		}
	}

	for _, teamID := range []int{input.HomeTeamID, input.AwayTeamID} {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			ve.add(fmt.Sprintf("team %d does not exist", teamID))
			continue
		case err != nil:
			return nil, fmt.Errorf("failed to check team %d: %w", teamID, err)
		}
		if team.ChampionshipID != input.ChampionshipID {
			ve.add(fmt.Sprintf("team %d does not belong to the championship", teamID))
		}
		if !team.Approved {
			ve.add(fmt.Sprintf("team %d is not approved", teamID))
		}
	}

	// Reglas 4 y 5: choques de equipo y de cancha en el mismo horario.
	if !date.IsZero() && validStartTime(input.StartTime) {
		slotMatches, err := s.matchRepo.ListBySlot(ctx, input.ChampionshipID, date, input.StartTime, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot conflicts: %w", err)
		}
		for i := range slotMatches {
			other := &slotMatches[i]
			if other.InvolvesTeam(input.HomeTeamID) || other.InvolvesTeam(input.AwayTeamID) {
				ve.add(fmt.Sprintf("a team already plays match %d at the same date and time", other.ID))
			}
			if venue != "" && strings.EqualFold(other.Venue, venue) {
				ve.add(fmt.Sprintf("venue %s is already taken at the same date and time", venue))
			}
		}
	}

	if input.RefereeID != nil {
		referee, err := s.refereeRepo.GetByID(ctx, *input.RefereeID)
		switch {
		case errors.Is(err, repositories.ErrRefereeNotFound):
			ve.add(fmt.Sprintf("referee %d does not exist", *input.RefereeID))
		case err != nil:
			return nil, fmt.Errorf("failed to check referee %d: %w", *input.RefereeID, err)
		case !referee.Active:
			ve.add(fmt.Sprintf("referee %d is not active", *input.RefereeID))
		}
	}

	if ve.hasErrors() {
		return nil, ve
	}

	return &models.Match{
		ChampionshipID: input.ChampionshipID,
		HomeTeamID:     input.HomeTeamID,
		AwayTeamID:     input.AwayTeamID,
		Date:           date,
		StartTime:      input.StartTime,
		Venue:          venue,
		RefereeID:      input.RefereeID,
	}, nil
}

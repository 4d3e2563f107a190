package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
)

var (
	ErrStreamNameRequired = errors.New("stream name is required")
	ErrStreamURLInvalid   = errors.New("stream url must be a valid http or https url")
	ErrStreamMatchMismatch = errors.New("stream match must belong to the same championship")
)

// StreamService administra los enlaces a transmisiones externas de partidos.
type StreamService interface {
	CreateStream(ctx context.Context, input StreamInput) (*models.Stream, error)
	GetStreamByID(ctx context.Context, id int) (*models.Stream, error)
	ListStreams(ctx context.Context, onlyActive bool) ([]models.Stream, error)
	ListStreamsByChampionship(ctx context.Context, championshipID int) ([]models.Stream, error)
	UpdateStream(ctx context.Context, id int, input StreamInput) (*models.Stream, error)
	DeleteStream(ctx context.Context, id int) error
}

type StreamInput struct {
	ChampionshipID int
	MatchID        *int
	Name           string
	URL            string
	Active         bool
}

type streamService struct {
	streamRepo       repositories.StreamRepository
	championshipRepo repositories.ChampionshipRepository
	matchRepo        repositories.MatchRepository
}

func NewStreamService(
	streamRepo repositories.StreamRepository,
	championshipRepo repositories.ChampionshipRepository,
	matchRepo repositories.MatchRepository,
) StreamService {
	return &streamService{
		streamRepo:       streamRepo,
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
	}
}

func (s *streamService) CreateStream(ctx context.Context, input StreamInput) (*models.Stream, error) {
	stream, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.streamRepo.Create(ctx, stream); err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}
	return stream, nil
}

func (s *streamService) GetStreamByID(ctx context.Context, id int) (*models.Stream, error) {
	stream, err := s.streamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStreamNotFound) {
			return nil, ErrStreamNotFound
		}
		return nil, fmt.Errorf("failed to get stream by id %d: %w", id, err)
	}
	return stream, nil
}

func (s *streamService) ListStreams(ctx context.Context, onlyActive bool) ([]models.Stream, error) {
	streams, err := s.streamRepo.GetAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list streams: %w", err)
	}
	if streams == nil {
		return []models.Stream{}, nil
	}
	return streams, nil
}

func (s *streamService) ListStreamsByChampionship(ctx context.Context, championshipID int) ([]models.Stream, error) {
	streams, err := s.streamRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list streams for championship %d: %w", championshipID, err)
	}
	if streams == nil {
		return []models.Stream{}, nil
	}
	return streams, nil
}

func (s *streamService) UpdateStream(ctx context.Context, id int, input StreamInput) (*models.Stream, error) {
	if _, err := s.GetStreamByID(ctx, id); err != nil {
		return nil, err
	}

	stream, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}
	stream.ID = id

	if err := s.streamRepo.Update(ctx, stream); err != nil {
		if errors.Is(err, repositories.ErrStreamNotFound) {
			return nil, ErrStreamNotFound
		}
		return nil, fmt.Errorf("failed to update stream %d: %w", id, err)
	}
	return stream, nil
}

func (s *streamService) DeleteStream(ctx context.Context, id int) error {
	if err := s.streamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStreamNotFound) {
			return ErrStreamNotFound
		}
		return fmt.Errorf("failed to delete stream %d: %w", id, err)
	}
	return nil
}

func (s *streamService) validateInput(ctx context.Context, input StreamInput) (*models.Stream, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrStreamNameRequired
	}

	parsed, err := url.Parse(strings.TrimSpace(input.URL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrStreamURLInvalid
	}

	if _, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}

	if input.MatchID != nil {
		match, err := s.matchRepo.GetByID(ctx, *input.MatchID)
		if err != nil {
			if errors.Is(err, repositories.ErrMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, fmt.Errorf("failed to check match %d: %w", *input.MatchID, err)
		}
		if match.ChampionshipID != input.ChampionshipID {
			return nil, ErrStreamMatchMismatch
		}
	}

	return &models.Stream{
		ChampionshipID: input.ChampionshipID,
		MatchID:        input.MatchID,
		Name:           name,
		URL:            parsed.String(),
		Active:         input.Active,
	}, nil
}

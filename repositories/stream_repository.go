package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uide-sports/campeonatos-api/models"
)

var ErrStreamNotFound = errors.New("stream not found")

type StreamRepository interface {
	Create(ctx context.Context, stream *models.Stream) error
	GetByID(ctx context.Context, id int) (*models.Stream, error)
	GetAll(ctx context.Context, onlyActive bool) ([]models.Stream, error)
	ListByChampionship(ctx context.Context, championshipID int) ([]models.Stream, error)
	Update(ctx context.Context, stream *models.Stream) error
	Delete(ctx context.Context, id int) error
}

type postgresStreamRepository struct {
	db *sql.DB
}

func NewPostgresStreamRepository(db *sql.DB) StreamRepository {
	return &postgresStreamRepository{db: db}
}

const streamColumns = `id, championship_id, match_id, name, url, active, created_at`

func scanStream(row interface{ Scan(...interface{}) error }, s *models.Stream) error {
	return row.Scan(&s.ID, &s.ChampionshipID, &s.MatchID, &s.Name, &s.URL, &s.Active, &s.CreatedAt)
}

func (r *postgresStreamRepository) Create(ctx context.Context, stream *models.Stream) error {
	query := `
		INSERT INTO streams (championship_id, match_id, name, url, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		stream.ChampionshipID,
		stream.MatchID,
		stream.Name,
		stream.URL,
		stream.Active,
	).Scan(&stream.ID, &stream.CreatedAt)
}

func (r *postgresStreamRepository) GetByID(ctx context.Context, id int) (*models.Stream, error) {
	query := `SELECT ` + streamColumns + ` FROM streams WHERE id = $1`

	var stream models.Stream
	err := scanStream(r.db.QueryRowContext(ctx, query, id), &stream)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStreamNotFound
		}
		return nil, err
	}
	return &stream, nil
}

func (r *postgresStreamRepository) GetAll(ctx context.Context, onlyActive bool) ([]models.Stream, error) {
	query := `SELECT ` + streamColumns + ` FROM streams`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *postgresStreamRepository) ListByChampionship(ctx context.Context, championshipID int) ([]models.Stream, error) {
	query := `SELECT ` + streamColumns + ` FROM streams WHERE championship_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, championshipID)
}

func (r *postgresStreamRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Stream, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	streams := make([]models.Stream, 0)
	for rows.Next() {
		var stream models.Stream
		if scanErr := scanStream(rows, &stream); scanErr != nil {
			return nil, scanErr
		}
		streams = append(streams, stream)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return streams, nil
}

func (r *postgresStreamRepository) Update(ctx context.Context, stream *models.Stream) error {
	query := `UPDATE streams SET match_id = $1, name = $2, url = $3, active = $4 WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		stream.MatchID,
		stream.Name,
		stream.URL,
		stream.Active,
		stream.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStreamNotFound)
}

func (r *postgresStreamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM streams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStreamNotFound)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uide-sports/campeonatos-api/models"
)

var ErrSuspensionNotFound = errors.New("suspension not found")

type SuspensionRepository interface {
	Create(ctx context.Context, suspension *models.Suspension) error
	GetByID(ctx context.Context, id int) (*models.Suspension, error)
	GetAll(ctx context.Context) ([]models.Suspension, error)
	ListByPlayer(ctx context.Context, playerID int) ([]models.Suspension, error)
	Delete(ctx context.Context, id int) error
	CountActiveOn(ctx context.Context, date time.Time) (int, error)
}

type postgresSuspensionRepository struct {
	db *sql.DB
}

func NewPostgresSuspensionRepository(db *sql.DB) SuspensionRepository {
	return &postgresSuspensionRepository{db: db}
}

const suspensionColumns = `id, player_id, start_date, end_date, reason, created_at`

func scanSuspension(row interface{ Scan(...interface{}) error }, s *models.Suspension) error {
	return row.Scan(&s.ID, &s.PlayerID, &s.StartDate, &s.EndDate, &s.Reason, &s.CreatedAt)
}

func (r *postgresSuspensionRepository) Create(ctx context.Context, suspension *models.Suspension) error {
	query := `
		INSERT INTO suspensions (player_id, start_date, end_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		suspension.PlayerID,
		suspension.StartDate,
		suspension.EndDate,
		suspension.Reason,
	).Scan(&suspension.ID, &suspension.CreatedAt)
}

func (r *postgresSuspensionRepository) GetByID(ctx context.Context, id int) (*models.Suspension, error) {
	query := `SELECT ` + suspensionColumns + ` FROM suspensions WHERE id = $1`

	var suspension models.Suspension
	err := scanSuspension(r.db.QueryRowContext(ctx, query, id), &suspension)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSuspensionNotFound
		}
		return nil, err
	}
	return &suspension, nil
}

func (r *postgresSuspensionRepository) GetAll(ctx context.Context) ([]models.Suspension, error) {
	query := `SELECT ` + suspensionColumns + ` FROM suspensions ORDER BY start_date DESC`
	return r.list(ctx, query)
}

func (r *postgresSuspensionRepository) ListByPlayer(ctx context.Context, playerID int) ([]models.Suspension, error) {
	query := `SELECT ` + suspensionColumns + ` FROM suspensions WHERE player_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, playerID)
}

func (r *postgresSuspensionRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Suspension, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suspensions := make([]models.Suspension, 0)
	for rows.Next() {
		var suspension models.Suspension
		if scanErr := scanSuspension(rows, &suspension); scanErr != nil {
			return nil, scanErr
		}
		suspensions = append(suspensions, suspension)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return suspensions, nil
}

func (r *postgresSuspensionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM suspensions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSuspensionNotFound)
}

func (r *postgresSuspensionRepository) CountActiveOn(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM suspensions WHERE start_date <= $1 AND end_date >= $1`, date).Scan(&count)
	return count, err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrChampionshipTypeNotFound     = errors.New("championship type not found")
	ErrChampionshipTypeNameConflict = errors.New("championship type name conflict")
	ErrChampionshipTypeInUse        = errors.New("championship type cannot be deleted as it is in use")
)

type ChampionshipTypeRepository interface {
	Create(ctx context.Context, t *models.ChampionshipType) error
	GetByID(ctx context.Context, id int) (*models.ChampionshipType, error)
	GetAll(ctx context.Context) ([]models.ChampionshipType, error)
	Update(ctx context.Context, t *models.ChampionshipType) error
	Delete(ctx context.Context, id int) error
}

type postgresChampionshipTypeRepository struct {
	db *sql.DB
}

func NewPostgresChampionshipTypeRepository(db *sql.DB) ChampionshipTypeRepository {
	return &postgresChampionshipTypeRepository{db: db}
}

func (r *postgresChampionshipTypeRepository) Create(ctx context.Context, t *models.ChampionshipType) error {
	query := `INSERT INTO championship_types (name, description) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, t.Name, t.Description).Scan(&t.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrChampionshipTypeNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresChampionshipTypeRepository) GetByID(ctx context.Context, id int) (*models.ChampionshipType, error) {
	query := `SELECT id, name, description FROM championship_types WHERE id = $1`

	var t models.ChampionshipType
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresChampionshipTypeRepository) GetAll(ctx context.Context) ([]models.ChampionshipType, error) {
	query := `SELECT id, name, description FROM championship_types ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]models.ChampionshipType, 0)
	for rows.Next() {
		var t models.ChampionshipType
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.Description); scanErr != nil {
			return nil, scanErr
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *postgresChampionshipTypeRepository) Update(ctx context.Context, t *models.ChampionshipType) error {
	query := `UPDATE championship_types SET name = $1, description = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrChampionshipTypeNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrChampionshipTypeNotFound)
}

func (r *postgresChampionshipTypeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM championship_types WHERE id = $1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrChampionshipTypeInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrChampionshipTypeNotFound)
}

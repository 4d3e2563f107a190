package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrProgramNotFound     = errors.New("program not found")
	ErrProgramNameConflict = errors.New("program name conflict")
)

type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int) (*models.Program, error)
	GetAll(ctx context.Context) ([]models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int) error
}

type postgresProgramRepository struct {
	db *sql.DB
}

func NewPostgresProgramRepository(db *sql.DB) ProgramRepository {
	return &postgresProgramRepository{db: db}
}

func (r *postgresProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `INSERT INTO programs (name, description) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, program.Name, program.Description).Scan(&program.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrProgramNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresProgramRepository) GetByID(ctx context.Context, id int) (*models.Program, error) {
	query := `SELECT id, name, description FROM programs WHERE id = $1`

	var program models.Program
	err := r.db.QueryRowContext(ctx, query, id).Scan(&program.ID, &program.Name, &program.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *postgresProgramRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	query := `SELECT id, name, description FROM programs ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		var program models.Program
		if scanErr := rows.Scan(&program.ID, &program.Name, &program.Description); scanErr != nil {
			return nil, scanErr
		}
		programs = append(programs, program)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *postgresProgramRepository) Update(ctx context.Context, program *models.Program) error {
	query := `UPDATE programs SET name = $1, description = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, program.Name, program.Description, program.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrProgramNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrProgramNotFound)
}

func (r *postgresProgramRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrProgramNotFound)
}

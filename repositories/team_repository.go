package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict within championship")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByChampionship(ctx context.Context, championshipID int) ([]models.Team, error)
	ListByDelegate(ctx context.Context, delegateID int) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
	// SetApproved corre sobre un SQLExecutor para poder participar en la
	// transacción de aprobación de pago.
	SetApproved(ctx context.Context, exec SQLExecutor, id int, approved bool) error
	Delete(ctx context.Context, id int) error
	CountAll(ctx context.Context) (int, error)
	CountPendingApproval(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, championship_id, name, program, approved, delegate_id, logo_key, created_at`

func scanTeam(row interface{ Scan(...interface{}) error }, t *models.Team) error {
	return row.Scan(
		&t.ID,
		&t.ChampionshipID,
		&t.Name,
		&t.Program,
		&t.Approved,
		&t.DelegateID,
		&t.LogoKey,
		&t.CreatedAt,
	)
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (championship_id, name, program, delegate_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, approved, created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.ChampionshipID,
		team.Name,
		team.Program,
		team.DelegateID,
	).Scan(&team.ID, &team.Approved, &team.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_championship_id_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	var team models.Team
	err := scanTeam(r.db.QueryRowContext(ctx, query, id), &team)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *postgresTeamRepository) ListByChampionship(ctx context.Context, championshipID int) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE championship_id = $1 ORDER BY name ASC`
	return r.list(ctx, query, championshipID)
}

func (r *postgresTeamRepository) ListByDelegate(ctx context.Context, delegateID int) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE delegate_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, delegateID)
}

func (r *postgresTeamRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := scanTeam(rows, &team); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = $1, program = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, team.Name, team.Program, team.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "teams_championship_id_name_key" {
				return ErrTeamNameConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET logo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) SetApproved(ctx context.Context, exec SQLExecutor, id int, approved bool) error {
	result, err := exec.ExecContext(ctx, `UPDATE teams SET approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	// jugadores, pagos y partidos del equipo caen en cascada
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

func (r *postgresTeamRepository) CountPendingApproval(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE approved = FALSE`).Scan(&count)
	return count, err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrChampionshipNotFound     = errors.New("championship not found")
	ErrChampionshipNameConflict = errors.New("championship name conflict")
)

type ChampionshipRepository interface {
	Create(ctx context.Context, c *models.Championship) error
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	List(ctx context.Context, state *models.ChampionshipState) ([]models.Championship, error)
	Update(ctx context.Context, c *models.Championship) error
	UpdateState(ctx context.Context, id int, state models.ChampionshipState) error
	UpdateRulesKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	CountAll(ctx context.Context) (int, error)
	CountByState(ctx context.Context, state models.ChampionshipState) (int, error)
}

type postgresChampionshipRepository struct {
	db *sql.DB
}

func NewPostgresChampionshipRepository(db *sql.DB) ChampionshipRepository {
	return &postgresChampionshipRepository{db: db}
}

const championshipColumns = `id, name, description, sport_id, type_id, delegate_id, start_date, end_date,
	state, match_weekdays, max_roster_size, entry_fee, rules_key, created_at`

func scanChampionship(row interface{ Scan(...interface{}) error }, c *models.Championship) error {
	var weekdays pq.StringArray
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.SportID,
		&c.TypeID,
		&c.DelegateID,
		&c.StartDate,
		&c.EndDate,
		&c.State,
		&weekdays,
		&c.MaxRosterSize,
		&c.EntryFee,
		&c.RulesKey,
		&c.CreatedAt,
	)
	if err != nil {
		return err
	}
	c.MatchWeekdays = make([]models.Weekday, 0, len(weekdays))
	for _, d := range weekdays {
		c.MatchWeekdays = append(c.MatchWeekdays, models.Weekday(d))
	}
	return nil
}

func weekdayArray(days []models.Weekday) pq.StringArray {
	arr := make(pq.StringArray, 0, len(days))
	for _, d := range days {
		arr = append(arr, string(d))
	}
	return arr
}

func (r *postgresChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	query := `
		INSERT INTO championships
			(name, description, sport_id, type_id, delegate_id, start_date, end_date, state,
			 match_weekdays, max_roster_size, entry_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name,
		c.Description,
		c.SportID,
		c.TypeID,
		c.DelegateID,
		c.StartDate,
		c.EndDate,
		c.State,
		weekdayArray(c.MatchWeekdays),
		c.MaxRosterSize,
		c.EntryFee,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "championships_name_key" {
				return ErrChampionshipNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE id = $1`

	var c models.Championship
	err := scanChampionship(r.db.QueryRowContext(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresChampionshipRepository) List(ctx context.Context, state *models.ChampionshipState) ([]models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships`
	args := []interface{}{}
	if state != nil {
		query += ` WHERE state = $1`
		args = append(args, *state)
	}
	query += ` ORDER BY start_date ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	championships := make([]models.Championship, 0)
	for rows.Next() {
		var c models.Championship
		if scanErr := scanChampionship(rows, &c); scanErr != nil {
			return nil, scanErr
		}
		championships = append(championships, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return championships, nil
}

func (r *postgresChampionshipRepository) Update(ctx context.Context, c *models.Championship) error {
	query := `
		UPDATE championships
		SET name = $1, description = $2, sport_id = $3, type_id = $4, delegate_id = $5,
		    start_date = $6, end_date = $7, match_weekdays = $8, max_roster_size = $9, entry_fee = $10
		WHERE id = $11`

	result, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Description,
		c.SportID,
		c.TypeID,
		c.DelegateID,
		c.StartDate,
		c.EndDate,
		weekdayArray(c.MatchWeekdays),
		c.MaxRosterSize,
		c.EntryFee,
		c.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "championships_name_key" {
				return ErrChampionshipNameConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) UpdateState(ctx context.Context, id int, state models.ChampionshipState) error {
	result, err := r.db.ExecContext(ctx, `UPDATE championships SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) UpdateRulesKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE championships SET rules_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) Delete(ctx context.Context, id int) error {
	// equipos, partidos y estadísticas se eliminan en cascada (FK ON DELETE CASCADE)
	result, err := r.db.ExecContext(ctx, `DELETE FROM championships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM championships`).Scan(&count)
	return count, err
}

func (r *postgresChampionshipRepository) CountByState(ctx context.Context, state models.ChampionshipState) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM championships WHERE state = $1`, state).Scan(&count)
	return count, err
}

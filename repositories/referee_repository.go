package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uide-sports/campeonatos-api/models"
)

var ErrRefereeNotFound = errors.New("referee not found")

type RefereeRepository interface {
	Create(ctx context.Context, referee *models.Referee) error
	GetByID(ctx context.Context, id int) (*models.Referee, error)
	GetAll(ctx context.Context, onlyActive bool) ([]models.Referee, error)
	Update(ctx context.Context, referee *models.Referee) error
	Delete(ctx context.Context, id int) error
}

type postgresRefereeRepository struct {
	db *sql.DB
}

func NewPostgresRefereeRepository(db *sql.DB) RefereeRepository {
	return &postgresRefereeRepository{db: db}
}

func (r *postgresRefereeRepository) Create(ctx context.Context, referee *models.Referee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO referees (first_name, last_name, experience, contact, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		referee.FirstName,
		referee.LastName,
		referee.Experience,
		referee.Contact,
		referee.Active,
	).Scan(&referee.ID)
	if err != nil {
		return err
	}

	if err = replaceRefereeSports(ctx, tx, referee.ID, referee.SportIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postgresRefereeRepository) GetByID(ctx context.Context, id int) (*models.Referee, error) {
	query := `SELECT id, first_name, last_name, experience, contact, active FROM referees WHERE id = $1`

	var referee models.Referee
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&referee.ID,
		&referee.FirstName,
		&referee.LastName,
		&referee.Experience,
		&referee.Contact,
		&referee.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefereeNotFound
		}
		return nil, err
	}

	if referee.SportIDs, err = r.sportIDs(ctx, id); err != nil {
		return nil, err
	}
	return &referee, nil
}

func (r *postgresRefereeRepository) GetAll(ctx context.Context, onlyActive bool) ([]models.Referee, error) {
	query := `SELECT id, first_name, last_name, experience, contact, active FROM referees`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY last_name ASC, first_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referees := make([]models.Referee, 0)
	for rows.Next() {
		var referee models.Referee
		if scanErr := rows.Scan(
			&referee.ID,
			&referee.FirstName,
			&referee.LastName,
			&referee.Experience,
			&referee.Contact,
			&referee.Active,
		); scanErr != nil {
			return nil, scanErr
		}
		referees = append(referees, referee)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range referees {
		if referees[i].SportIDs, err = r.sportIDs(ctx, referees[i].ID); err != nil {
			return nil, err
		}
	}
	return referees, nil
}

func (r *postgresRefereeRepository) Update(ctx context.Context, referee *models.Referee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE referees
		SET first_name = $1, last_name = $2, experience = $3, contact = $4, active = $5
		WHERE id = $6`

	result, err := tx.ExecContext(ctx, query,
		referee.FirstName,
		referee.LastName,
		referee.Experience,
		referee.Contact,
		referee.Active,
		referee.ID,
	)
	if err != nil {
		return err
	}
	if err = checkAffectedRows(result, ErrRefereeNotFound); err != nil {
		return err
	}

	if err = replaceRefereeSports(ctx, tx, referee.ID, referee.SportIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postgresRefereeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM referees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRefereeNotFound)
}

func (r *postgresRefereeRepository) sportIDs(ctx context.Context, refereeID int) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sport_id FROM referee_sports WHERE referee_id = $1 ORDER BY sport_id`, refereeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, scanErr
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func replaceRefereeSports(ctx context.Context, tx *sql.Tx, refereeID int, sportIDs []int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM referee_sports WHERE referee_id = $1`, refereeID); err != nil {
		return err
	}
	for _, sportID := range sportIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO referee_sports (referee_id, sport_id) VALUES ($1, $2)`, refereeID, sportID)
		if err != nil {
			return fmt.Errorf("failed to link sport %d: %w", sportID, err)
		}
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerJerseyConflict = errors.New("jersey number conflict within team")
	ErrPlayerUserConflict   = errors.New("user is already registered as a player")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByUserID(ctx context.Context, userID int) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]models.Player, error)
	// CountByTeam cuenta los jugadores del equipo, excluyendo opcionalmente el
	// registro que se está editando.
	CountByTeam(ctx context.Context, teamID int, excludeID *int) (int, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, team_id, user_id, jersey_number, age, created_at`

func scanPlayer(row interface{ Scan(...interface{}) error }, p *models.Player) error {
	return row.Scan(&p.ID, &p.TeamID, &p.UserID, &p.JerseyNumber, &p.Age, &p.CreatedAt)
}

func mapPlayerConflict(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "players_team_id_jersey_number_key":
			return ErrPlayerJerseyConflict
		case "players_user_id_key":
			return ErrPlayerUserConflict
		}
	}
	return err
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (team_id, user_id, jersey_number, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.TeamID,
		player.UserID,
		player.JerseyNumber,
		player.Age,
	).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return mapPlayerConflict(err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var player models.Player
	err := scanPlayer(r.db.QueryRowContext(ctx, query, id), &player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetByUserID(ctx context.Context, userID int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE user_id = $1`

	var player models.Player
	err := scanPlayer(r.db.QueryRowContext(ctx, query, userID), &player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id = $1 ORDER BY jersey_number ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := scanPlayer(rows, &player); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) CountByTeam(ctx context.Context, teamID int, excludeID *int) (int, error) {
	query := `SELECT COUNT(*) FROM players WHERE team_id = $1`
	args := []interface{}{teamID}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET team_id = $1, jersey_number = $2, age = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		player.TeamID,
		player.JerseyNumber,
		player.Age,
		player.ID,
	)
	if err != nil {
		return mapPlayerConflict(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

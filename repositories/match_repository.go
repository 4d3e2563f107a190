package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchSlotConflict = errors.New("match slot conflict")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByChampionship(ctx context.Context, championshipID int) ([]models.Match, error)
	// ListBySlot devuelve los partidos del campeonato en la misma fecha y hora,
	// excluyendo opcionalmente el registro que se está editando. El validador de
	// programación revisa sobre esta lista los choques de equipo y de cancha.
	ListBySlot(ctx context.Context, championshipID int, date time.Time, startTime string, excludeID *int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateResult(ctx context.Context, id int, homeScore, awayScore int, state models.MatchState) error
	Delete(ctx context.Context, id int) error
	CountOnDate(ctx context.Context, date time.Time) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, championship_id, home_team_id, away_team_id, date, start_time, venue,
	referee_id, home_score, away_score, state, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }, m *models.Match) error {
	return row.Scan(
		&m.ID,
		&m.ChampionshipID,
		&m.HomeTeamID,
		&m.AwayTeamID,
		&m.Date,
		&m.StartTime,
		&m.Venue,
		&m.RefereeID,
		&m.HomeScore,
		&m.AwayScore,
		&m.State,
		&m.CreatedAt,
	)
}

func mapMatchConflict(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		// matches_unique_matchup y matches_unique_venue_slot respaldan al
		// validador contra inserciones concurrentes.
		return ErrMatchSlotConflict
	}
	return err
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches
			(championship_id, home_team_id, away_team_id, date, start_time, venue, referee_id, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.ChampionshipID,
		match.HomeTeamID,
		match.AwayTeamID,
		match.Date,
		match.StartTime,
		match.Venue,
		match.RefereeID,
		match.State,
	).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		return mapMatchConflict(err)
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var match models.Match
	err := scanMatch(r.db.QueryRowContext(ctx, query, id), &match)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *postgresMatchRepository) ListByChampionship(ctx context.Context, championshipID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
		WHERE championship_id = $1
		ORDER BY date DESC, start_time DESC`
	return r.list(ctx, query, championshipID)
}

func (r *postgresMatchRepository) ListBySlot(ctx context.Context, championshipID int, date time.Time, startTime string, excludeID *int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
		WHERE championship_id = $1 AND date = $2 AND start_time = $3`
	args := []interface{}{championshipID, date, startTime}
	if excludeID != nil {
		query += ` AND id != $4`
		args = append(args, *excludeID)
	}
	return r.list(ctx, query, args...)
}

func (r *postgresMatchRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := scanMatch(rows, &match); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET home_team_id = $1, away_team_id = $2, date = $3, start_time = $4, venue = $5,
		    referee_id = $6, state = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		match.HomeTeamID,
		match.AwayTeamID,
		match.Date,
		match.StartTime,
		match.Venue,
		match.RefereeID,
		match.State,
		match.ID,
	)
	if err != nil {
		return mapMatchConflict(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, id int, homeScore, awayScore int, state models.MatchState) error {
	query := `UPDATE matches SET home_score = $1, away_score = $2, state = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, homeScore, awayScore, state, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches WHERE date = $1`, date).Scan(&count)
	return count, err
}

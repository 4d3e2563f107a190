package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uide-sports/campeonatos-api/models"
)

var (
	ErrTeamStatisticNotFound   = errors.New("team statistic not found")
	ErrPlayerStatisticNotFound = errors.New("player statistic not found")
)

type StatisticRepository interface {
	UpsertTeamStatistic(ctx context.Context, stat *models.TeamStatistic) error
	GetTeamStatistic(ctx context.Context, championshipID, teamID int) (*models.TeamStatistic, error)
	// ListTeamStatistics devuelve la tabla de posiciones: puntos descendente,
	// diferencia de gol como desempate.
	ListTeamStatistics(ctx context.Context, championshipID int) ([]models.TeamStatistic, error)
	UpsertPlayerStatistic(ctx context.Context, stat *models.PlayerStatistic) error
	GetPlayerStatistic(ctx context.Context, championshipID, playerID int) (*models.PlayerStatistic, error)
	ListPlayerStatistics(ctx context.Context, championshipID int) ([]models.PlayerStatistic, error)
}

type postgresStatisticRepository struct {
	db *sql.DB
}

func NewPostgresStatisticRepository(db *sql.DB) StatisticRepository {
	return &postgresStatisticRepository{db: db}
}

const teamStatColumns = `id, championship_id, team_id, games_played, wins, draws, losses,
	goals_for, goals_against, baskets, sets_won, sets_lost, yellow_cards, red_cards, points, updated_at`

func scanTeamStat(row interface{ Scan(...interface{}) error }, s *models.TeamStatistic) error {
	return row.Scan(
		&s.ID,
		&s.ChampionshipID,
		&s.TeamID,
		&s.GamesPlayed,
		&s.Wins,
		&s.Draws,
		&s.Losses,
		&s.GoalsFor,
		&s.GoalsAgainst,
		&s.Baskets,
		&s.SetsWon,
		&s.SetsLost,
		&s.YellowCards,
		&s.RedCards,
		&s.Points,
		&s.UpdatedAt,
	)
}

func (r *postgresStatisticRepository) UpsertTeamStatistic(ctx context.Context, stat *models.TeamStatistic) error {
	query := `
		INSERT INTO team_statistics
			(championship_id, team_id, games_played, wins, draws, losses, goals_for, goals_against,
			 baskets, sets_won, sets_lost, yellow_cards, red_cards, points, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (championship_id, team_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			wins = EXCLUDED.wins,
			draws = EXCLUDED.draws,
			losses = EXCLUDED.losses,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			baskets = EXCLUDED.baskets,
			sets_won = EXCLUDED.sets_won,
			sets_lost = EXCLUDED.sets_lost,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			points = EXCLUDED.points,
			updated_at = NOW()
		RETURNING id, updated_at`

	return r.db.QueryRowContext(ctx, query,
		stat.ChampionshipID,
		stat.TeamID,
		stat.GamesPlayed,
		stat.Wins,
		stat.Draws,
		stat.Losses,
		stat.GoalsFor,
		stat.GoalsAgainst,
		stat.Baskets,
		stat.SetsWon,
		stat.SetsLost,
		stat.YellowCards,
		stat.RedCards,
		stat.Points,
	).Scan(&stat.ID, &stat.UpdatedAt)
}

func (r *postgresStatisticRepository) GetTeamStatistic(ctx context.Context, championshipID, teamID int) (*models.TeamStatistic, error) {
	query := `SELECT ` + teamStatColumns + ` FROM team_statistics
		WHERE championship_id = $1 AND team_id = $2`

	var stat models.TeamStatistic
	err := scanTeamStat(r.db.QueryRowContext(ctx, query, championshipID, teamID), &stat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamStatisticNotFound
		}
		return nil, err
	}
	return &stat, nil
}

func (r *postgresStatisticRepository) ListTeamStatistics(ctx context.Context, championshipID int) ([]models.TeamStatistic, error) {
	query := `SELECT ` + teamStatColumns + ` FROM team_statistics
		WHERE championship_id = $1
		ORDER BY points DESC, (goals_for - goals_against) DESC, wins DESC`

	rows, err := r.db.QueryContext(ctx, query, championshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]models.TeamStatistic, 0)
	for rows.Next() {
		var stat models.TeamStatistic
		if scanErr := scanTeamStat(rows, &stat); scanErr != nil {
			return nil, scanErr
		}
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

const playerStatColumns = `id, championship_id, player_id, games_played, goals, baskets, sets_won,
	yellow_cards, red_cards, points, updated_at`

func scanPlayerStat(row interface{ Scan(...interface{}) error }, s *models.PlayerStatistic) error {
	return row.Scan(
		&s.ID,
		&s.ChampionshipID,
		&s.PlayerID,
		&s.GamesPlayed,
		&s.Goals,
		&s.Baskets,
		&s.SetsWon,
		&s.YellowCards,
		&s.RedCards,
		&s.Points,
		&s.UpdatedAt,
	)
}

func (r *postgresStatisticRepository) UpsertPlayerStatistic(ctx context.Context, stat *models.PlayerStatistic) error {
	query := `
		INSERT INTO player_statistics
			(championship_id, player_id, games_played, goals, baskets, sets_won,
			 yellow_cards, red_cards, points, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (championship_id, player_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			baskets = EXCLUDED.baskets,
			sets_won = EXCLUDED.sets_won,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			points = EXCLUDED.points,
			updated_at = NOW()
		RETURNING id, updated_at`

	return r.db.QueryRowContext(ctx, query,
		stat.ChampionshipID,
		stat.PlayerID,
		stat.GamesPlayed,
		stat.Goals,
		stat.Baskets,
		stat.SetsWon,
		stat.YellowCards,
		stat.RedCards,
		stat.Points,
	).Scan(&stat.ID, &stat.UpdatedAt)
}

func (r *postgresStatisticRepository) GetPlayerStatistic(ctx context.Context, championshipID, playerID int) (*models.PlayerStatistic, error) {
	query := `SELECT ` + playerStatColumns + ` FROM player_statistics
		WHERE championship_id = $1 AND player_id = $2`

	var stat models.PlayerStatistic
	err := scanPlayerStat(r.db.QueryRowContext(ctx, query, championshipID, playerID), &stat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerStatisticNotFound
		}
		return nil, err
	}
	return &stat, nil
}

func (r *postgresStatisticRepository) ListPlayerStatistics(ctx context.Context, championshipID int) ([]models.PlayerStatistic, error) {
	query := `SELECT ` + playerStatColumns + ` FROM player_statistics
		WHERE championship_id = $1
		ORDER BY points DESC, goals DESC`

	rows, err := r.db.QueryContext(ctx, query, championshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]models.PlayerStatistic, 0)
	for rows.Next() {
		var stat models.PlayerStatistic
		if scanErr := scanPlayerStat(rows, &stat); scanErr != nil {
			return nil, scanErr
		}
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uide-sports/campeonatos-api/models"
)

func intPtr(v int) *int { return &v }

func finishedMatch(championshipID, home, away, homeScore, awayScore int) *models.Match {
	return &models.Match{
		ChampionshipID: championshipID,
		HomeTeamID:     home,
		AwayTeamID:     away,
		HomeScore:      intPtr(homeScore),
		AwayScore:      intPtr(awayScore),
		State:          models.MatchFinished,
	}
}

func TestApplyMatchResult_AccumulatesAcrossMatches(t *testing.T) {
	svc := NewStatisticService(newFakeStatisticRepo(), newFakePlayerRepo())

	// El equipo 1 gana 3-1 y luego empata 2-2 con el equipo 3.
	require.NoError(t, svc.ApplyMatchResult(context.Background(), finishedMatch(1, 1, 2, 3, 1)))
	require.NoError(t, svc.ApplyMatchResult(context.Background(), finishedMatch(1, 3, 1, 2, 2)))

	stat, err := svc.GetTeamStatistic(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, stat.GamesPlayed)
	assert.Equal(t, 1, stat.Wins)
	assert.Equal(t, 1, stat.Draws)
	assert.Equal(t, 0, stat.Losses)
	assert.Equal(t, 4, stat.Points) // 3 por la victoria + 1 por el empate
	assert.Equal(t, 5, stat.GoalsFor)
	assert.Equal(t, 3, stat.GoalsAgainst)
	assert.Equal(t, 2, stat.GoalDifference())
}

func TestApplyMatchResult_LoserGetsNoPoints(t *testing.T) {
	svc := NewStatisticService(newFakeStatisticRepo(), newFakePlayerRepo())

	require.NoError(t, svc.ApplyMatchResult(context.Background(), finishedMatch(1, 1, 2, 3, 1)))

	stat, err := svc.GetTeamStatistic(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, stat.Losses)
	assert.Equal(t, 0, stat.Points)
	assert.Equal(t, -2, stat.GoalDifference())
}

func TestApplyMatchResult_RequiresScores(t *testing.T) {
	svc := NewStatisticService(newFakeStatisticRepo(), newFakePlayerRepo())

	match := finishedMatch(1, 1, 2, 0, 0)
	match.AwayScore = nil

	assert.Error(t, svc.ApplyMatchResult(context.Background(), match))
}

func TestRecordPlayerStatistic(t *testing.T) {
	playerRepo := newFakePlayerRepo()
	player := playerRepo.add(models.Player{TeamID: 1, UserID: 1, JerseyNumber: 10, Age: 21})
	svc := NewStatisticService(newFakeStatisticRepo(), playerRepo)

	stat, err := svc.RecordPlayerStatistic(context.Background(), PlayerStatisticInput{
		ChampionshipID: 1,
		PlayerID:       player.ID,
		GamesPlayed:    3,
		Goals:          5,
		YellowCards:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, stat.Goals)

	_, err = svc.RecordPlayerStatistic(context.Background(), PlayerStatisticInput{
		ChampionshipID: 1,
		PlayerID:       999,
	})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

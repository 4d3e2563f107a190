package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

func TestRoundRobin_EveryPairMeetsOnce(t *testing.T) {
	for _, teams := range []int{2, 4, 5, 8, 9} {
		t.Run(fmt.Sprintf("%d teams", teams), func(t *testing.T) {
			ids := make([]int, teams)
			for i := range ids {
				ids[i] = i + 1
			}

			pairings := RoundRobin(ids, false)
			require.Len(t, pairings, teams*(teams-1)/2)

			seen := make(map[string]int)
			for _, p := range pairings {
				assert.NotEqual(t, p.HomeTeamID, p.AwayTeamID)
				assert.NotZero(t, p.HomeTeamID)
				assert.NotZero(t, p.AwayTeamID)
				seen[pairKey(p.HomeTeamID, p.AwayTeamID)]++
			}
			for pair, n := range seen {
				assert.Equal(t, 1, n, "pair %s meets %d times", pair, n)
			}
		})
	}
}

func TestRoundRobin_NoTeamPlaysTwicePerRound(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6}

	byRound := make(map[int]map[int]bool)
	for _, p := range RoundRobin(ids, false) {
		if byRound[p.Round] == nil {
			byRound[p.Round] = make(map[int]bool)
		}
		for _, id := range []int{p.HomeTeamID, p.AwayTeamID} {
			assert.False(t, byRound[p.Round][id], "team %d plays twice in round %d", id, p.Round)
			byRound[p.Round][id] = true
		}
	}
	assert.Len(t, byRound, TotalRounds(len(ids), false))
}

func TestRoundRobin_OddTeamCountGetsByes(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}

	pairings := RoundRobin(ids, false)
	// Cinco equipos juegan en cinco jornadas de dos partidos; uno descansa
	// por jornada.
	require.Len(t, pairings, 10)

	perRound := make(map[int]int)
	for _, p := range pairings {
		perRound[p.Round]++
	}
	require.Len(t, perRound, 5)
	for round, matches := range perRound {
		assert.Equal(t, 2, matches, "round %d", round)
	}
}

func TestRoundRobin_DoubleRoundSwapsVenues(t *testing.T) {
	ids := []int{1, 2, 3, 4}

	pairings := RoundRobin(ids, true)
	require.Len(t, pairings, 12)

	rounds := TotalRounds(len(ids), false)
	firstLeg := len(pairings) / 2
	for i := 0; i < firstLeg; i++ {
		first, second := pairings[i], pairings[firstLeg+i]
		assert.Equal(t, first.Round+rounds, second.Round)
		assert.Equal(t, first.HomeTeamID, second.AwayTeamID)
		assert.Equal(t, first.AwayTeamID, second.HomeTeamID)
	}
}

func TestRoundRobin_TooFewTeams(t *testing.T) {
	assert.Nil(t, RoundRobin(nil, false))
	assert.Nil(t, RoundRobin([]int{7}, false))
}

func TestTotalRounds(t *testing.T) {
	cases := []struct {
		teams       int
		doubleRound bool
		want        int
	}{
		{2, false, 1},
		{4, false, 3},
		{5, false, 5},
		{6, false, 5},
		{4, true, 6},
		{5, true, 10},
		{1, false, 0},
		{0, true, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalRounds(tc.teams, tc.doubleRound), "teams=%d double=%v", tc.teams, tc.doubleRound)
	}
}

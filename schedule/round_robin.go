package schedule

// Pairing es un enfrentamiento propuesto dentro de una jornada.
type Pairing struct {
	Round      int
	HomeTeamID int
	AwayTeamID int
}

// byeTeam marca el hueco cuando el número de equipos es impar.
const byeTeam = 0

// RoundRobin genera un calendario todos-contra-todos con el método del
// círculo: un equipo queda fijo y el resto rota una posición por jornada.
// Con doubleRound se agrega la vuelta con localías invertidas.
func RoundRobin(teamIDs []int, doubleRound bool) []Pairing {
	if len(teamIDs) < 2 {
		return nil
	}

	ids := make([]int, len(teamIDs))
	copy(ids, teamIDs)
	if len(ids)%2 != 0 {
		ids = append(ids, byeTeam)
	}

	n := len(ids)
	rounds := n - 1
	pairings := make([]Pairing, 0, rounds*n/2)

	for round := 1; round <= rounds; round++ {
		for i := 0; i < n/2; i++ {
			home, away := ids[i], ids[n-1-i]
			if home == byeTeam || away == byeTeam {
				continue
			}
			// Alternar localía por jornada para que el equipo fijo no sea
			// siempre local.
			if round%2 == 0 && i == 0 {
				home, away = away, home
			}
			pairings = append(pairings, Pairing{Round: round, HomeTeamID: home, AwayTeamID: away})
		}

		// Rotación: el primer equipo queda fijo.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}

	if doubleRound {
		firstLeg := len(pairings)
		for i := 0; i < firstLeg; i++ {
			p := pairings[i]
			pairings = append(pairings, Pairing{
				Round:      p.Round + rounds,
				HomeTeamID: p.AwayTeamID,
				AwayTeamID: p.HomeTeamID,
			})
		}
	}

	return pairings
}

// TotalRounds devuelve cuántas jornadas requiere un todos-contra-todos
// para la cantidad de equipos dada.
func TotalRounds(teamCount int, doubleRound bool) int {
	if teamCount < 2 {
		return 0
	}
	rounds := teamCount - 1
	if teamCount%2 != 0 {
		rounds = teamCount
	}
	if doubleRound {
		rounds *= 2
	}
	return rounds
}

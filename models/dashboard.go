package models

type DashboardStats struct {
	UsersTotal          int `json:"users_total"`
	ChampionshipsTotal  int `json:"championships_total"`
	OpenChampionships   int `json:"open_championships"`
	TeamsTotal          int `json:"teams_total"`
	TeamsPendingPayment int `json:"teams_pending_payment"`
	MatchesToday        int `json:"matches_today"`
	ActiveSuspensions   int `json:"active_suspensions"`
}

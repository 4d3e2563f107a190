package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type StatisticHandler struct {
	statisticService services.StatisticService
}

func NewStatisticHandler(statisticService services.StatisticService) *StatisticHandler {
	return &StatisticHandler{statisticService: statisticService}
}

// Standings devuelve la tabla de posiciones del campeonato.
func (h *StatisticHandler) Standings(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.statisticService.GetStandings(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) TeamStatistic(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.statisticService.GetTeamStatistic(r.Context(), championshipID, teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"statistic": stat}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type playerStatisticRequest struct {
	PlayerID    int `json:"player_id" validate:"required,gt=0"`
	GamesPlayed int `json:"games_played" validate:"gte=0"`
	Goals       int `json:"goals" validate:"gte=0"`
	Baskets     int `json:"baskets" validate:"gte=0"`
	SetsWon     int `json:"sets_won" validate:"gte=0"`
	YellowCards int `json:"yellow_cards" validate:"gte=0"`
	RedCards    int `json:"red_cards" validate:"gte=0"`
	Points      int `json:"points" validate:"gte=0"`
}

// RecordPlayerStatistic carga los contadores individuales de un jugador.
func (h *StatisticHandler) RecordPlayerStatistic(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req playerStatisticRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	stat, err := h.statisticService.RecordPlayerStatistic(r.Context(), services.PlayerStatisticInput{
		ChampionshipID: championshipID,
		PlayerID:       req.PlayerID,
		GamesPlayed:    req.GamesPlayed,
		Goals:          req.Goals,
		Baskets:        req.Baskets,
		SetsWon:        req.SetsWon,
		YellowCards:    req.YellowCards,
		RedCards:       req.RedCards,
		Points:         req.Points,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"statistic": stat}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) ListPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.statisticService.ListPlayerStatistics(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"statistics": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

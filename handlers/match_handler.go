package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

type matchRequest struct {
	ChampionshipID int    `json:"championship_id" validate:"required,gt=0"`
	HomeTeamID     int    `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID     int    `json:"away_team_id" validate:"required,gt=0"`
	Date           string `json:"date" validate:"required"`
	StartTime      string `json:"start_time" validate:"required"`
	Venue          string `json:"venue" validate:"required,max=150"`
	RefereeID      *int   `json:"referee_id,omitempty"`
}

func (req matchRequest) toInput() services.MatchInput {
	return services.MatchInput{
		ChampionshipID: req.ChampionshipID,
		HomeTeamID:     req.HomeTeamID,
		AwayTeamID:     req.AwayTeamID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		Venue:          req.Venue,
		RefereeID:      req.RefereeID,
	}
}

func (h *MatchHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	match, err := h.matchService.ScheduleMatch(r.Context(), req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatchByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ListByChampionship(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListMatchesByChampionship(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req matchRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	match, err := h.matchService.UpdateMatch(r.Context(), id, req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type matchResultRequest struct {
	HomeScore int `json:"home_score" validate:"gte=0"`
	AwayScore int `json:"away_score" validate:"gte=0"`
}

func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req matchResultRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	match, err := h.matchService.RecordResult(r.Context(), id, req.HomeScore, req.AwayScore)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.DeleteMatch(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

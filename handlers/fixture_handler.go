package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
}

func NewFixtureHandler(fixtureService services.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fixtureService}
}

// Propose arma una propuesta de calendario todos-contra-todos. No persiste
// nada: el administrador agenda los partidos que le convenzan.
func (h *FixtureHandler) Propose(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	doubleRound := r.URL.Query().Get("double_round") == "true"

	fixtures, err := h.fixtureService.ProposeFixtures(r.Context(), championshipID, doubleRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

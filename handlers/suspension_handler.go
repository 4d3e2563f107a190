package handlers

import (
	"net/http"
	"time"

	"github.com/uide-sports/campeonatos-api/services"
)

type SuspensionHandler struct {
	suspensionService services.SuspensionService
}

func NewSuspensionHandler(suspensionService services.SuspensionService) *SuspensionHandler {
	return &SuspensionHandler{suspensionService: suspensionService}
}

type suspensionRequest struct {
	PlayerID  int    `json:"player_id" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *SuspensionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req suspensionRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	suspension, err := h.suspensionService.SuspendPlayer(r.Context(), services.SuspensionInput{
		PlayerID:  req.PlayerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"suspension": suspension}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SuspensionHandler) List(w http.ResponseWriter, r *http.Request) {
	suspensions, err := h.suspensionService.ListSuspensions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"suspensions": suspensions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SuspensionHandler) ListByPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := idParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	suspensions, err := h.suspensionService.ListSuspensionsByPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"suspensions": suspensions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Status responde si el jugador está suspendido hoy.
func (h *SuspensionHandler) Status(w http.ResponseWriter, r *http.Request) {
	playerID, err := idParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	suspended, err := h.suspensionService.IsPlayerSuspended(r.Context(), playerID, time.Now())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player_id": playerID, "suspended": suspended}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SuspensionHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "suspensionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.suspensionService.RevokeSuspension(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

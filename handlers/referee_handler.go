package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type RefereeHandler struct {
	refereeService services.RefereeService
}

func NewRefereeHandler(refereeService services.RefereeService) *RefereeHandler {
	return &RefereeHandler{refereeService: refereeService}
}

type refereeRequest struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Experience *string `json:"experience,omitempty"`
	Contact    string  `json:"contact" validate:"required"`
	Active     bool    `json:"active"`
	SportIDs   []int   `json:"sport_ids" validate:"dive,gt=0"`
}

func (h *RefereeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req refereeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	referee, err := h.refereeService.CreateReferee(r.Context(), services.RefereeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Experience: req.Experience,
		Contact:    req.Contact,
		Active:     req.Active,
		SportIDs:   req.SportIDs,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"referee": referee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RefereeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "refereeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	referee, err := h.refereeService.GetRefereeByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"referee": referee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RefereeHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	referees, err := h.refereeService.ListReferees(r.Context(), onlyActive)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"referees": referees}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RefereeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "refereeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req refereeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	referee, err := h.refereeService.UpdateReferee(r.Context(), id, services.RefereeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Experience: req.Experience,
		Contact:    req.Contact,
		Active:     req.Active,
		SportIDs:   req.SportIDs,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"referee": referee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RefereeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "refereeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.refereeService.DeleteReferee(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type ChampionshipTypeHandler struct {
	typeService services.ChampionshipTypeService
}

func NewChampionshipTypeHandler(typeService services.ChampionshipTypeService) *ChampionshipTypeHandler {
	return &ChampionshipTypeHandler{typeService: typeService}
}

type championshipTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

func (h *ChampionshipTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req championshipTypeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	t, err := h.typeService.CreateType(r.Context(), services.ChampionshipTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"championship_type": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "typeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.typeService.GetTypeByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship_type": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeService.GetAllTypes(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship_types": types}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "typeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req championshipTypeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	t, err := h.typeService.UpdateType(r.Context(), id, services.ChampionshipTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship_type": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "typeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.typeService.DeleteType(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

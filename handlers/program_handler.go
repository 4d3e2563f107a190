package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type ProgramHandler struct {
	programService services.ProgramService
}

func NewProgramHandler(programService services.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

type programRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	program, err := h.programService.CreateProgram(r.Context(), req.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"program": program}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programService.GetAllPrograms(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"programs": programs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "programID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req programRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	program, err := h.programService.UpdateProgram(r.Context(), id, req.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"program": program}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "programID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.programService.DeleteProgram(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/services"
)

type StreamHandler struct {
	streamService services.StreamService
}

func NewStreamHandler(streamService services.StreamService) *StreamHandler {
	return &StreamHandler{streamService: streamService}
}

type streamRequest struct {
	ChampionshipID int    `json:"championship_id" validate:"required,gt=0"`
	MatchID        *int   `json:"match_id,omitempty"`
	Name           string `json:"name" validate:"required,max=150"`
	URL            string `json:"url" validate:"required,url"`
	Active         bool   `json:"active"`
}

func (req streamRequest) toInput() services.StreamInput {
	return services.StreamInput{
		ChampionshipID: req.ChampionshipID,
		MatchID:        req.MatchID,
		Name:           req.Name,
		URL:            req.URL,
		Active:         req.Active,
	}
}

func (h *StreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req streamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	stream, err := h.streamService.CreateStream(r.Context(), req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"stream": stream}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StreamHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	streams, err := h.streamService.ListStreams(r.Context(), onlyActive)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"streams": streams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StreamHandler) ListByChampionship(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	streams, err := h.streamService.ListStreamsByChampionship(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"streams": streams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "streamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req streamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	stream, err := h.streamService.UpdateStream(r.Context(), id, req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stream": stream}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "streamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.streamService.DeleteStream(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/services"
)

type ChampionshipHandler struct {
	championshipService services.ChampionshipService
}

func NewChampionshipHandler(championshipService services.ChampionshipService) *ChampionshipHandler {
	return &ChampionshipHandler{championshipService: championshipService}
}

type championshipRequest struct {
	Name          string           `json:"name" validate:"required,max=150"`
	Description   *string          `json:"description,omitempty"`
	SportID       int              `json:"sport_id" validate:"required,gt=0"`
	TypeID        int              `json:"type_id" validate:"required,gt=0"`
	DelegateID    *int             `json:"delegate_id,omitempty"`
	StartDate     string           `json:"start_date" validate:"required"`
	EndDate       string           `json:"end_date" validate:"required"`
	MatchWeekdays []models.Weekday `json:"match_weekdays" validate:"required,min=1"`
	MaxRosterSize int              `json:"max_roster_size" validate:"required,gt=0"`
	EntryFee      float64          `json:"entry_fee" validate:"gte=0"`
}

func (req championshipRequest) toInput() services.ChampionshipInput {
	return services.ChampionshipInput{
		Name:          req.Name,
		Description:   req.Description,
		SportID:       req.SportID,
		TypeID:        req.TypeID,
		DelegateID:    req.DelegateID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MatchWeekdays: req.MatchWeekdays,
		MaxRosterSize: req.MaxRosterSize,
		EntryFee:      req.EntryFee,
	}
}

func (h *ChampionshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req championshipRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	championship, err := h.championshipService.CreateChampionship(r.Context(), req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	championship, err := h.championshipService.GetChampionshipByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipHandler) List(w http.ResponseWriter, r *http.Request) {
	var state *models.ChampionshipState
	if raw := r.URL.Query().Get("state"); raw != "" {
		candidate := models.ChampionshipState(raw)
		if !candidate.Valid() {
			badRequestResponse(w, r, errors.New("invalid state filter"))
			return
		}
		state = &candidate
	}

	championships, err := h.championshipService.ListChampionships(r.Context(), state)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championships": championships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req championshipRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	championship, err := h.championshipService.UpdateChampionship(r.Context(), id, req.toInput())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type changeStateRequest struct {
	State models.ChampionshipState `json:"state" validate:"required,oneof=OPEN CLOSED IN_PROGRESS FINISHED"`
}

func (h *ChampionshipHandler) ChangeState(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req changeStateRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	championship, err := h.championshipService.ChangeState(r.Context(), id, req.State)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadRules recibe el PDF de reglamento por multipart (campo "file").
func (h *ChampionshipHandler) UploadRules(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := formFile(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	championship, err := h.championshipService.UploadRules(r.Context(), id, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"championship": championship}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ChampionshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.championshipService.DeleteChampionship(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

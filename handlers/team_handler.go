package handlers

import (
	"net/http"

	"github.com/uide-sports/campeonatos-api/middleware"
	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type teamRequest struct {
	ChampionshipID int     `json:"championship_id" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required,max=100"`
	Program        *string `json:"program,omitempty"`
}

// Register inscribe un equipo a nombre del delegado autenticado.
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	delegateID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	team, err := h.teamService.RegisterTeam(r.Context(), services.TeamInput{
		ChampionshipID: req.ChampionshipID,
		Name:           req.Name,
		Program:        req.Program,
		DelegateID:     &delegateID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) ListByChampionship(w http.ResponseWriter, r *http.Request) {
	championshipID, err := idParam(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.ListTeamsByChampionship(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MyTeams lista los equipos del delegado autenticado.
func (h *TeamHandler) MyTeams(w http.ResponseWriter, r *http.Request) {
	delegateID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	teams, err := h.teamService.ListTeamsByDelegate(r.Context(), delegateID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if !h.canManageTeam(r, team) {
		forbiddenResponse(w, r, "only the team delegate or an admin can edit the team")
		return
	}

	var req teamRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if msgs := validateRequest(req); msgs != nil {
		failedValidationResponse(w, r, msgs)
		return
	}

	updated, err := h.teamService.UpdateTeam(r.Context(), id, services.TeamInput{
		ChampionshipID: req.ChampionshipID,
		Name:           req.Name,
		Program:        req.Program,
		DelegateID:     team.DelegateID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": updated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadLogo recibe el logo del equipo por multipart (campo "file").
func (h *TeamHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if !h.canManageTeam(r, team) {
		forbiddenResponse(w, r, "only the team delegate or an admin can change the logo")
		return
	}

	file, contentType, err := formFile(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	updated, err := h.teamService.UploadLogo(r.Context(), id, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": updated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// canManageTeam: el delegado dueño del equipo o un ADMIN.
func (h *TeamHandler) canManageTeam(r *http.Request, team *models.Team) bool {
	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		return false
	}
	if role == models.RoleAdmin {
		return true
	}

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return false
	}
	return team.DelegateID != nil && *team.DelegateID == userID
}

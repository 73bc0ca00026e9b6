package handlers

import (
	"net/http"

	"talenttrack/internal/app"
	"talenttrack/internal/domain/team"
	"talenttrack/internal/http/response"
)

type TeamHandler struct {
	teams *app.TeamService
}

func NewTeamHandler(teams *app.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

type teamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.teams.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []team.Team{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.teams.Create(r.Context(), req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teamID, err := idFromVars(r, "teamID")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.teams.Delete(r.Context(), teamID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

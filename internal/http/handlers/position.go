package handlers

import (
	"net/http"

	"talenttrack/internal/app"
	"talenttrack/internal/domain/position"
	"talenttrack/internal/http/response"
)

type PositionHandler struct {
	positions *app.PositionService
}

func NewPositionHandler(positions *app.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

type positionCreateRequest struct {
	Title           string  `json:"title"`
	Requirements    *string `json:"requirements"`
	TeamID          int64   `json:"team_id"`
	HiringManagerID int64   `json:"hiring_manager_id"`
}

type positionUpdateRequest struct {
	Title           *string `json:"title"`
	Requirements    *string `json:"requirements"`
	TeamID          *int64  `json:"team_id"`
	HiringManagerID *int64  `json:"hiring_manager_id"`
	Status          *string `json:"status"`
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.positions.List(r.Context(), position.ListFilter{
		Offset: queryInt(r, "offset", 0),
		Limit:  queryInt(r, "limit", 20),
		Status: q.Get("status"),
		TeamID: queryInt64(r, "team_id"),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req positionCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.positions.Create(r.Context(), req.Title, req.TeamID, req.HiringManagerID, req.Requirements)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *PositionHandler) Get(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromVars(r, "positionID")
	if err != nil {
		response.Error(w, err)
		return
	}
	detail, err := h.positions.Get(r.Context(), positionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

func (h *PositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromVars(r, "positionID")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req positionUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.positions.Update(r.Context(), positionID, position.Update{
		Title:           req.Title,
		Requirements:    req.Requirements,
		TeamID:          req.TeamID,
		HiringManagerID: req.HiringManagerID,
		Status:          req.Status,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *PositionHandler) Archive(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromVars(r, "positionID")
	if err != nil {
		response.Error(w, err)
		return
	}
	archived, err := h.positions.Archive(r.Context(), positionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, archived)
}

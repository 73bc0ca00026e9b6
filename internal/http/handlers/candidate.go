package handlers

import (
	"net/http"

	"talenttrack/internal/app"
	"talenttrack/internal/domain/candidate"
	"talenttrack/internal/http/response"
)

type CandidateHandler struct {
	candidates *app.CandidateService
	pipeline   *app.PipelineService
}

func NewCandidateHandler(candidates *app.CandidateService, pipeline *app.PipelineService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, pipeline: pipeline}
}

type candidateCreateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type candidateUpdateRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

type attachRequest struct {
	PositionID int64 `json:"position_id"`
}

type stageRequest struct {
	Stage string `json:"stage"`
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.candidates.List(r.Context(), candidate.ListFilter{
		Offset:     queryInt(r, "offset", 0),
		Limit:      queryInt(r, "limit", 20),
		Search:     q.Get("search"),
		Stage:      q.Get("stage"),
		PositionID: queryInt64(r, "position_id"),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req candidateCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.candidates.Create(r.Context(), req.FullName, req.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	detail, err := h.candidates.Get(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req candidateUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.candidates.Update(r.Context(), candidateID, req.FullName, req.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CandidateHandler) Archive(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	archived, err := h.candidates.Archive(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, archived)
}

func (h *CandidateHandler) AttachPosition(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req attachRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.pipeline.Attach(r.Context(), candidateID, req.PositionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CandidateHandler) DetachPosition(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	positionID, err := idFromVars(r, "positionID")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.pipeline.Detach(r.Context(), candidateID, positionID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CandidateHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromVars(r, "candidateID")
	if err != nil {
		response.Error(w, err)
		return
	}
	positionID, err := idFromVars(r, "positionID")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req stageRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.pipeline.UpdateStage(r.Context(), candidateID, positionID, req.Stage)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

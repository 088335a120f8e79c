package handler

import (
	"net/http"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/override"
)

// OverrideHandler serves the admin correction and materialization routes
type OverrideHandler struct {
	service override.Service
}

// NewOverrideHandler creates a new OverrideHandler
func NewOverrideHandler(service override.Service) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// CategoryOverrideRequest sets one category's points. A null points value
// deletes the override.
type CategoryOverrideRequest struct {
	ContestantID string `json:"contestant_id" validate:"required,max=64"`
	Episode      int    `json:"episode" validate:"min=1"`
	Category     string `json:"category" validate:"required,category"`
	Points       *int   `json:"points"`
}

// DeleteCategoryOverrideRequest identifies a category override
type DeleteCategoryOverrideRequest struct {
	ContestantID string `json:"contestant_id" validate:"required,max=64"`
	Episode      int    `json:"episode" validate:"min=1"`
	Category     string `json:"category" validate:"required,category"`
}

// TotalOverrideRequest sets a whole-row total. A null total deletes it.
type TotalOverrideRequest struct {
	ContestantID string `json:"contestant_id" validate:"required,max=64"`
	Episode      int    `json:"episode" validate:"min=1"`
	Total        *int   `json:"total"`
}

// DeleteTotalOverrideRequest identifies a total override
type DeleteTotalOverrideRequest struct {
	ContestantID string `json:"contestant_id" validate:"required,max=64"`
	Episode      int    `json:"episode" validate:"min=1"`
}

// MaterializeResponse reports a materialization run
type MaterializeResponse struct {
	Message  string                      `json:"message"`
	Episode  int                         `json:"episode,omitempty"`
	RowCount int                         `json:"row_count"`
	Rows     []domain.MaterializedPoints `json:"rows,omitempty"`
}

// HandleSetCategoryOverride writes or deletes a category override
// @Summary Set category override
// @Description Writes a category override (points null deletes it) and re-materializes the episode
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CategoryOverrideRequest true "Override"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/overrides/category [put]
func (h *OverrideHandler) HandleSetCategoryOverride(w http.ResponseWriter, r *http.Request) {
	var req CategoryOverrideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set category override"); err != nil {
		return
	}
	if err := h.service.SetCategoryOverride(r.Context(), req.ContestantID, req.Episode, req.Category, req.Points); err != nil {
		respondServiceError(w, r, "set category override", err)
		return
	}
	msg := MsgOverrideSaved
	if req.Points == nil {
		msg = MsgOverrideDeleted
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// HandleDeleteCategoryOverride removes a category override
// @Summary Delete category override
// @Tags admin
// @Accept json
// @Produce json
// @Param request body DeleteCategoryOverrideRequest true "Override key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/overrides/category [delete]
func (h *OverrideHandler) HandleDeleteCategoryOverride(w http.ResponseWriter, r *http.Request) {
	var req DeleteCategoryOverrideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Delete category override"); err != nil {
		return
	}
	if err := h.service.DeleteCategoryOverride(r.Context(), req.ContestantID, req.Episode, req.Category); err != nil {
		respondServiceError(w, r, "delete category override", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOverrideDeleted})
}

// HandleSetTotalOverride writes or deletes a whole-row total override
// @Summary Set total override
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TotalOverrideRequest true "Override"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/overrides/total [put]
func (h *OverrideHandler) HandleSetTotalOverride(w http.ResponseWriter, r *http.Request) {
	var req TotalOverrideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set total override"); err != nil {
		return
	}
	if err := h.service.SetTotalOverride(r.Context(), req.ContestantID, req.Episode, req.Total); err != nil {
		respondServiceError(w, r, "set total override", err)
		return
	}
	msg := MsgOverrideSaved
	if req.Total == nil {
		msg = MsgOverrideDeleted
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// HandleDeleteTotalOverride removes a whole-row total override
// @Summary Delete total override
// @Tags admin
// @Accept json
// @Produce json
// @Param request body DeleteTotalOverrideRequest true "Override key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/overrides/total [delete]
func (h *OverrideHandler) HandleDeleteTotalOverride(w http.ResponseWriter, r *http.Request) {
	var req DeleteTotalOverrideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Delete total override"); err != nil {
		return
	}
	if err := h.service.DeleteTotalOverride(r.Context(), req.ContestantID, req.Episode); err != nil {
		respondServiceError(w, r, "delete total override", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOverrideDeleted})
}

// HandleGetEpisodeOverrides lists an episode's overrides and materialized rows
// @Summary List episode overrides
// @Tags admin
// @Produce json
// @Param episode path int true "Episode number"
// @Success 200 {object} override.EpisodeOverrides
// @Router /api/v1/admin/overrides/episode/{episode} [get]
func (h *OverrideHandler) HandleGetEpisodeOverrides(w http.ResponseWriter, r *http.Request) {
	episode, ok := episodeURLParam(w, r)
	if !ok {
		return
	}
	view, err := h.service.ListEpisode(r.Context(), episode)
	if err != nil {
		respondServiceError(w, r, "list episode overrides", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleClearEpisode removes every override for an episode
// @Summary Clear episode overrides
// @Tags admin
// @Produce json
// @Param episode path int true "Episode number"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/overrides/episode/{episode} [delete]
func (h *OverrideHandler) HandleClearEpisode(w http.ResponseWriter, r *http.Request) {
	episode, ok := episodeURLParam(w, r)
	if !ok {
		return
	}
	if err := h.service.ClearEpisode(r.Context(), episode); err != nil {
		respondServiceError(w, r, "clear episode overrides", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEpisodeCleared})
}

// HandleClearAll removes every override in the season
// @Summary Clear all overrides
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/overrides [delete]
func (h *OverrideHandler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		respondServiceError(w, r, "clear all overrides", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAllCleared})
}

// HandleMaterializeEpisode rebuilds an episode's materialized rows
// @Summary Materialize episode
// @Tags admin
// @Produce json
// @Param episode path int true "Episode number"
// @Success 200 {object} MaterializeResponse
// @Router /api/v1/admin/materialize/{episode} [post]
func (h *OverrideHandler) HandleMaterializeEpisode(w http.ResponseWriter, r *http.Request) {
	episode, ok := episodeURLParam(w, r)
	if !ok {
		return
	}
	rows, err := h.service.MaterializeEpisode(r.Context(), episode)
	if err != nil {
		respondServiceError(w, r, "materialize episode", err)
		return
	}
	respondJSON(w, http.StatusOK, MaterializeResponse{Message: MsgEpisodeMaterialize, Episode: episode, RowCount: len(rows), Rows: rows})
}

// HandleMaterializeAll rebuilds every episode that has overrides
// @Summary Materialize all episodes
// @Tags admin
// @Produce json
// @Success 200 {object} MaterializeResponse
// @Router /api/v1/admin/materialize [post]
func (h *OverrideHandler) HandleMaterializeAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.MaterializeAll(r.Context())
	if err != nil {
		respondServiceError(w, r, "materialize all", err)
		return
	}
	respondJSON(w, http.StatusOK, MaterializeResponse{Message: MsgAllMaterialized, RowCount: n})
}

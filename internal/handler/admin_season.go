package handler

import (
	"net/http"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/season"
)

// SeasonHandler serves the admin outcome and scoring-config routes
type SeasonHandler struct {
	service season.Service
}

// NewSeasonHandler creates a new SeasonHandler
func NewSeasonHandler(service season.Service) *SeasonHandler {
	return &SeasonHandler{service: service}
}

// RecordOutcomeResponse reports a stored outcome
type RecordOutcomeResponse struct {
	Message    string `json:"message"`
	Episode    int    `json:"episode"`
	Superseded bool   `json:"superseded"`
}

// ConfigSavedResponse reports the version a config was stored under
type ConfigSavedResponse struct {
	Message string `json:"message"`
	Version int    `json:"version"`
}

// HandleRecordOutcome stores an episode outcome, replacing any earlier one
// @Summary Record episode outcome
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.EpisodeOutcome true "Outcome"
// @Success 201 {object} RecordOutcomeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/outcomes [post]
func (h *SeasonHandler) HandleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	var outcome domain.EpisodeOutcome
	if err := DecodeAndValidateRequest(r, w, &outcome, "Record outcome"); err != nil {
		return
	}
	superseded, err := h.service.RecordOutcome(r.Context(), &outcome)
	if err != nil {
		respondServiceError(w, r, "record outcome", err)
		return
	}
	msg := MsgOutcomeRecorded
	if superseded {
		msg = MsgOutcomeSuperseded
	}
	respondJSON(w, http.StatusCreated, RecordOutcomeResponse{Message: msg, Episode: outcome.Episode, Superseded: superseded})
}

// HandleGetOutcome returns the stored outcome for an episode
// @Summary Get episode outcome
// @Tags admin
// @Produce json
// @Param episode path int true "Episode number"
// @Success 200 {object} domain.EpisodeOutcome
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/outcomes/{episode} [get]
func (h *SeasonHandler) HandleGetOutcome(w http.ResponseWriter, r *http.Request) {
	episode, ok := episodeURLParam(w, r)
	if !ok {
		return
	}
	outcome, err := h.service.GetOutcome(r.Context(), episode)
	if err != nil {
		respondServiceError(w, r, "get outcome", err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// HandleGetScoringConfig returns the current scoring config
// @Summary Get scoring config
// @Tags admin
// @Produce json
// @Success 200 {object} domain.ScoringConfig
// @Router /api/v1/admin/config/scoring [get]
func (h *SeasonHandler) HandleGetScoringConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetScoringConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, "get scoring config", err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// HandleSaveScoringConfig stores a new scoring config version
// @Summary Save scoring config
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.ScoringConfig true "Scoring config"
// @Success 200 {object} ConfigSavedResponse
// @Router /api/v1/admin/config/scoring [put]
func (h *SeasonHandler) HandleSaveScoringConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.ScoringConfig
	if err := DecodeAndValidateRequest(r, w, &cfg, "Save scoring config"); err != nil {
		return
	}
	version, err := h.service.SaveScoringConfig(r.Context(), &cfg)
	if err != nil {
		respondServiceError(w, r, "save scoring config", err)
		return
	}
	respondJSON(w, http.StatusOK, ConfigSavedResponse{Message: MsgConfigSaved, Version: version})
}

// HandleGetBPSConfig returns the current impact ranking config
// @Summary Get BPS config
// @Tags admin
// @Produce json
// @Success 200 {object} domain.BPSConfig
// @Router /api/v1/admin/config/bps [get]
func (h *SeasonHandler) HandleGetBPSConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetBPSConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, "get bps config", err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// HandleSaveBPSConfig stores a new impact ranking config version
// @Summary Save BPS config
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.BPSConfig true "BPS config"
// @Success 200 {object} ConfigSavedResponse
// @Router /api/v1/admin/config/bps [put]
func (h *SeasonHandler) HandleSaveBPSConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.BPSConfig
	if err := DecodeAndValidateRequest(r, w, &cfg, "Save bps config"); err != nil {
		return
	}
	version, err := h.service.SaveBPSConfig(r.Context(), &cfg)
	if err != nil {
		respondServiceError(w, r, "save bps config", err)
		return
	}
	respondJSON(w, http.StatusOK, ConfigSavedResponse{Message: MsgConfigSaved, Version: version})
}

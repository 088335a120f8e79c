package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TribalScore_Go/internal/standings"
)

// StandingsHandler serves the read-only scoring views
type StandingsHandler struct {
	service standings.Service
}

// NewStandingsHandler creates a new StandingsHandler
func NewStandingsHandler(service standings.Service) *StandingsHandler {
	return &StandingsHandler{service: service}
}

// HandleGetLeaderboard returns every user ranked by team total
// @Summary Get leaderboard
// @Description Users ranked by total points (captain bonuses, rank bonuses, corrections and add penalties applied). Tied totals share a rank.
// @Tags standings
// @Produce json
// @Success 200 {array} domain.UserStanding
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *StandingsHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		respondServiceError(w, r, "get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}

// HandleGetTeam returns one user's team score with per-episode breakdowns
// @Summary Get team score
// @Tags standings
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.TeamScore
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/teams/{userID} [get]
func (h *StandingsHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.service.GetTeam(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		respondServiceError(w, r, "get team", err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// HandleGetContestantPoints returns a contestant's season breakdown
// @Summary Get contestant points
// @Description Per-episode breakdown for a contestant with stored corrections applied
// @Tags standings
// @Produce json
// @Param contestantID path string true "Contestant ID"
// @Success 200 {object} domain.ContestantSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/contestants/{contestantID}/points [get]
func (h *StandingsHandler) HandleGetContestantPoints(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetContestantPoints(r.Context(), chi.URLParam(r, "contestantID"))
	if err != nil {
		respondServiceError(w, r, "get contestant points", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

package handler

import (
	"net/http"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/pricing"
)

// PricesHandler serves and recomputes contestant prices
type PricesHandler struct {
	service pricing.Service
}

// NewPricesHandler creates a new PricesHandler
func NewPricesHandler(service pricing.Service) *PricesHandler {
	return &PricesHandler{service: service}
}

// RecomputePricesRequest selects where a recompute starts. An episode with
// Only set rewrites that episode alone.
type RecomputePricesRequest struct {
	FromEpisode int  `json:"from_episode" validate:"min=1"`
	Only        bool `json:"only"`
}

// RecomputePricesResponse reports what a recompute wrote
type RecomputePricesResponse struct {
	Message     string              `json:"message"`
	FromEpisode int                 `json:"from_episode"`
	Points      int                 `json:"points"`
	Prices      []domain.PricePoint `json:"prices,omitempty"`
}

// HandleGetPrices returns every contestant's price after an episode
// @Summary Get contestant prices
// @Tags pricing
// @Produce json
// @Param episode query int true "Episode number"
// @Success 200 {array} domain.PricePoint
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/prices [get]
func (h *PricesHandler) HandleGetPrices(w http.ResponseWriter, r *http.Request) {
	episode, ok := episodeQueryParam(w, r)
	if !ok {
		return
	}
	prices, err := h.service.GetPrices(r.Context(), episode)
	if err != nil {
		respondServiceError(w, r, "get prices", err)
		return
	}
	if prices == nil {
		prices = []domain.PricePoint{}
	}
	respondJSON(w, http.StatusOK, prices)
}

// HandleRecomputePrices rewrites the price series
// @Summary Recompute prices
// @Description Rewrites prices from an episode onward, or a single episode when only is set (fails with 409 if the previous episode has no prices)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RecomputePricesRequest true "Recompute range"
// @Success 200 {object} RecomputePricesResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/prices/recompute [post]
func (h *PricesHandler) HandleRecomputePrices(w http.ResponseWriter, r *http.Request) {
	var req RecomputePricesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recompute prices"); err != nil {
		return
	}

	resp := RecomputePricesResponse{Message: MsgPricesRecomputed, FromEpisode: req.FromEpisode}
	if req.Only {
		points, err := h.service.RecomputeEpisode(r.Context(), req.FromEpisode)
		if err != nil {
			respondServiceError(w, r, "recompute episode prices", err)
			return
		}
		resp.Points = len(points)
		resp.Prices = points
	} else {
		n, err := h.service.RecomputeFrom(r.Context(), req.FromEpisode)
		if err != nil {
			respondServiceError(w, r, "recompute prices", err)
			return
		}
		resp.Points = n
	}
	respondJSON(w, http.StatusOK, resp)
}

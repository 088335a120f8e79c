package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/TribalScore_Go/internal/database"
	"github.com/osse101/TribalScore_Go/internal/logger"
)

// ReadinessTimeout bounds each dependency check behind /readyz
const ReadinessTimeout = 2 * time.Second

// CheckDatabase names the postgres check in readiness responses
const CheckDatabase = "database"

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports that the process is up. It touches no dependencies.
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz pings postgres; the engine cannot score or price without it.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: HealthStatusOK, Checks: map[string]string{CheckDatabase: HealthStatusOK}}
		status := http.StatusOK

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "check", CheckDatabase, "error", err)
			resp.Status = HealthStatusUnavailable
			resp.Message = ErrMsgServiceUnavailable
			resp.Checks[CheckDatabase] = HealthStatusUnavailable
			status = http.StatusServiceUnavailable
		}

		respondJSON(w, status, resp)
	}
}

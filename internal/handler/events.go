package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/TribalScore_Go/internal/eventlog"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// EventLogHandler serves the audit trail of scoring events
type EventLogHandler struct {
	service eventlog.Service
}

// NewEventLogHandler creates a new EventLogHandler
func NewEventLogHandler(service eventlog.Service) *EventLogHandler {
	return &EventLogHandler{service: service}
}

// HandleListEvents returns logged events, newest first
// @Summary List audit events
// @Tags admin
// @Produce json
// @Param type query string false "Event type, e.g. overrides.changed"
// @Param episode query int false "Episode number"
// @Param since query string false "RFC 3339 lower bound"
// @Param limit query int false "Maximum events (default 100, max 1000)"
// @Success 200 {array} repository.EventLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/events [get]
func (h *EventLogHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter repository.EventLogFilter

	if t := q.Get("type"); t != "" {
		filter.EventType = &t
	}
	if raw := q.Get("episode"); raw != "" {
		episode, ok := parseEpisode(w, raw)
		if !ok {
			return
		}
		filter.Episode = &episode
	}
	if raw := q.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSinceParam)
			return
		}
		filter.Since = &since
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitParam)
			return
		}
		filter.Limit = limit
	}

	events, err := h.service.ListEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "list events", err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TribalScore_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req CategoryOverrideRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set category override"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// episodeURLParam parses the {episode} path parameter. It writes a 400 and
// returns false when the value is not a positive integer.
func episodeURLParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	return parseEpisode(w, chi.URLParam(r, "episode"))
}

// episodeQueryParam parses a required ?episode= query parameter
func episodeQueryParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("episode")
	if raw == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, "param", "episode")
	}
	return parseEpisode(w, raw)
}

func parseEpisode(w http.ResponseWriter, raw string) (int, bool) {
	episode, err := strconv.Atoi(raw)
	if err != nil || episode < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidEpisodeParam)
		return 0, false
	}
	return episode, true
}

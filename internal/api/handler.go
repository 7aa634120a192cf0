// Package api is the HTTP surface: thin handlers over the services, JSON in
// and out.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
	"github.com/studyloop/backend/internal/domain/recap"
	"github.com/studyloop/backend/internal/domain/teststats"
	"github.com/studyloop/backend/internal/service"
	"github.com/studyloop/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store   *store.Store
	results *service.ResultsService
	review  *service.ReviewService
	recap   *service.RecapService
	mastery *service.MasteryService
	stats   *service.StatisticsService
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	s *store.Store,
	results *service.ResultsService,
	review *service.ReviewService,
	recapSvc *service.RecapService,
	mastery *service.MasteryService,
	stats *service.StatisticsService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:   s,
		results: results,
		review:  review,
		recap:   recapSvc,
		mastery: mastery,
		stats:   stats,
		logger:  logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleError maps the sentinel errors to HTTP statuses and writes the
// response. Returns true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, multiplechoice.ErrInvalidTaskDefinition),
		errors.Is(err, recap.ErrInvalidQuery),
		errors.Is(err, teststats.ErrInvalidMaxScore):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, teststats.ErrTestNotYetHeld):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("internal error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

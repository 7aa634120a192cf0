package api

import (
	"net/http"
	"time"

	"github.com/studyloop/backend/internal/id"
	"github.com/studyloop/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	UserID      string   `json:"user_id"`
	TestID      *string  `json:"test_id,omitempty"`
	SubtopicIDs []string `json:"subtopic_ids"`
}

type NextTaskResponse struct {
	Task *store.Task `json:"task"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession opens a practice or test session.
// @Summary      Create a session
// @Description  Opens a session scoped to the given subtopics. Spaced-review task selection draws from these subtopics only.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session to create"
// @Success      201   {object}  store.Session
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session := &store.Session{
		ID:        id.GenerateID(),
		UserID:    req.UserID,
		TestID:    req.TestID,
		CreatedAt: time.Now(),
	}
	if err := h.store.SaveSession(session, req.SubtopicIDs); h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// getSession fetches a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  store.Session
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.GetSession(r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// endSession closes a session.
// @Summary      End a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID}/end [post]
func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	err := h.store.EndSession(r.PathValue("sessionID"), time.Now())
	if h.handleError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nextReviewTask serves the most overdue task of the session's subtopics.
// @Summary      Get the next spaced-review task
// @Description  Picks the most overdue task within the session's subtopics. A null task means nothing is due and the client should fall back to ordinary selection.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        user_id    query     string  true  "User ID"
// @Success      200        {object}  NextTaskResponse
// @Failure      400        {object}  map[string]string
// @Router       /sessions/{sessionID}/tasks/next [get]
func (h *Handler) nextReviewTask(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	task, err := h.review.NextReviewTask(userID, sessionID)
	if h.handleError(w, err, "task") {
		return
	}

	respondJSON(w, http.StatusOK, NextTaskResponse{Task: task})
}

// sessionResults rolls a session's scores up per topic.
// @Summary      Get a session's results per topic
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {array}   teststats.TopicResult
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/results [get]
func (h *Handler) sessionResults(w http.ResponseWriter, r *http.Request) {
	topics, err := h.stats.SessionTopicResults(r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, topics)
}

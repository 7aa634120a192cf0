package api

import (
	"net/http"
	"time"

	"github.com/studyloop/backend/internal/domain/result"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitMultipleChoiceRequest struct {
	UserID    string   `json:"user_id"`
	TaskID    string   `json:"task_id"`
	ChoiceIDs []string `json:"choice_ids"`
	TimeUsed  *float64 `json:"time_used,omitempty"`
}

type SubmitScoreRequest struct {
	UserID    string   `json:"user_id"`
	TaskID    string   `json:"task_id"`
	SessionID *string  `json:"session_id,omitempty"`
	Score     float64  `json:"score"`
	TimeUsed  *float64 `json:"time_used,omitempty"`
}

type OverrideScoreRequest struct {
	Score float64 `json:"score"`
}

type ResultResponse struct {
	Result           *result.Result `json:"result"`
	DaysUntilRevisit *int           `json:"days_until_revisit,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitMultipleChoice scores a multiple-choice submission.
// @Summary      Submit a multiple-choice answer
// @Description  Evaluates the selected choices, stores the per-choice answers, and records the result. Resubmitting within the same session overwrites the earlier result.
// @Tags         Results
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                       true  "Session ID"
// @Param        body       body      SubmitMultipleChoiceRequest  true  "Selected choices"
// @Success      201        {object}  service.Submission
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/answers/multiple-choice [post]
func (h *Handler) submitMultipleChoice(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SubmitMultipleChoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.TaskID == "" {
		respondError(w, http.StatusBadRequest, "user_id and task_id are required")
		return
	}

	submission, err := h.results.SubmitMultipleChoice(req.UserID, sessionID, req.TaskID, req.ChoiceIDs, req.TimeUsed)
	if h.handleError(w, err, "task") {
		return
	}

	respondJSON(w, http.StatusCreated, submission)
}

// submitScore records an externally scored outcome.
// @Summary      Record an externally scored result
// @Description  Stores a result for tasks scored outside the service, e.g. self-rated flashcards. The score is clamped to [0,1].
// @Tags         Results
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitScoreRequest  true  "Scored outcome"
// @Success      201   {object}  ResultResponse
// @Failure      400   {object}  map[string]string
// @Router       /results [post]
func (h *Handler) submitScore(w http.ResponseWriter, r *http.Request) {
	var req SubmitScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.TaskID == "" {
		respondError(w, http.StatusBadRequest, "user_id and task_id are required")
		return
	}

	stored, err := h.results.SubmitScore(req.UserID, req.TaskID, req.SessionID, req.Score, req.TimeUsed)
	if h.handleError(w, err, "result") {
		return
	}

	respondJSON(w, http.StatusCreated, resultResponse(stored))
}

// overrideScore hand-sets the score of a stored result.
// @Summary      Override a result's score
// @Description  Operator override: the score is clamped, the revisit date recomputed, and the result marked manual.
// @Tags         Results
// @Accept       json
// @Produce      json
// @Param        resultID  path      string                true  "Result ID"
// @Param        body      body      OverrideScoreRequest  true  "New score"
// @Success      200       {object}  ResultResponse
// @Failure      404       {object}  map[string]string
// @Router       /results/{resultID}/score [patch]
func (h *Handler) overrideScore(w http.ResponseWriter, r *http.Request) {
	resultID := r.PathValue("resultID")

	var req OverrideScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stored, err := h.results.OverrideScore(resultID, req.Score)
	if h.handleError(w, err, "result") {
		return
	}

	respondJSON(w, http.StatusOK, resultResponse(stored))
}

// resultOverview sums a user's lifetime results.
// @Summary      Get a user's result overview
// @Tags         Results
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  store.ResultOverview
// @Failure      500     {object}  map[string]string
// @Router       /users/{userID}/results/overview [get]
func (h *Handler) resultOverview(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	overview, err := h.results.Overview(userID)
	if h.handleError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

func resultResponse(stored *result.Result) ResultResponse {
	return ResultResponse{
		Result:           stored,
		DaysUntilRevisit: stored.DaysUntilRevisit(time.Now()),
	}
}

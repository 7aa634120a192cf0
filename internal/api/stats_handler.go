package api

import (
	"net/http"
	"time"
)

// endTest closes a subject test, making its statistics available.
// @Summary      End a subject test
// @Tags         Tests
// @Produce      json
// @Param        testID  path  string  true  "Test ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID}/end [post]
func (h *Handler) endTest(w http.ResponseWriter, r *http.Request) {
	err := h.store.EndTest(r.PathValue("testID"), time.Now())
	if h.handleError(w, err, "test") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// testStatistics builds the report over a closed test.
// @Summary      Get test statistics
// @Description  Choice histograms per task, the average score, and the score distribution. Only available once the test has ended.
// @Tags         Tests
// @Produce      json
// @Param        testID  path      string  true  "Test ID"
// @Success      200     {object}  service.TestStatistics
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string  "test not yet held"
// @Router       /tests/{testID}/statistics [get]
func (h *Handler) testStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.TestStatistics(r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// detailedTestResults lists every participant's total score.
// @Summary      Get detailed test results
// @Description  Per-user totals against the test's maximum score, best first. Only available once the test has ended.
// @Tags         Tests
// @Produce      json
// @Param        testID  path      string  true  "Test ID"
// @Success      200     {array}   teststats.UserResult
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string  "test not yet held"
// @Router       /tests/{testID}/results [get]
func (h *Handler) detailedTestResults(w http.ResponseWriter, r *http.Request) {
	users, err := h.stats.DetailedUserResults(r.PathValue("testID"))
	if h.handleError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, users)
}

package api

import "net/http"

// RegisterRoutes attaches every handler to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/end", h.endSession)
	mux.HandleFunc("GET /sessions/{sessionID}/tasks/next", h.nextReviewTask)
	mux.HandleFunc("GET /sessions/{sessionID}/results", h.sessionResults)

	// Results
	mux.HandleFunc("POST /sessions/{sessionID}/answers/multiple-choice", h.submitMultipleChoice)
	mux.HandleFunc("POST /results", h.submitScore)
	mux.HandleFunc("PATCH /results/{resultID}/score", h.overrideScore)
	mux.HandleFunc("GET /users/{userID}/results/overview", h.resultOverview)

	// Recommendations
	mux.HandleFunc("GET /users/{userID}/recaps", h.recommendedRecaps)
	mux.HandleFunc("GET /users/{userID}/subjects/{subjectID}/mastery", h.subjectMastery)

	// Tests
	mux.HandleFunc("POST /tests/{testID}/end", h.endTest)
	mux.HandleFunc("GET /tests/{testID}/statistics", h.testStatistics)
	mux.HandleFunc("GET /tests/{testID}/results", h.detailedTestResults)
}

package api

import (
	"net/http"
	"strconv"

	"github.com/studyloop/backend/internal/domain/recap"
)

const defaultRecapLimit = 10

// recommendedRecaps ranks the topics a user should revisit soon.
// @Summary      Get recommended recaps
// @Description  Topics whose tasks come up for review inside the [lower, upper] day window, ranked by soonest revisit. Negative lower bounds reach into the past.
// @Tags         Recommendations
// @Produce      json
// @Param        userID  path      string  true   "User ID"
// @Param        lower   query     int     false  "Window lower bound in days (default 0)"
// @Param        upper   query     int     false  "Window upper bound in days (default 7)"
// @Param        limit   query     int     false  "Maximum number of topics (default 10)"
// @Success      200     {array}   recap.RecommendedRecap
// @Failure      400     {object}  map[string]string
// @Router       /users/{userID}/recaps [get]
func (h *Handler) recommendedRecaps(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	window := recap.Window{LowerBoundDays: 0, UpperBoundDays: 7}
	limit := defaultRecapLimit

	query := r.URL.Query()
	if v := query.Get("lower"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "lower must be an integer")
			return
		}
		window.LowerBoundDays = n
	}
	if v := query.Get("upper"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "upper must be an integer")
			return
		}
		window.UpperBoundDays = n
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	recaps, err := h.recap.RecommendedRecaps(userID, window, limit)
	if h.handleError(w, err, "recap") {
		return
	}

	respondJSON(w, http.StatusOK, recaps)
}

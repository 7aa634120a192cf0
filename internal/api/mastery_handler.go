package api

import "net/http"

// subjectMastery reports the user's knowledge level in a subject.
// @Summary      Get a user's subject mastery
// @Description  The user's accumulated level in the subject with a per-topic breakdown. A user with no results gets a defined zero level.
// @Tags         Recommendations
// @Produce      json
// @Param        userID     path      string  true  "User ID"
// @Param        subjectID  path      string  true  "Subject ID"
// @Success      200        {object}  service.SubjectMastery
// @Failure      500        {object}  map[string]string
// @Router       /users/{userID}/subjects/{subjectID}/mastery [get]
func (h *Handler) subjectMastery(w http.ResponseWriter, r *http.Request) {
	level, err := h.mastery.SubjectMastery(r.PathValue("userID"), r.PathValue("subjectID"))
	if h.handleError(w, err, "subject") {
		return
	}
	respondJSON(w, http.StatusOK, level)
}

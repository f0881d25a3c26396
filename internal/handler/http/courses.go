package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
	"github.com/go-chi/chi/v5"
)

// listCourses returns every course with its owner embedded.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// getCourse returns a single course with its owner embedded.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := courseIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	course, err := h.services.CourseService.Get(r.Context(), courseID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse persists a new course owned by the authenticated principal
// and points the Location header at it.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		accessDenied(w)
		return
	}

	var input models.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Msg("malformed course creation body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.services.CourseService.Create(r.Context(), principal, input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", created.CourseID))
	w.WriteHeader(http.StatusCreated)
}

// updateCourse applies a partial update to a course owned by the
// authenticated principal. A request without a body is rejected outright:
// a blank update must never reach storage.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		accessDenied(w)
		return
	}

	courseID, ok := courseIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var input models.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			log.Warn().Msg("course update without a body")
		} else {
			log.Warn().Err(err).Msg("malformed course update body")
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.services.CourseService.Update(r.Context(), principal, courseID, input); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse removes a course owned by the authenticated principal.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in request context")
		accessDenied(w)
		return
	}

	courseID, ok := courseIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.CourseService.Delete(r.Context(), principal, courseID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// courseIDFromRequest parses the {id} path parameter. A non-numeric id can
// never name a stored course, so callers treat a parse failure as not found.
func courseIDFromRequest(r *http.Request) (int64, bool) {
	courseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return courseID, true
}

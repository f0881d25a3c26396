package http

import (
	"encoding/json"
	"net/http"

	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
)

// userResponse wraps the principal for the current-user endpoint.
type userResponse struct {
	User models.User `json:"user"`
}

// getCurrentUser returns the authenticated principal with the password
// hash and timestamps stripped.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		// only reachable when the route is wired without the auth gate
		log.Error().Msg("no principal in request context")
		accessDenied(w)
		return
	}

	// re-load by primary key so the response reflects the stored record
	user, err := h.services.UserService.GetByID(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, userResponse{User: user.Public()}, http.StatusOK)
}

// createUser registers a new account. Registration is the one route that
// accepts a plaintext password; it is hashed exactly once inside the
// service before anything is stored.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Msg("malformed user creation body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := h.services.UserService.Register(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

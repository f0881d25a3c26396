package http

import (
	"errors"
	"net/http"

	"github.com/avelkin/courses-api/internal/service"
	"github.com/avelkin/courses-api/internal/store"
	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/internal/validators"
	"github.com/avelkin/courses-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrEmptyUpdate:        http.StatusBadRequest,

	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrCourseNotFound:   http.StatusNotFound,
	store.ErrNotCourseOwner:   http.StatusForbidden,
	store.ErrOwnerNotFound:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err according to the response contract:
//   - validation failures → 400 {"errors":[...]} with verbatim messages;
//   - mapped sentinels (forbidden, not found, empty update) → bare status,
//     empty body;
//   - everything else → 500 {"message":..., "error":{}} with a generic
//     message so storage internals never leak.
func writeError(w http.ResponseWriter, err error) {
	if vErr := validators.AsValidationError(err); vErr != nil {
		utils.WriteJSON(w, models.ErrorsResponse{Errors: vErr.Messages}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.WriteJSON(w, models.FaultResponse{Message: http.StatusText(status)}, status)
		return
	}

	w.WriteHeader(status)
}

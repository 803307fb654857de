package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrWrongCredentials:        http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
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

// writeError renders err as the API's JSON error body.
//
// Validation failures become 400 responses listing every violated rule as
// field:message pairs. Mapped sentinel errors keep their message; anything
// unmapped is a 500 with an opaque body so internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		_, _ = utils.WriteJSON(w, models.ValidationErrorResponse{Errors: fieldErrs.Fields()}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, status)
		return
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}

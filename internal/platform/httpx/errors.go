package httpx

import (
	"errors"
	"net/http"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// Unexpected errors surface as an opaque 500; callers log the detail.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrConflict):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid username or password")
	case errors.Is(err, shared.ErrInvalidToken):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
	case errors.Is(err, shared.ErrUnauthenticated):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

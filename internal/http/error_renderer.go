package httpx

import (
	"errors"
	"net/http"

	"github.com/eventdesk/admin-ui/internal/api"
	apperrors "github.com/eventdesk/admin-ui/internal/errors"
	"github.com/eventdesk/admin-ui/internal/optimistic"
)

// writeServiceError maps service and API errors to HTTP error responses
// with machine-readable codes. Validation details resolved at the API client
// boundary are passed through flattened.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, optimistic.ErrPendingEntity):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "pending_entity", Err: err})
	case errors.Is(err, optimistic.ErrMutationInFlight):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "mutation_in_flight", Err: err})
	case errors.Is(err, optimistic.ErrNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_error", Err: err})
	case apperrors.IsUnauthorized(err):
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: ReasonAuthenticationRequired, Err: err})
	case apperrors.IsCanceled(err):
		WriteError(w, ErrorParams{Code: http.StatusRequestTimeout, ErrCode: "canceled", Err: err})
	default:
		writeAPIError(w, err)
	}
}

func writeAPIError(w http.ResponseWriter, err error) {
	apiErr, ok := api.AsError(err)
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}

	switch {
	case apiErr.Status == 0:
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "api_unavailable", Err: err})
	case apiErr.IsAuthFailure():
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: ReasonAuthenticationRequired, Err: err})
	case apiErr.Status == http.StatusNotFound:
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
		WriteError(w, ErrorParams{
			Code:    http.StatusUnprocessableEntity,
			ErrCode: "validation_error",
			Err:     err,
			Details: apiErr.Validation.Flatten(),
		})
	default:
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "api_error", Err: err})
	}
}

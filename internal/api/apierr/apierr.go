// Package apierr is the single mapping from domain errors to what clients
// see. The REST error handler and the GraphQL resolvers both go through
// Resolve, so a condition gets the same status and message on either
// transport.
package apierr

import (
	"errors"
	"net/http"

	"github.com/voluntariados/backend/internal/core/domain"
)

// MsgInternal is shown for any error that is not a known domain condition.
// The real cause is logged, never returned.
const MsgInternal = "error interno del servidor"

// Resolve returns the HTTP status and client-safe message for err. known is
// false for backend failures, which callers should log.
func Resolve(err error) (status int, msg string, known bool) {
	var ee *domain.EntityError
	if errors.As(err, &ee) {
		return statusFor(ee.Kind), ee.Msg, true
	}

	// bare kinds, e.g. from a store used without a service
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrInvalidKey):
		return statusFor(err), err.Error(), true
	}

	return http.StatusInternalServerError, MsgInternal, false
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(kind, domain.ErrInvalidKey):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

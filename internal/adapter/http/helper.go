package http

import (
	"errors"
	"net/http"

	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/settings"
	"loanflow/internal/domain/user"
	"loanflow/internal/usecase/auth"
)

// ---- helpers ----

// statusFor maps domain errors to HTTP codes; everything unrecognized
// is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrGuarantorNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, settings.ErrLoanTypeNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrStatusNotAllowed):
		return http.StatusConflict
	case errors.Is(err, user.ErrPhoneTaken):
		return http.StatusConflict
	case errors.Is(err, auth.ErrLoginFailed):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func domainError(err error) (int, ErrorResponse) {
	return statusFor(err), ErrorResponse{Error: err.Error()}
}

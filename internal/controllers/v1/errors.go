package v1

import (
	"errors"
	"net/http"

	"github.com/gargantua-app/backend/internal/identity"
	"github.com/gargantua-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, identity.ErrNoUser) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Stats errors
var (
	errMonthCountInvalid = errors.New("the months parameter must be between 1 and 24")
	errDayCountInvalid   = errors.New("the days parameter must be between 1 and 366")
)

// Transaction errors
var (
	errTransactionTypeFilterInvalid = errors.New("the type parameter must be \"income\" or \"expense\"")
)

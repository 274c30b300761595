// Package server provides the HTTP REST API for the keyword insights engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/keyword-insights/internal/insights"
	"github.com/jonathan/keyword-insights/internal/schemas"
)

// ErrRunNotFound indicates the requested analysis run does not exist.
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPersistenceUnavailable indicates a persist request without a database.
type ErrPersistenceUnavailable struct{}

func (e *ErrPersistenceUnavailable) Error() string {
	return "persistence requested but no database is configured"
}

// ErrSummaryUnavailable indicates a summary request without an LLM client.
type ErrSummaryUnavailable struct{}

func (e *ErrSummaryUnavailable) Error() string {
	return "summary requested but no LLM client is configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *schemas.ValidationError
		contractErr   *insights.ContractViolationError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &contractErr):
		return http.StatusUnprocessableEntity
	}

	switch err.(type) {
	case *ErrRunNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrPersistenceUnavailable, *ErrSummaryUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

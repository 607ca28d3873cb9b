package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/meal-planner/internal/app"
	"github.com/jonathan/meal-planner/internal/generation"
	"github.com/jonathan/meal-planner/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error from an app command.
// Every generation failure maps to 502 so clients see a single failure mode.
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNoPlan):
		return http.StatusNotFound
	case errors.Is(err, generation.ErrBusy), errors.Is(err, app.ErrStalePlan):
		return http.StatusConflict
	}

	switch generation.Classify(err) {
	case "cancelled", "transport", "service", "parse":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

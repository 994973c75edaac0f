package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ko-stant/labyrinth-engine/internal/geometry"
	"github.com/Ko-stant/labyrinth-engine/internal/labyrinth"
)

// APIError is a build failure as reported to clients
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// toAPIError classifies a build error
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, labyrinth.ErrInvalidDimensions),
		errors.Is(err, labyrinth.ErrInvalidRoomCount),
		errors.Is(err, labyrinth.ErrRoomDoesNotFit),
		errors.Is(err, geometry.ErrZeroCellUnit),
		errors.Is(err, geometry.ErrZeroDirection):
		return &APIError{Code: "INVALID_CONFIG", Message: err.Error(), Status: http.StatusBadRequest}
	case errors.Is(err, labyrinth.ErrPlacementExhausted):
		return &APIError{Code: "PLACEMENT_EXHAUSTED", Message: err.Error(), Status: http.StatusUnprocessableEntity}
	case errors.Is(err, labyrinth.ErrNoDoors):
		return &APIError{Code: "NO_DOORS", Message: err.Error(), Status: http.StatusUnprocessableEntity}
	case errors.Is(err, labyrinth.ErrDisconnected):
		return &APIError{Code: "DISCONNECTED", Message: err.Error(), Status: http.StatusInternalServerError}
	}
	return &APIError{Code: "INTERNAL", Message: err.Error(), Status: http.StatusInternalServerError}
}

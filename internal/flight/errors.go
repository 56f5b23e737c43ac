package flight

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNoSearchCriteria is the only condition fatal to a results view.
	ErrNoSearchCriteria = errors.New("no search data provided")
	ErrLoading          = errors.New("results are still loading")
	ErrPromoLocked      = errors.New("promo code already applied")
	ErrFlightNotFound   = errors.New("flight not found")
)

type criteriaError struct {
	missing []string
}

func (e *criteriaError) Error() string {
	return "missing required parameters: " + strings.Join(e.missing, ", ")
}

func (e *criteriaError) Unwrap() error {
	return ErrNoSearchCriteria
}

// ValidationError is a recoverable, user-facing message. It blocks the next
// step but never aborts the flow.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	msgSelectBothLegs = "Please select both outbound and return flights."
	msgSelectFlight   = "Please select a flight."
)

type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// toAppError maps domain errors onto HTTP statuses; anything unknown is left as is.
func toAppError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	var validation *ValidationError
	switch {
	case errors.Is(err, ErrNoSearchCriteria):
		return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeMissingCriteria, Message: err.Error(), Err: err}
	case errors.As(err, &validation):
		return &AppError{Status: http.StatusUnprocessableEntity, Code: ErrorCodeValidation, Message: validation.Message, Err: err}
	case errors.Is(err, ErrPromoLocked), errors.Is(err, ErrLoading):
		return &AppError{Status: http.StatusConflict, Code: ErrorCodeValidation, Message: err.Error(), Err: err}
	case errors.Is(err, ErrFlightNotFound):
		return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: err.Error(), Err: err}
	}
	return err
}

package service

import (
	"context"
	"errors"
	"fmt"

	"postboard/pkg/logger"
)

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidID             = errors.New("invalid identifier")
	ErrNotFound              = errors.New("not found")
	ErrModerationRejected    = errors.New("content rejected by moderation")
	ErrModerationUnavailable = errors.New("moderation unavailable")
	ErrInternalError         = errors.New("internal error")
)

// ValidationError describes the first field that failed validation.
// It unwraps to ErrInvalidRequest or ErrInvalidID.
type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, kind: ErrInvalidRequest}
}

func invalidID(message string) *ValidationError {
	return &ValidationError{Field: "id", Message: message, kind: ErrInvalidID}
}

// storageError passes through errors the caller can act on and collapses
// everything else into ErrInternalError after logging the cause.
func storageError(ctx context.Context, op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrInvalidID) {
		return err
	}
	logger.FromContext(ctx).Error("storage failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %v", ErrInternalError, op, err)
}

package service

import "errors"

// Sentinel errors shared by the services. Handlers map these to HTTP statuses
// with errors.Is; everything else is treated as an internal failure.
var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Document protocol failures. Validation errors are raised before any
	// store call, so they are guaranteed side-effect free.
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrDeleteFailed     = errors.New("delete failed")
)

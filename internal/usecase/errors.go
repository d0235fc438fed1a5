package usecase

import "errors"

// Error taxonomy surfaced to callers. Use cases wrap these with detail via
// fmt.Errorf("%w: ...") so handlers can match with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrReference          = errors.New("reference error")
	ErrRender             = errors.New("render error")
	ErrReferenceInUse     = errors.New("referenced by existing payments")
	ErrAlreadyInitialized = errors.New("session already initialized")
)

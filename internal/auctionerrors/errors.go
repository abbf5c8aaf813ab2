package auctionerrors

import "errors"

// Expected, recoverable-by-caller error kinds. Layers wrap these with
// fmt.Errorf("...: %w - detail", ...) and the HTTP layer maps them with
// errors.Is; anything not matching one of them is an internal failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidState     = errors.New("invalid state")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
)

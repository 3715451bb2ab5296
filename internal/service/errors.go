package service

import "errors"

// All lifecycle failures are local, recoverable conditions: the operation
// declines to mutate state and reports back to the operator.
var (
	ErrInvalidDateRange   = errors.New("check-out date must be after check-in date")
	ErrInvalidTransition  = errors.New("operation not allowed in current booking status")
	ErrRoomUnavailable    = errors.New("room is occupied by another booking")
	ErrUnknownRoom        = errors.New("room is not in the catalog")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is deactivated")
)

package cli

import (
	"errors"

	"hoteldesk/internal/service"
)

// errorMessage maps sentinel errors to operator-facing text. Unknown errors
// get a generic line; the detail is in the log.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidDateRange):
		return "Check-out date must be after check-in date."
	case errors.Is(err, service.ErrInvalidTransition):
		return "That operation is not allowed for this booking's status."
	case errors.Is(err, service.ErrRoomUnavailable):
		return "That room is occupied by another booking."
	case errors.Is(err, service.ErrUnknownRoom):
		return "That room number is not in the catalog."
	case errors.Is(err, service.ErrNotFound):
		return "Record not found."
	case errors.Is(err, service.ErrDuplicateUsername):
		return "That username already exists."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, service.ErrAccountInactive):
		return "Account is deactivated. Please contact the owner."
	default:
		return "Something went wrong. Please try again or check the log."
	}
}

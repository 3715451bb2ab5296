package models

// Booking status values. Transitions only move forward:
// booked -> checked_in -> checked_out.
const (
	StatusBooked     = "booked"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

const (
	RoleOwner = "Owner"
	RoleStaff = "Staff"
)

const (
	// DateLayout is the calendar-day format used in prompts and store files.
	DateLayout = "2006-01-02"

	// DefaultOwnerUsername is created at startup when no owner account exists.
	DefaultOwnerUsername = "owner"

	// DefaultOwnerBackupUsername is the fallback owner created alongside it.
	DefaultOwnerBackupUsername = "ownerbackup"

	// DefaultOwnerPassword is the initial password for bootstrap owner accounts.
	DefaultOwnerPassword = "119964"
)

package errs

import "errors"

// Sentinel errors shared between the usecase layers and the HTTP surface.
var (
	// Not found
	ErrBusinessNotFound     = errors.New("business not found")
	ErrOfferingNotFound     = errors.New("offering not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrTimeOffNotFound      = errors.New("time off not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")

	// Conflicts
	ErrSlotTaken           = errors.New("slot already reserved")
	ErrBusinessUnavailable = errors.New("business unavailable during this time")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrNotPending          = errors.New("only pending reservations can be confirmed or rejected")
	ErrScheduleExists      = errors.New("business already has a schedule")

	// Authorization
	ErrForbidden = errors.New("actor is not allowed to perform this operation")

	// Validation
	ErrInvalidWorkingDay = errors.New("invalid working day configuration")
	ErrInvalidTimeOff    = errors.New("end time cannot be before start time")
	ErrInvalidWindow     = errors.New("view window end must be after start")

	// Operation failures
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

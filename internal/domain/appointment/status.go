package appointment

import "github.com/reservly/booking-platform/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition guards
// ===============================

// CanAccept: pending -> scheduled.
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete: scheduled -> completed.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanCancel: any non-terminal -> cancelled. Cancelling twice fails.
func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanReschedule: date/time/notes edits are allowed while non-terminal.
func CanReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// InitialStatus: a user booking starts pending; a company booking on
// behalf of a walk-in is treated as pre-accepted.
func InitialStatus(byCompany bool) Status {
	if byCompany {
		return StatusScheduled
	}
	return StatusPending
}

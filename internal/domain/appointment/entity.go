package appointment

import (
	"time"

	"github.com/reservly/booking-platform/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(ap *models.Appointment) error {
	if err := CanAccept(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusScheduled)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Reschedule edits date/time/notes in place. Status never changes here.
func Reschedule(ap *models.Appointment, date, timeOfDay, notes string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	if date != "" {
		ap.AppointmentDate = date
	}
	if timeOfDay != "" {
		ap.AppointmentTime = timeOfDay
	}
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}

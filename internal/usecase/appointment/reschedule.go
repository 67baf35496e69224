package appointment

import (
	"context"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint

	Date  string
	Time  string
	Notes string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute edits date/time/notes on a non-terminal appointment. Moving
// the slot re-runs the availability check; status is never touched.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if err := validators.ValidateAppointmentInput(in.Date, in.Time, in.Notes, true); err != nil {
		return nil, err
	}

	ap, err := loadAuthorized(ctx, uc.repo, actor, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	newDate := ap.AppointmentDate
	if in.Date != "" {
		newDate = in.Date
	}
	newTime := ap.AppointmentTime
	if in.Time != "" {
		newTime = in.Time
	}

	slotMoved := newDate != ap.AppointmentDate || newTime != ap.AppointmentTime
	if slotMoved {
		free, err := isSlotFree(ctx, uc.repo, ap.CompanyID, ap.ServiceID, newDate, newTime)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
		}
	}

	if err := domain.Reschedule(ap, in.Date, in.Time, in.Notes); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: ap.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_rescheduled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

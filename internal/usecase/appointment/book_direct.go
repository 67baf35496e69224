package appointment

import (
	"context"

	"github.com/reservly/booking-platform/internal/audit"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

type BookDirectAppointmentInput struct {
	CompanyID uint
	ServiceID uint

	ClientName  string
	ClientEmail string

	Date  string
	Time  string
	Notes string
}

// BookDirectAppointment is walk-in intake: the company books on behalf
// of a client and the appointment starts scheduled (pre-accepted).
type BookDirectAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookDirectAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookDirectAppointment {
	return &BookDirectAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookDirectAppointment) Execute(
	ctx context.Context,
	in BookDirectAppointmentInput,
) (*models.Appointment, error) {

	if err := validators.ValidateAppointmentInput(in.Date, in.Time, in.Notes, false); err != nil {
		return nil, err
	}

	company, service, err := loadBookableTarget(ctx, uc.repo, in.CompanyID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateWalkInUser(ctx, in.ClientName, in.ClientEmail)
	if err != nil {
		return nil, err
	}

	if free, err := isSlotFree(ctx, uc.repo, company.ID, service.ID, in.Date, in.Time); err != nil {
		return nil, err
	} else if !free {
		return nil, httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
	}

	ap := &models.Appointment{
		CompanyID:       company.ID,
		UserID:          client.ID,
		ServiceID:       service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Notes:           in.Notes,
		Status:          string(domain.InitialStatus(true)),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: company.ID,
		UserID:    &client.ID,
		Action:    "appointment_booked_direct",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

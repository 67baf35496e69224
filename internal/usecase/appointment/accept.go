package appointment

import (
	"context"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/models"
)

type AcceptAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcceptAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AcceptAppointment {
	return &AcceptAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AcceptAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := loadAuthorized(ctx, uc.repo, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Accept(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: ap.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_accepted",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

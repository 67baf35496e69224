package appointment

import (
	"context"
	"time"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels a non-terminal appointment. A second cancel is a
// state conflict, not a silent no-op.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor authz.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := loadAuthorized(ctx, uc.repo, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: ap.CompanyID,
		UserID:    &actor.UserID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

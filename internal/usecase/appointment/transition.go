package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

// loadAuthorized fetches the appointment and applies the ownership
// matrix. An appointment that exists but is out of scope comes back as
// forbidden, never as not found.
func loadAuthorized(
	ctx context.Context,
	repo domain.Repository,
	actor authz.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if !authz.CanAccessAppointment(actor, ap) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return ap, nil
}

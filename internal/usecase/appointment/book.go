package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/audit"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID    uint
	CompanyID uint
	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment is the end-user booking path. The resulting
// appointment starts pending and waits for the company to accept.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if err := validators.ValidateAppointmentInput(in.Date, in.Time, in.Notes, false); err != nil {
		return nil, err
	}

	company, service, err := loadBookableTarget(ctx, uc.repo, in.CompanyID, in.ServiceID)
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
		UserID:          in.UserID,
		ServiceID:       service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Notes:           in.Notes,
		Status:          string(domain.InitialStatus(false)),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: company.ID,
		UserID:    &in.UserID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

// ======================================================
// SHARED PRECONDITIONS
// ======================================================

// loadBookableTarget enforces the creation preconditions: the company
// exists and is active, the service belongs to it and is itself active.
func loadBookableTarget(
	ctx context.Context,
	repo domain.Repository,
	companyID uint,
	serviceID uint,
) (*models.Company, *models.Service, error) {

	company, err := repo.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrBusiness("company_not_found")
		}
		return nil, nil, err
	}

	if company.Status != models.CompanyActive {
		return nil, nil, httperr.ErrBusiness(httperr.CodeCompanyInactive)
	}

	service, err := repo.GetService(ctx, companyID, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, nil, err
	}

	if service.Status != models.ServiceActive {
		return nil, nil, httperr.ErrBusiness("service_not_available")
	}

	return company, service, nil
}

func isSlotFree(
	ctx context.Context,
	repo domain.Repository,
	companyID uint,
	serviceID uint,
	date string,
	timeOfDay string,
) (bool, error) {
	count, err := repo.CountActiveAt(ctx, companyID, serviceID, date, timeOfDay)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

package appointment

import (
	"context"

	"github.com/reservly/booking-platform/internal/models"
)

type Repository interface {
	// -------- Company --------
	GetCompanyByID(
		ctx context.Context,
		id uint,
	) (*models.Company, error)

	GetCompanyByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Company, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		companyID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Walk-in intake --------
	GetOrCreateWalkInUser(
		ctx context.Context,
		name string,
		email string,
	) (*models.User, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts after re-checking the slot inside a
	// transaction; a lost race returns CodeSlotNotAvailable.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CountActiveAt counts non-terminal appointments for the exact
	// (company, service, date, time) tuple.
	CountActiveAt(
		ctx context.Context,
		companyID uint,
		serviceID uint,
		date string,
		timeOfDay string,
	) (int64, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListActiveTimes(
		ctx context.Context,
		companyID uint,
		serviceID uint,
		date string,
	) ([]string, error)

	// -------- Listings --------
	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListByCompanyAndDate(
		ctx context.Context,
		companyID uint,
		date string,
	) ([]models.Appointment, error)

	ListByCompanyAndMonth(
		ctx context.Context,
		companyID uint,
		month string,
	) ([]models.Appointment, error)
}

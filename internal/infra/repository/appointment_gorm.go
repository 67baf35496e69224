package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusScheduled),
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Company
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *AppointmentGormRepository) GetCompanyByUserID(
	ctx context.Context,
	userID uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	companyID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", serviceID, companyID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Walk-in intake
// --------------------------------------------------

// GetOrCreateWalkInUser backs direct booking by a company: the walk-in
// gets a regular user record keyed by email, with an unusable password
// hash so the account cannot log in until a real registration claims it.
func (r *AppointmentGormRepository) GetOrCreateWalkInUser(
	ctx context.Context,
	name string,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err == nil {
		return &user, nil
	}

	user = models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "walkin:" + uuid.NewString(),
		Role:         models.RoleUser,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveAt(
	ctx context.Context,
	companyID uint,
	serviceID uint,
	date string,
	timeOfDay string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"company_id = ? AND service_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			companyID, serviceID, date, timeOfDay, activeStatuses,
		).
		Count(&count).Error
	return count, err
}

// CreateAppointment re-checks the slot under a row lock inside a
// transaction, then inserts. The partial unique index on active slots
// backstops anything the lock misses; both paths surface as
// slot_not_available.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"company_id = ? AND service_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
				ap.CompanyID, ap.ServiceID, ap.AppointmentDate, ap.AppointmentTime, activeStatuses,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		// A reschedule can collide with the active-slot index too.
		return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
	}
	return err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveTimes(
	ctx context.Context,
	companyID uint,
	serviceID uint,
	date string,
) ([]string, error) {

	var times []string
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"company_id = ? AND service_id = ? AND appointment_date = ? AND status IN ?",
			companyID, serviceID, date, activeStatuses,
		).
		Pluck("appointment_time", &times).Error
	return times, err
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *AppointmentGormRepository) ListByCompanyAndDate(
	ctx context.Context,
	companyID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("company_id = ? AND appointment_date = ?", companyID, date).
		Order("appointment_time ASC").
		Find(&aps).Error
	return aps, err
}

func (r *AppointmentGormRepository) ListByCompanyAndMonth(
	ctx context.Context,
	companyID uint,
	month string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("company_id = ? AND appointment_date LIKE ?", companyID, month+"%").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error
	return aps, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/domain/billing"
	"github.com/reservly/booking-platform/internal/models"
)

var billableStatuses = []string{"completed", "scheduled"}

type BillingGormRepository struct {
	db *gorm.DB
}

func NewBillingGormRepository(db *gorm.DB) *BillingGormRepository {
	return &BillingGormRepository{db: db}
}

func (r *BillingGormRepository) ListChargeRows(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]billing.ChargeRow, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.id AS appointment_id,
            appointments.company_id,
            companies.name AS company_name,
            services.name AS service_name,
            services.price AS service_price,
            appointments.appointment_date AS date,
            appointments.status`).
		Joins("JOIN companies ON companies.id = appointments.company_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status IN ?", billableStatuses)

	if startDate != "" {
		q = q.Where("appointments.appointment_date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("appointments.appointment_date <= ?", endDate)
	}

	var rows []billing.ChargeRow
	err := q.Order("appointments.appointment_date ASC, appointments.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *BillingGormRepository) ListCompanyChargeRows(
	ctx context.Context,
	companyID uint,
	month string,
) ([]billing.ChargeRow, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.id AS appointment_id,
            appointments.company_id,
            companies.name AS company_name,
            services.name AS service_name,
            services.price AS service_price,
            appointments.appointment_date AS date,
            appointments.status`).
		Joins("JOIN companies ON companies.id = appointments.company_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.company_id = ? AND appointments.status IN ?", companyID, billableStatuses)

	if month != "" {
		q = q.Where("appointments.appointment_date LIKE ?", month+"%")
	}

	var rows []billing.ChargeRow
	err := q.Order("appointments.appointment_date ASC, appointments.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *BillingGormRepository) SumCommissionPaid(
	ctx context.Context,
	companyID uint,
	month string,
) (float64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.CommissionPayment{}).
		Where("company_id = ?", companyID)

	if month != "" {
		q = q.Where("period_month = ?", month)
	}

	var total float64
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *BillingGormRepository) CreateCommissionPayment(
	ctx context.Context,
	payment *models.CommissionPayment,
) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Compile-time check
var _ billing.Repository = (*BillingGormRepository)(nil)

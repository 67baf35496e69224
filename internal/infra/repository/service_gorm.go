package repository

import (
	"context"

	"gorm.io/gorm"

	domainService "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceGormRepository) ListByCompany(
	ctx context.Context,
	companyID uint,
	status models.ServiceStatus,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var services []models.Service
	err := q.Order("id ASC").Find(&services).Error
	return services, err
}

func (r *ServiceGormRepository) CountAppointments(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}

func (r *ServiceGormRepository) Save(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Delete(service).Error
}

// Compile-time check
var _ domainService.Repository = (*ServiceGormRepository)(nil)

package service

import (
	"context"

	"github.com/reservly/booking-platform/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// ListByCompany returns the company's services, every status when
	// status is empty.
	ListByCompany(
		ctx context.Context,
		companyID uint,
		status models.ServiceStatus,
	) ([]models.Service, error)

	// CountAppointments counts every appointment referencing the
	// service, terminal ones included. History blocks hard deletion.
	CountAppointments(
		ctx context.Context,
		serviceID uint,
	) (int64, error)

	Save(
		ctx context.Context,
		service *models.Service,
	) error

	Delete(
		ctx context.Context,
		service *models.Service,
	) error
}

package appointment

import (
	"context"

	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListByUser(ctx, userID)
}

func (uc *ListAppointments) ForCompanyDate(
	ctx context.Context,
	companyID uint,
	date string,
) ([]models.Appointment, error) {
	return uc.repo.ListByCompanyAndDate(ctx, companyID, date)
}

func (uc *ListAppointments) ForCompanyMonth(
	ctx context.Context,
	companyID uint,
	month string,
) ([]models.Appointment, error) {
	return uc.repo.ListByCompanyAndMonth(ctx, companyID, month)
}

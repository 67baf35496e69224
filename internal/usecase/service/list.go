package service

import (
	"context"

	domain "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute lists the company's services. An empty status shows
// everything; status=active|archived narrows.
func (uc *ListServices) Execute(
	ctx context.Context,
	companyID uint,
	status string,
) ([]models.Service, error) {

	if status != "" && !models.ServiceStatus(status).Valid() {
		return nil, validators.FieldErrors{"status": "status must be active or archived"}
	}

	return uc.repo.ListByCompany(ctx, companyID, models.ServiceStatus(status))
}

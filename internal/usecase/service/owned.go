package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

// loadOwned fetches the service and applies company scope. A service
// that exists outside the actor's company comes back forbidden, never
// as not found.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	actor authz.Actor,
	serviceID uint,
) (*models.Service, error) {

	svc, err := repo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	if !authz.OwnsCompanyResource(actor, svc.CompanyID) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return svc, nil
}

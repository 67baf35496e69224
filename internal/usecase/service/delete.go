package service

import (
	"context"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/httperr"
)

// DeleteService hard-deletes a service, but only while no appointment
// references it. With history present the caller gets a conflict and
// must archive instead. Policy, not a DB constraint.
type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	actor authz.Actor,
	serviceID uint,
) error {

	svc, err := loadOwned(ctx, uc.repo, actor, serviceID)
	if err != nil {
		return err
	}

	count, err := uc.repo.CountAppointments(ctx, svc.ID)
	if err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeHasAppointments)
	}

	if err := uc.repo.Delete(ctx, svc); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: svc.CompanyID,
		UserID:    &actor.UserID,
		Action:    "service_deleted",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	return nil
}

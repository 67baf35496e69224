package service

import (
	"context"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/models"
)

// ArchiveService is the soft delete. It is always allowed, appointment
// history or not: the service stops being offered for new bookings but
// every record referencing it stays intact.
type ArchiveService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewArchiveService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ArchiveService {
	return &ArchiveService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ArchiveService) Execute(
	ctx context.Context,
	actor authz.Actor,
	serviceID uint,
) (*models.Service, error) {

	svc, err := loadOwned(ctx, uc.repo, actor, serviceID)
	if err != nil {
		return nil, err
	}

	svc.Status = models.ServiceArchived

	if err := uc.repo.Save(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: svc.CompanyID,
		UserID:    &actor.UserID,
		Action:    "service_archived",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	return svc, nil
}

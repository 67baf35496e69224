package appointment

import (
	"context"

	domain "github.com/reservly/booking-platform/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute enumerates the fixed slot grid for one company/service/date
// and filters out slots already held by a non-terminal appointment.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if _, _, err := loadBookableTarget(ctx, uc.repo, in.CompanyID, in.ServiceID); err != nil {
		return nil, err
	}

	busy, err := uc.repo.ListActiveTimes(ctx, in.CompanyID, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(busy), nil
}

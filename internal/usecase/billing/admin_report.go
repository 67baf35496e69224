package billing

import (
	"context"

	domain "github.com/reservly/booking-platform/internal/domain/billing"
	"github.com/reservly/booking-platform/internal/validators"
)

type AdminReport struct {
	Companies []domain.CompanyTotals `json:"companies"`
	Summary   domain.PlatformSummary `json:"summary"`
}

// AdminBillingReport aggregates billable appointments platform-wide,
// grouped per company and ordered by commission. Derived on read, never
// stored.
type AdminBillingReport struct {
	repo domain.Repository
}

func NewAdminBillingReport(repo domain.Repository) *AdminBillingReport {
	return &AdminBillingReport{repo: repo}
}

func (uc *AdminBillingReport) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
) (*AdminReport, error) {

	errs := validators.FieldErrors{}
	if startDate != "" && !validators.ValidDate(startDate) {
		errs["start_date"] = "start_date must be formatted as 2006-01-02"
	}
	if endDate != "" && !validators.ValidDate(endDate) {
		errs["end_date"] = "end_date must be formatted as 2006-01-02"
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListChargeRows(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	companies := domain.AggregateByCompany(rows)

	return &AdminReport{
		Companies: companies,
		Summary:   domain.Summarize(companies),
	}, nil
}

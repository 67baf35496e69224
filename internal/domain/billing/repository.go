package billing

import (
	"context"

	"github.com/reservly/booking-platform/internal/models"
)

type Repository interface {
	// ListChargeRows returns billable appointments (status completed or
	// scheduled) joined with company and service, optionally bounded by
	// [startDate, endDate] (2006-01-02, inclusive; empty = unbounded).
	ListChargeRows(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]ChargeRow, error)

	// ListCompanyChargeRows scopes charge rows to one company and
	// optionally one month (2006-01).
	ListCompanyChargeRows(
		ctx context.Context,
		companyID uint,
		month string,
	) ([]ChargeRow, error)

	SumCommissionPaid(
		ctx context.Context,
		companyID uint,
		month string,
	) (float64, error)

	CreateCommissionPayment(
		ctx context.Context,
		payment *models.CommissionPayment,
	) error
}

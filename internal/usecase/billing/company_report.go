package billing

import (
	"context"
	"time"

	domain "github.com/reservly/booking-platform/internal/domain/billing"
	"github.com/reservly/booking-platform/internal/validators"
)

const monthLayout = "2006-01"

type CommissionRow struct {
	AppointmentID uint    `json:"appointment_id"`
	ServiceName   string  `json:"service_name"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	ServicePrice  float64 `json:"service_price"`
	Commission    float64 `json:"commission"`
}

type CompanySummary struct {
	TotalCommission        float64 `json:"total_commission"`
	PaidCommission         float64 `json:"paid_commission"`
	PendingCommission      float64 `json:"pending_commission"`
	CurrentMonthCommission float64 `json:"current_month_commission"`
}

type CompanyReport struct {
	Month   string         `json:"month,omitempty"`
	Rows    []CommissionRow `json:"rows"`
	Summary CompanySummary  `json:"summary"`
}

// CompanyBillingReport is the self-service view: per-appointment
// commission for one company, optionally scoped to a month, with a
// pending-vs-paid breakdown.
type CompanyBillingReport struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCompanyBillingReport(repo domain.Repository) *CompanyBillingReport {
	return &CompanyBillingReport{repo: repo, now: time.Now}
}

func (uc *CompanyBillingReport) Execute(
	ctx context.Context,
	companyID uint,
	month string,
) (*CompanyReport, error) {

	if month != "" {
		if _, err := time.Parse(monthLayout, month); err != nil {
			return nil, validators.FieldErrors{"month": "month must be formatted as 2006-01"}
		}
	}

	chargeRows, err := uc.repo.ListCompanyChargeRows(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	rows := make([]CommissionRow, 0, len(chargeRows))
	var total float64
	for _, row := range chargeRows {
		commission := domain.Commission(row.ServicePrice)
		total += commission
		rows = append(rows, CommissionRow{
			AppointmentID: row.AppointmentID,
			ServiceName:   row.ServiceName,
			Date:          row.Date,
			Status:        row.Status,
			ServicePrice:  row.ServicePrice,
			Commission:    commission,
		})
	}

	paid, err := uc.repo.SumCommissionPaid(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	pending := total - paid
	if pending < 0 {
		pending = 0
	}

	currentMonth := uc.now().Format(monthLayout)
	var currentMonthCommission float64
	if month == currentMonth {
		currentMonthCommission = total
	} else {
		currentRows, err := uc.repo.ListCompanyChargeRows(ctx, companyID, currentMonth)
		if err != nil {
			return nil, err
		}
		for _, row := range currentRows {
			currentMonthCommission += domain.Commission(row.ServicePrice)
		}
	}

	return &CompanyReport{
		Month: month,
		Rows:  rows,
		Summary: CompanySummary{
			TotalCommission:        total,
			PaidCommission:         paid,
			PendingCommission:      pending,
			CurrentMonthCommission: currentMonthCommission,
		},
	}, nil
}

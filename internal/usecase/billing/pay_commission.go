package billing

import (
	"context"
	"time"

	"github.com/reservly/booking-platform/internal/audit"
	domain "github.com/reservly/booking-platform/internal/domain/billing"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

type PayCommissionInput struct {
	CompanyID uint
	UserID    uint

	Amount float64
	Month  string // 2006-01, optional

	CardNumber string
	CardExpiry string
	CardCVV    string
}

// PayCommission is the simulated payment: card details are validated
// for shape only, then the amount is recorded as paid commission. No
// external financial transaction happens.
type PayCommission struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewPayCommission(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PayCommission {
	return &PayCommission{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *PayCommission) Execute(
	ctx context.Context,
	in PayCommissionInput,
) (*models.CommissionPayment, error) {

	errs := validators.FieldErrors{}
	if in.Amount <= 0 {
		errs["amount"] = "amount must be positive"
	}
	if in.Month != "" {
		if _, err := time.Parse(monthLayout, in.Month); err != nil {
			errs["month"] = "month must be formatted as 2006-01"
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if err := validators.ValidateCard(in.CardNumber, in.CardExpiry, in.CardCVV, uc.now()); err != nil {
		return nil, err
	}

	payment := &models.CommissionPayment{
		CompanyID:    in.CompanyID,
		Amount:       in.Amount,
		CardLastFour: validators.CardLastFour(in.CardNumber),
		PeriodMonth:  in.Month,
	}

	if err := uc.repo.CreateCommissionPayment(ctx, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    &in.UserID,
		Action:    "commission_paid",
		Entity:    "commission_payment",
		EntityID:  &payment.ID,
	})

	return payment, nil
}

package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentActive    PaymentStatus = "active"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentPastDue   PaymentStatus = "past_due"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentActive, PaymentCancelled, PaymentPastDue:
		return true
	}
	return false
}

// Subscription is the company's platform-subscription billing record,
// independent from per-appointment commission billing.
type Subscription struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	Plan        string `gorm:"size:50;not null" json:"plan"`
	ExternalRef string `gorm:"size:64" json:"external_ref"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	PaymentStatus PaymentStatus `gorm:"size:20;default:'pending'" json:"payment_status"`
	Amount        float64       `gorm:"type:decimal(10,2)" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

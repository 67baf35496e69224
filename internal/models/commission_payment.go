package models

import "time"

// CommissionPayment is local bookkeeping for the simulated "pay
// commission" action. No gateway is involved; only the card's last four
// digits are retained.
type CommissionPayment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	Amount       float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	CardLastFour string  `gorm:"size:4" json:"card_last_four"`

	// Month the payment settles, format 2006-01. When empty the payment
	// counts only toward the company's unscoped paid total, never toward
	// a single month's report.
	PeriodMonth string `gorm:"size:7" json:"period_month"`

	CreatedAt time.Time `json:"created_at"`
}

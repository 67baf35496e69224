package models

import "time"

type CompanyStatus string

const (
	CompanyPending   CompanyStatus = "pending"
	CompanyActive    CompanyStatus = "active"
	CompanySuspended CompanyStatus = "suspended"
)

func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyPending, CompanyActive, CompanySuspended:
		return true
	}
	return false
}

type Company struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Contact string `gorm:"size:100" json:"contact"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	Status           CompanyStatus `gorm:"size:20;default:'pending'" json:"status"`
	SubscriptionPlan string        `gorm:"size:50" json:"subscription_plan"`

	// Reference handed to the external billing collaborator; never
	// interpreted locally.
	BillingCustomerRef string `gorm:"size:64" json:"billing_customer_ref,omitempty"`

	Services     []Service     `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

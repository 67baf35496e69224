package models

import "time"

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceArchived ServiceStatus = "archived"
)

func (s ServiceStatus) Valid() bool {
	return s == ServiceActive || s == ServiceArchived
}

type Service struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMin int     `json:"duration_min"`

	Status ServiceStatus `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

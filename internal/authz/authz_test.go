package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservly/booking-platform/internal/models"
)

func TestCanAccessAppointment(t *testing.T) {
	ap := &models.Appointment{UserID: 7, CompanyID: 3}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"admin sees everything", Actor{UserID: 99, Role: models.RoleAdmin}, true},
		{"owning user", Actor{UserID: 7, Role: models.RoleUser}, true},
		{"other user", Actor{UserID: 8, Role: models.RoleUser}, false},
		{"owning company", Actor{UserID: 20, Role: models.RoleCompany, CompanyID: 3}, true},
		{"other company", Actor{UserID: 21, Role: models.RoleCompany, CompanyID: 4}, false},
		{"company without scope", Actor{UserID: 22, Role: models.RoleCompany}, false},
		{"unknown role", Actor{UserID: 7, Role: models.Role("guest")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessAppointment(tt.actor, ap))
		})
	}
}

func TestOwnsCompanyResource(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"admin", Actor{Role: models.RoleAdmin}, true},
		{"own company", Actor{Role: models.RoleCompany, CompanyID: 5}, true},
		{"foreign company", Actor{Role: models.RoleCompany, CompanyID: 6}, false},
		{"company without scope", Actor{Role: models.RoleCompany}, false},
		{"end user never owns company resources", Actor{UserID: 5, Role: models.RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnsCompanyResource(tt.actor, 5))
		})
	}
}

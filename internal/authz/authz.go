package authz

import "github.com/reservly/booking-platform/internal/models"

// Actor is the authenticated principal plus its resolved company scope.
// CompanyID is zero unless the role is company.
type Actor struct {
	UserID    uint
	Role      models.Role
	CompanyID uint
}

// CanAccessAppointment decides whether the actor may read or mutate the
// appointment. Admin always may; a company only within its own scope; a
// user only for appointments it booked.
func CanAccessAppointment(a Actor, ap *models.Appointment) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCompany:
		return a.CompanyID != 0 && ap.CompanyID == a.CompanyID
	case models.RoleUser:
		return ap.UserID == a.UserID
	}
	return false
}

// OwnsCompanyResource decides whether the actor may act on a resource
// belonging to companyID (service, subscription, billing record).
// End users never own company resources.
func OwnsCompanyResource(a Actor, companyID uint) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCompany:
		return a.CompanyID != 0 && a.CompanyID == companyID
	case models.RoleUser:
		return false
	}
	return false
}

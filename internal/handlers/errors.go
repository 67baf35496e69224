package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/authz"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/middleware"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

// mapUsecaseError translates use-case failures into HTTP responses.
// One policy everywhere: validation 400, absent 404, forbidden 403,
// state or slot conflicts 409, anything else a generic 500.
func mapUsecaseError(c *gin.Context, err error) {
	var fieldErrs validators.FieldErrors
	switch {
	case asFieldErrors(err, &fieldErrs):
		c.JSON(400, gin.H{
			"error_code": "validation_failed",
			"fields":     fieldErrs,
		})
	case httperr.IsBusiness(err, "company_not_found"):
		httperr.NotFound(c, "company_not_found", "Company not found.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "service_not_available"):
		httperr.Conflict(c, "service_not_available", "Service is not open for booking.")
	case httperr.IsBusiness(err, httperr.CodeCompanyInactive):
		httperr.Conflict(c, httperr.CodeCompanyInactive, "Company is not accepting appointments.")
	case httperr.IsBusiness(err, httperr.CodeSlotNotAvailable):
		httperr.Conflict(c, httperr.CodeSlotNotAvailable, "Slot not available.")
	case httperr.IsBusiness(err, httperr.CodeInvalidState):
		httperr.Conflict(c, httperr.CodeInvalidState, "Appointment state does not allow this transition.")
	case httperr.IsBusiness(err, httperr.CodeHasAppointments):
		httperr.Conflict(c, httperr.CodeHasAppointments, "Service has appointments; archive it instead.")
	case httperr.IsBusiness(err, httperr.CodeForbidden):
		httperr.Forbidden(c, httperr.CodeForbidden, "You do not have access to this resource.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}

func asFieldErrors(err error, target *validators.FieldErrors) bool {
	fe, ok := err.(validators.FieldErrors)
	if ok {
		*target = fe
	}
	return ok
}

// resolveActor builds the authorization actor for the request,
// resolving the principal's company scope with one read when the role
// is company.
func resolveActor(c *gin.Context, db *gorm.DB) (authz.Actor, bool) {
	actor := authz.Actor{
		UserID: middleware.PrincipalID(c),
		Role:   middleware.PrincipalRole(c),
	}

	if actor.Role == models.RoleCompany {
		var company models.Company
		if err := db.Where("user_id = ?", actor.UserID).First(&company).Error; err != nil {
			httperr.Forbidden(c, "company_profile_missing", "No company is linked to this account.")
			return actor, false
		}
		actor.CompanyID = company.ID
	}

	return actor, true
}

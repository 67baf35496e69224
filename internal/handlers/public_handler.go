package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/httpresp"
	"github.com/reservly/booking-platform/internal/models"
	ucAppointment "github.com/reservly/booking-platform/internal/usecase/appointment"
	"github.com/reservly/booking-platform/internal/validators"
)

// PublicHandler is the unauthenticated browse surface. Only active
// companies and active services are visible here.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

func (h *PublicHandler) ListCompanies(c *gin.Context) {
	var companies []models.Company
	if err := h.db.
		Where("status = ?", models.CompanyActive).
		Order("name ASC").
		Find(&companies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_companies", "Could not list companies.")
		return
	}

	httpresp.List(c, companies)
}

func (h *PublicHandler) ListCompanyServices(c *gin.Context) {
	companyID := c.Param("id")

	var company models.Company
	if err := h.db.
		Where("id = ? AND status = ?", companyID, models.CompanyActive).
		First(&company).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("company_id = ? AND status = ?", company.ID, models.ServiceActive).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company":  company,
		"services": services,
	})
}

// Availability enumerates free slots for ?service_id=&date=2006-01-02.
func (h *PublicHandler) Availability(c *gin.Context) {
	companyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_company_id", "Invalid company id.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date := c.Query("date")
	if !validators.ValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted as 2006-01-02.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			CompanyID: uint(companyID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

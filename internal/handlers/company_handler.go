package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/middleware"
	"github.com/reservly/booking-platform/internal/models"
)

type CompanyHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{
		db:    db,
		audit: audit.New(db),
	}
}

// --------- Requests ---------

type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

type SetCompanyStatusRequest struct {
	Status models.CompanyStatus `json:"status" binding:"required"`
}

// --------- Company self-service ---------

func (h *CompanyHandler) GetMyCompany(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var company models.Company
	if err := h.db.First(&company, actor.CompanyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateMyCompany(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var company models.Company
	if err := h.db.First(&company, actor.CompanyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Contact != nil {
		company.Contact = *req.Contact
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "failed_to_update_company", "Could not save the company.")
		return
	}

	c.JSON(http.StatusOK, company)
}

// --------- Admin ---------

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	status := c.Query("status")

	q := h.db.Model(&models.Company{})
	if status != "" {
		if !models.CompanyStatus(status).Valid() {
			httperr.BadRequest(c, "invalid_status", "Unknown company status.")
			return
		}
		q = q.Where("status = ?", status)
	}

	var companies []models.Company
	if err := q.Order("id ASC").Find(&companies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_companies", "Could not list companies.")
		return
	}

	c.JSON(http.StatusOK, companies)
}

// SetStatus is the only path that moves a company between pending,
// active and suspended. Admin only, enforced at the route.
func (h *CompanyHandler) SetStatus(c *gin.Context) {
	adminID := middleware.PrincipalID(c)
	id := c.Param("id")

	var company models.Company
	if err := h.db.First(&company, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "company_not_found", "Company not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_company", "Could not load the company.")
		return
	}

	var req SetCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !req.Status.Valid() {
		httperr.BadRequest(c, "invalid_status", "Unknown company status.")
		return
	}

	previous := company.Status
	company.Status = req.Status

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "failed_to_update_company", "Could not save the company.")
		return
	}

	h.audit.Log(
		company.ID,
		&adminID,
		"company_status_changed",
		"company",
		&company.ID,
		map[string]any{
			"from": previous,
			"to":   req.Status,
		},
	)

	c.JSON(http.StatusOK, company)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
	ucService "github.com/reservly/booking-platform/internal/usecase/service"
	"github.com/reservly/booking-platform/internal/validators"
)

type ServiceHandler struct {
	db        *gorm.DB
	listUC    *ucService.ListServices
	archiveUC *ucService.ArchiveService
	deleteUC  *ucService.DeleteService
}

func NewServiceHandler(
	db *gorm.DB,
	listUC *ucService.ListServices,
	archiveUC *ucService.ArchiveService,
	deleteUC *ucService.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		db:        db,
		listUC:    listUC,
		archiveUC: archiveUC,
		deleteUC:  deleteUC,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	// Default shows everything; status=active|archived narrows.
	services, err := h.listUC.Execute(c.Request.Context(), actor.CompanyID, c.Query("status"))
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := validators.ValidateService(req.Name, req.Price, req.DurationMin); err != nil {
		mapUsecaseError(c, err)
		return
	}

	service := models.Service{
		CompanyID:   actor.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Status:      models.ServiceActive,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	service, ok := h.loadOwnService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}

	if err := validators.ValidateService(service.Name, service.Price, service.DurationMin); err != nil {
		mapUsecaseError(c, err)
		return
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not save the service.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Archive is the soft delete; archived services stop being offered for
// new bookings but keep their history.
func (h *ServiceHandler) Archive(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	service, err := h.archiveUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete hard-deletes a service, but only while no appointment
// references it. With history present the caller gets a conflict and
// must archive instead.
func (h *ServiceHandler) Delete(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// loadOwnService loads by id then checks scope, so an existing service
// outside the caller's company comes back forbidden rather than 404.
func (h *ServiceHandler) loadOwnService(c *gin.Context) (*models.Service, bool) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return nil, false
	}

	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load the service.")
		return nil, false
	}

	if service.CompanyID != actor.CompanyID && actor.Role != models.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "You do not have access to this resource.")
		return nil, false
	}

	return &service, true
}

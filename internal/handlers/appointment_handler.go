package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/httpresp"
	"github.com/reservly/booking-platform/internal/middleware"
	"github.com/reservly/booking-platform/internal/models"
	ucAppointment "github.com/reservly/booking-platform/internal/usecase/appointment"
	"github.com/reservly/booking-platform/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	bookUC       *ucAppointment.BookAppointment
	bookDirectUC *ucAppointment.BookDirectAppointment
	acceptUC     *ucAppointment.AcceptAppointment
	completeUC   *ucAppointment.CompleteAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	listUC       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	bookUC *ucAppointment.BookAppointment,
	bookDirectUC *ucAppointment.BookDirectAppointment,
	acceptUC *ucAppointment.AcceptAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		bookUC:       bookUC,
		bookDirectUC: bookDirectUC,
		acceptUC:     acceptUC,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	CompanyID uint   `json:"company_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type BookDirectAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

// ======================================================
// USER BOOKING
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := middleware.PrincipalID(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:    userID,
		CompanyID: req.CompanyID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := middleware.PrincipalID(c)

	aps, err := h.listUC.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// COMPANY INTAKE + LISTING
// ======================================================

func (h *AppointmentHandler) BookDirect(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var req BookDirectAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.bookDirectUC.Execute(c.Request.Context(), ucAppointment.BookDirectAppointmentInput{
		CompanyID:   actor.CompanyID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ListForCompany serves both ?date=2006-01-02 and ?month=2006-01.
func (h *AppointmentHandler) ListForCompany(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	date := c.Query("date")
	month := c.Query("month")

	switch {
	case date != "":
		if !validators.ValidDate(date) {
			httperr.BadRequest(c, "invalid_date", "Date must be formatted as 2006-01-02.")
			return
		}
		aps, err := h.listUC.ForCompanyDate(c.Request.Context(), actor.CompanyID, date)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, aps)

	case month != "":
		if len(month) != 7 {
			httperr.BadRequest(c, "invalid_month", "Month must be formatted as 2006-01.")
			return
		}
		aps, err := h.listUC.ForCompanyMonth(c.Request.Context(), actor.CompanyID, month)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, aps)

	default:
		httperr.BadRequest(c, "missing_date_or_month", "Provide a date or a month.")
	}
}

// ListAll is the admin view over every appointment, optionally
// filtered by ?company_id=, ?status= and ?date=.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	q := h.db.Model(&models.Appointment{})

	if companyID := c.Query("company_id"); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		if !validators.ValidDate(date) {
			httperr.BadRequest(c, "invalid_date", "Date must be formatted as 2006-01-02.")
			return
		}
		q = q.Where("appointment_date = ?", date)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date DESC, appointment_time DESC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Accept(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.acceptUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), actor, ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

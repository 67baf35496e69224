package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/httpresp"
	ucBilling "github.com/reservly/booking-platform/internal/usecase/billing"
)

type BillingHandler struct {
	db *gorm.DB

	adminReportUC   *ucBilling.AdminBillingReport
	companyReportUC *ucBilling.CompanyBillingReport
	payUC           *ucBilling.PayCommission
}

func NewBillingHandler(
	db *gorm.DB,
	adminReportUC *ucBilling.AdminBillingReport,
	companyReportUC *ucBilling.CompanyBillingReport,
	payUC *ucBilling.PayCommission,
) *BillingHandler {
	return &BillingHandler{
		db:              db,
		adminReportUC:   adminReportUC,
		companyReportUC: companyReportUC,
		payUC:           payUC,
	}
}

// --------- Requests ---------

type PayCommissionRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	Month      string  `json:"month"`
	CardNumber string  `json:"card_number" binding:"required"`
	CardExpiry string  `json:"card_expiry" binding:"required"`
	CardCVV    string  `json:"card_cvv" binding:"required"`
}

// --------- Handlers ---------

// AdminReport: platform-wide commission breakdown, optionally bounded
// by ?start=2006-01-02&end=2006-01-02.
func (h *BillingHandler) AdminReport(c *gin.Context) {
	report, err := h.adminReportUC.Execute(
		c.Request.Context(),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// CompanyReport: the calling company's commission rows, optionally
// scoped with ?month=2006-01.
func (h *BillingHandler) CompanyReport(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	report, err := h.companyReportUC.Execute(
		c.Request.Context(),
		actor.CompanyID,
		c.Query("month"),
	)
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *BillingHandler) PayCommission(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var req PayCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	payment, err := h.payUC.Execute(c.Request.Context(), ucBilling.PayCommissionInput{
		CompanyID:  actor.CompanyID,
		UserID:     actor.UserID,
		Amount:     req.Amount,
		Month:      req.Month,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCVV:    req.CardCVV,
	})
	if err != nil {
		mapUsecaseError(c, err)
		return
	}

	httpresp.Created(c, payment)
}

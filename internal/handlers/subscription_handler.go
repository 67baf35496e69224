package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

type SubscriptionHandler struct {
	db *gorm.DB
}

func NewSubscriptionHandler(db *gorm.DB) *SubscriptionHandler {
	return &SubscriptionHandler{db: db}
}

// GetMySubscription returns the company's current platform
// subscription, the newest record when history exists.
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	actor, ok := resolveActor(c, h.db)
	if !ok {
		return
	}

	var sub models.Subscription
	if err := h.db.
		Where("company_id = ?", actor.CompanyID).
		Order("id DESC").
		First(&sub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "subscription_not_found", "No subscription on file.")
			return
		}
		httperr.Internal(c, "failed_to_get_subscription", "Could not load the subscription.")
		return
	}

	c.JSON(http.StatusOK, sub)
}

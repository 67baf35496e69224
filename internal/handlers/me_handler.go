package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/middleware"
	"github.com/reservly/booking-platform/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name  *string `json:"name,omitempty"`
	Theme *string `json:"theme,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.PrincipalID(c)

	var user models.User
	if err := h.db.Preload("Company").First(&user, userID).Error; err != nil {
		writeUserLoadError(c, err)
		return
	}

	payload := gin.H{"user": userPayload(&user)}
	if user.Company != nil {
		payload["company"] = user.Company
	}

	c.JSON(http.StatusOK, payload)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := middleware.PrincipalID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		writeUserLoadError(c, err)
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not save the account.")
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}

// writeUserLoadError handles a failed load of the authenticated user's
// own row. A valid token whose account was deleted gets 404, anything
// else is a server fault.
func writeUserLoadError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "user_not_found", "Account no longer exists.")
		return
	}
	httperr.Internal(c, "failed_to_load_user", "Could not load the account.")
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

// UserAdminHandler is the admin view over accounts.
type UserAdminHandler struct {
	db *gorm.DB
}

func NewUserAdminHandler(db *gorm.DB) *UserAdminHandler {
	return &UserAdminHandler{db: db}
}

func (h *UserAdminHandler) List(c *gin.Context) {
	role := c.Query("role")
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.User{})

	if role != "" {
		if !models.Role(role).Valid() {
			httperr.BadRequest(c, "invalid_role", "Unknown role.")
			return
		}
		q = q.Where("role = ?", role)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	c.JSON(http.StatusOK, users)
}

// Delete removes an account. Owned companies and appointments go with
// it through the FK cascade.
func (h *UserAdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load the user.")
		return
	}

	if err := h.db.Select("Company", "Appointments").Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete the user.")
		return
	}

	c.Status(http.StatusNoContent)
}

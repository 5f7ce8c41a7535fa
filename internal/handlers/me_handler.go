package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing identity")
		return
	}

	var user models.User
	if err := h.db.First(&user, id.ID).Error; err != nil {
		httperr.Internal(c, err, "failed to load account")
		return
	}

	extra := gin.H{"user": userView(&user)}

	if user.Role == "professional" {
		var pro models.Professional
		if err := h.db.
			Preload("Service").
			Where("user_id = ?", user.ID).
			First(&pro).Error; err == nil {
			extra["professional"] = pro
		}
	}

	httpresp.OK(c, "account retrieved", extra)
}

package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/models"
)

type ProfessionalHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewProfessionalHandler(db *gorm.DB, repo domain.Repository) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, repo: repo}
}

// --------- Requests ---------

type UpdateAvailabilityRequest struct {
	Weekdays []int `json:"weekdays" binding:"required"`
}

// --------- Handlers ---------

// List is the public browse endpoint: professionals filterable by service
// and city.
func (h *ProfessionalHandler) List(c *gin.Context) {
	q := h.db.Preload("User").Preload("Service")

	if serviceID := strings.TrimSpace(c.Query("service_id")); serviceID != "" {
		q = q.Where("service_id = ?", serviceID)
	}
	if city := strings.ToLower(strings.TrimSpace(c.Query("city"))); city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}

	var pros []models.Professional
	if err := q.Order("id ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, err, "failed to list professionals")
		return
	}

	httpresp.OK(c, "professionals retrieved", gin.H{
		"count":         len(pros),
		"professionals": pros,
	})
}

// UpdateAvailability replaces the caller's bookable weekdays.
func (h *ProfessionalHandler) UpdateAvailability(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "weekdays are required")
		return
	}

	seen := make(map[int]struct{}, len(req.Weekdays))
	weekdays := make([]int, 0, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		if wd < 0 || wd > 6 {
			httperr.BadRequest(c, "weekdays must be between 0 (Sunday) and 6 (Saturday)")
			return
		}
		if _, dup := seen[wd]; dup {
			continue
		}
		seen[wd] = struct{}{}
		weekdays = append(weekdays, wd)
	}

	pro, err := h.repo.GetProfessionalByUserID(c.Request.Context(), id.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional profile not found")
			return
		}
		httperr.Internal(c, err, "failed to load professional profile")
		return
	}

	if err := h.repo.ReplaceAvailability(c.Request.Context(), pro.ID, weekdays); err != nil {
		httperr.Internal(c, err, "failed to update availability")
		return
	}

	httpresp.OK(c, "availability updated", gin.H{"weekdays": weekdays})
}

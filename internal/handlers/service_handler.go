package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justconnect/justconnect-api/internal/domain/catalog"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/models"
)

type ServiceHandler struct {
	repo catalog.Repository
}

func NewServiceHandler(repo catalog.Repository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed to list services")
		return
	}

	httpresp.OK(c, "services retrieved", gin.H{
		"count":    len(services),
		"services": services,
	})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httperr.NotFound(c, "service not found")
			return
		}
		httperr.Internal(c, err, "failed to get service")
		return
	}

	httpresp.OK(c, "service retrieved", gin.H{"service": svc})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "name is required")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Active:      true,
	}

	if err := h.repo.Create(c.Request.Context(), &svc); err != nil {
		httperr.Internal(c, err, "failed to create service")
		return
	}

	httpresp.Created(c, "service created", gin.H{"service": svc})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "name is required")
		return
	}

	svc, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httperr.NotFound(c, "service not found")
			return
		}
		httperr.Internal(c, err, "failed to get service")
		return
	}

	svc.Name = strings.TrimSpace(req.Name)
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.repo.Update(c.Request.Context(), svc); err != nil {
		httperr.Internal(c, err, "failed to update service")
		return
	}

	httpresp.OK(c, "service updated", gin.H{"service": svc})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httperr.NotFound(c, "service not found")
			return
		}
		httperr.Internal(c, err, "failed to delete service")
		return
	}

	httpresp.OK(c, "service deleted", nil)
}

// paramID parses the :id route segment, replying 404 on garbage so
// /services/abc behaves like a missing resource.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "service not found")
		return 0, false
	}
	return uint(id), true
}

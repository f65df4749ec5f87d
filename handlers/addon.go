// File: handlers/addon.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

// AddonHandler exposes addon group management.
type AddonHandler struct {
	Service catalog.CatalogService
}

func NewAddonHandler(svc catalog.CatalogService) *AddonHandler {
	return &AddonHandler{Service: svc}
}

// CreateAddonGroupHandler handles POST /addon-groups.
func (h *AddonHandler) CreateAddonGroupHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var group models.AddonGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Service.CreateAddonGroup(c.Request.Context(), &group)
	if err != nil {
		logger.Error("Failed to create addon group", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAddonGroupHandler handles GET /addon-groups/:id.
func (h *AddonHandler) GetAddonGroupHandler(c *gin.Context) {
	group, err := h.Service.GetAddonGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// ListAddonGroupsHandler handles GET /addon-groups.
func (h *AddonHandler) ListAddonGroupsHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	groups, err := h.Service.ListAddonGroups(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// UpdateAddonGroupHandler handles PUT /addon-groups/:id.
func (h *AddonHandler) UpdateAddonGroupHandler(c *gin.Context) {
	var group models.AddonGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	group.ID = c.Param("id")
	updated, err := h.Service.UpdateAddonGroup(c.Request.Context(), &group)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAddonGroupHandler handles DELETE /addon-groups/:id (soft delete).
func (h *AddonHandler) DeleteAddonGroupHandler(c *gin.Context) {
	if err := h.Service.DeleteAddonGroup(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon group deactivated"})
}

// File: handlers/item.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	itemRepo "quotify/database/repository/item"
	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

// ItemHandler exposes item management, slot setup and effective-tax
// resolution.
type ItemHandler struct {
	Service catalog.CatalogService
}

func NewItemHandler(svc catalog.CatalogService) *ItemHandler {
	return &ItemHandler{Service: svc}
}

// CreateItemHandler handles POST /items.
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Service.CreateItem(c.Request.Context(), &item)
	if err != nil {
		logger.Error("Failed to create item", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetItemHandler handles GET /items/:id.
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	item, err := h.Service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListItemsHandler handles GET /items with optional categoryId,
// subcategoryId, bookable and includeInactive filters.
func (h *ItemHandler) ListItemsHandler(c *gin.Context) {
	filter := itemRepo.ItemFilter{
		CategoryID:      c.Query("categoryId"),
		SubcategoryID:   c.Query("subcategoryId"),
		BookableOnly:    c.Query("bookable") == "true",
		IncludeInactive: c.Query("includeInactive") == "true",
	}
	items, err := h.Service.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateItemHandler handles PUT /items/:id.
func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	item.ID = c.Param("id")
	updated, err := h.Service.UpdateItem(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItemHandler handles DELETE /items/:id (soft delete).
func (h *ItemHandler) DeleteItemHandler(c *gin.Context) {
	if err := h.Service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deactivated"})
}

// RestoreItemHandler handles PUT /items/:id/restore.
func (h *ItemHandler) RestoreItemHandler(c *gin.Context) {
	if err := h.Service.RestoreItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item restored"})
}

// SetItemSlotsHandler handles PUT /items/:id/slots, replacing the item's
// weekly availability.
func (h *ItemHandler) SetItemSlotsHandler(c *gin.Context) {
	var input struct {
		Slots []models.AvailabilitySlot `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	item, err := h.Service.SetItemSlots(c.Request.Context(), c.Param("id"), input.Slots)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetItemTaxHandler handles GET /items/:id/tax, returning the effective
// tax after walking the inheritance chain.
func (h *ItemHandler) GetItemTaxHandler(c *gin.Context) {
	result, err := h.Service.ResolveItemTax(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

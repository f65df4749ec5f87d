// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

// CatalogHandler exposes category and subcategory management.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreateCategoryHandler handles POST /categories.
func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Service.CreateCategory(c.Request.Context(), &cat)
	if err != nil {
		logger.Error("Failed to create category", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCategoryHandler handles GET /categories/:id.
func (h *CatalogHandler) GetCategoryHandler(c *gin.Context) {
	cat, err := h.Service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// ListCategoriesHandler handles GET /categories. Pass ?includeInactive=true
// to see soft-deleted entries.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	cats, err := h.Service.ListCategories(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// UpdateCategoryHandler handles PUT /categories/:id.
func (h *CatalogHandler) UpdateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cat.ID = c.Param("id")
	updated, err := h.Service.UpdateCategory(c.Request.Context(), &cat)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategoryHandler handles DELETE /categories/:id (soft delete).
func (h *CatalogHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deactivated"})
}

// RestoreCategoryHandler handles PUT /categories/:id/restore.
func (h *CatalogHandler) RestoreCategoryHandler(c *gin.Context) {
	if err := h.Service.RestoreCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category restored"})
}

// CreateSubcategoryHandler handles POST /subcategories.
func (h *CatalogHandler) CreateSubcategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var sub models.Subcategory
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Service.CreateSubcategory(c.Request.Context(), &sub)
	if err != nil {
		logger.Error("Failed to create subcategory", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSubcategoryHandler handles GET /subcategories/:id.
func (h *CatalogHandler) GetSubcategoryHandler(c *gin.Context) {
	sub, err := h.Service.GetSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListSubcategoriesHandler handles GET /subcategories?categoryId=...
func (h *CatalogHandler) ListSubcategoriesHandler(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	subs, err := h.Service.ListSubcategories(c.Request.Context(), c.Query("categoryId"), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// UpdateSubcategoryHandler handles PUT /subcategories/:id.
func (h *CatalogHandler) UpdateSubcategoryHandler(c *gin.Context) {
	var sub models.Subcategory
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	sub.ID = c.Param("id")
	updated, err := h.Service.UpdateSubcategory(c.Request.Context(), &sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSubcategoryHandler handles DELETE /subcategories/:id.
func (h *CatalogHandler) DeleteSubcategoryHandler(c *gin.Context) {
	if err := h.Service.DeleteSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deactivated"})
}

// RestoreSubcategoryHandler handles PUT /subcategories/:id/restore.
func (h *CatalogHandler) RestoreSubcategoryHandler(c *gin.Context) {
	if err := h.Service.RestoreSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory restored"})
}

// GetSubcategoryTaxHandler handles GET /subcategories/:id/tax, returning
// the effective tax after inheritance.
func (h *CatalogHandler) GetSubcategoryTaxHandler(c *gin.Context) {
	result, err := h.Service.ResolveSubcategoryTax(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

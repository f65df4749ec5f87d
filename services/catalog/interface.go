// File: services/catalog/interface.go
package catalog

import (
	"context"

	addonRepo "quotify/database/repository/addon"
	catalogRepo "quotify/database/repository/catalog"
	itemRepo "quotify/database/repository/item"
	"quotify/models"
)

// CatalogService manages the category hierarchy, items and addon groups,
// enforces write-time validation, and resolves effective tax.
type CatalogService interface {
	CreateCategory(ctx context.Context, cat *models.Category) (*models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error)
	UpdateCategory(ctx context.Context, cat *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	RestoreCategory(ctx context.Context, id string) error

	CreateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error)
	GetSubcategory(ctx context.Context, id string) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID string, includeInactive bool) ([]models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
	RestoreSubcategory(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	ListItems(ctx context.Context, filter itemRepo.ItemFilter) ([]models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) error
	RestoreItem(ctx context.Context, id string) error
	SetItemSlots(ctx context.Context, itemID string, slots []models.AvailabilitySlot) (*models.Item, error)

	CreateAddonGroup(ctx context.Context, group *models.AddonGroup) (*models.AddonGroup, error)
	GetAddonGroup(ctx context.Context, id string) (*models.AddonGroup, error)
	ListAddonGroups(ctx context.Context, includeInactive bool) ([]models.AddonGroup, error)
	UpdateAddonGroup(ctx context.Context, group *models.AddonGroup) (*models.AddonGroup, error)
	DeleteAddonGroup(ctx context.Context, id string) error

	ResolveItemTax(ctx context.Context, itemID string) (*models.TaxResult, error)
	ResolveSubcategoryTax(ctx context.Context, subID string) (*models.TaxResult, error)
	ResolveTaxFor(ctx context.Context, item *models.Item) (*models.TaxResult, error)
}

// DefaultCatalogService is the production implementation backed by the
// Mongo repositories.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Items  itemRepo.ItemRepository
	Addons addonRepo.AddonRepository
}

// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"quotify/database"
	"quotify/models"
)

// CatalogRepository stores categories and subcategories.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, cat *models.Category) error
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error)
	UpdateCategory(ctx context.Context, cat *models.Category) error
	SetCategoryActive(ctx context.Context, id string, active bool) error

	CreateSubcategory(ctx context.Context, sub *models.Subcategory) error
	GetSubcategoryByID(ctx context.Context, id string) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID string, includeInactive bool) ([]models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error
	SetSubcategoryActive(ctx context.Context, id string, active bool) error
}

type mongoCatalogRepo struct {
	catColl *mongo.Collection
	subColl *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &mongoCatalogRepo{
		catColl: db.Collection("categories"),
		subColl: db.Collection("subcategories"),
	}
	repo.ensureIndexes()
	return repo
}

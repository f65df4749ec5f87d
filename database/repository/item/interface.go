// File: database/repository/item/interface.go
package itemRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"quotify/database"
	"quotify/models"
)

// ItemRepository stores catalog items, including their owned
// availability slots.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id string) (*models.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	SetActive(ctx context.Context, id string, active bool) error
	SetSlots(ctx context.Context, id string, slots []models.AvailabilitySlot) error
}

// ItemFilter narrows List results.
type ItemFilter struct {
	CategoryID      string
	SubcategoryID   string
	BookableOnly    bool
	IncludeInactive bool
}

type mongoItemRepo struct {
	coll *mongo.Collection
}

// NewMongoItemRepo constructs a new MongoDB ItemRepository.
func NewMongoItemRepo() ItemRepository {
	repo := &mongoItemRepo{
		coll: database.DB().Collection("items"),
	}
	repo.ensureIndexes()
	return repo
}

// File: database/repository/addon/interface.go
package addonRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"quotify/database"
	"quotify/models"
)

// AddonRepository stores addon groups. Addons are embedded in their
// group and have no lifecycle of their own.
type AddonRepository interface {
	Create(ctx context.Context, group *models.AddonGroup) error
	GetByID(ctx context.Context, id string) (*models.AddonGroup, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.AddonGroup, error)
	List(ctx context.Context, includeInactive bool) ([]models.AddonGroup, error)
	Update(ctx context.Context, group *models.AddonGroup) error
	SetActive(ctx context.Context, id string, active bool) error
}

type mongoAddonRepo struct {
	coll *mongo.Collection
}

// NewMongoAddonRepo constructs a new MongoDB AddonRepository.
func NewMongoAddonRepo() AddonRepository {
	return &mongoAddonRepo{
		coll: database.DB().Collection("addon_groups"),
	}
}

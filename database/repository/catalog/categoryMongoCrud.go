// File: database/repository/catalog/categoryMongoCrud.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quotify/models"
)

func (r *mongoCatalogRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	if _, err := r.catColl.InsertOne(ctx, cat); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("category name %q already exists", cat.Name)
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cat models.Category
	if err := r.catColl.FindOne(ctx, bson.M{"id": id}).Decode(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *mongoCatalogRepo) ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.catColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *mongoCatalogRepo) UpdateCategory(ctx context.Context, cat *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cat.UpdatedAt = time.Now()
	res, err := r.catColl.ReplaceOne(ctx, bson.M{"id": cat.ID}, cat)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("category name %q already exists", cat.Name)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) SetCategoryActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := r.catColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set category active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// File: database/repository/catalog/subcategoryMongoCrud.go
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

func (r *mongoCatalogRepo) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if _, err := r.subColl.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to insert subcategory: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetSubcategoryByID(ctx context.Context, id string) (*models.Subcategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sub models.Subcategory
	if err := r.subColl.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoCatalogRepo) ListSubcategories(ctx context.Context, categoryID string, includeInactive bool) ([]models.Subcategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	if !includeInactive {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.subColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subcategory
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoCatalogRepo) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sub.UpdatedAt = time.Now()
	res, err := r.subColl.ReplaceOne(ctx, bson.M{"id": sub.ID}, sub)
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) SetSubcategoryActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := r.subColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set subcategory active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

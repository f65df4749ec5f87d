// File: database/repository/addon/addonMongoCrud.go
package addonRepo

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

func (r *mongoAddonRepo) Create(ctx context.Context, group *models.AddonGroup) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	for i := range group.Addons {
		if group.Addons[i].ID == "" {
			group.Addons[i].ID = uuid.New().String()
		}
	}
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, group); err != nil {
		return fmt.Errorf("failed to insert addon group: %w", err)
	}
	return nil
}

func (r *mongoAddonRepo) GetByID(ctx context.Context, id string) (*models.AddonGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.AddonGroup
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mongoAddonRepo) GetByIDs(ctx context.Context, ids []string) ([]models.AddonGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.AddonGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoAddonRepo) List(ctx context.Context, includeInactive bool) ([]models.AddonGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if !includeInactive {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.AddonGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoAddonRepo) Update(ctx context.Context, group *models.AddonGroup) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for i := range group.Addons {
		if group.Addons[i].ID == "" {
			group.Addons[i].ID = uuid.New().String()
		}
	}
	group.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": group.ID}, group)
	if err != nil {
		return fmt.Errorf("failed to update addon group: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAddonRepo) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set addon group active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

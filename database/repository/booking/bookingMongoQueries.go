// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quotify/models"
)

// overlapFilter matches non-cancelled bookings on the item and date
// whose [start,end) interval overlaps the given one.
func overlapFilter(itemID, date string, start, end int, excludeID string) bson.M {
	filter := bson.M{
		"item_id": itemID,
		"date":    date,
		"status":  bson.M{"$ne": models.BookingCancelled},
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoBookingRepo) FindOverlapping(ctx context.Context, itemID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(itemID, date, start, end, excludeID), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

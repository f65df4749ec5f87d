// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quotify/models"
)

// ErrSlotCapacity is returned when the slot window holding the booking
// interval has no remaining capacity.
var ErrSlotCapacity = errors.New("slot capacity reached")

// errIntervalConflict aborts the transaction once overlapping bookings
// have been collected. Never returned to callers.
var errIntervalConflict = errors.New("interval conflict")

// CreateTransactionally re-runs the overlap and capacity checks inside a
// Mongo session transaction and inserts the booking only when both pass.
func (r *mongoBookingRepo) CreateTransactionally(ctx context.Context, booking *models.Booking, window *SlotWindow) ([]models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return r.writeTransactionally(ctx, booking, window, "", func(sc mongo.SessionContext) error {
		_, err := r.coll.InsertOne(sc, booking)
		if err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// ReplaceTransactionally applies the same gate for a revised booking,
// ignoring the booking's own previous interval.
func (r *mongoBookingRepo) ReplaceTransactionally(ctx context.Context, booking *models.Booking, window *SlotWindow) ([]models.Booking, error) {
	booking.UpdatedAt = time.Now()

	return r.writeTransactionally(ctx, booking, window, booking.ID, func(sc mongo.SessionContext) error {
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": booking.ID}, booking)
		if err != nil {
			return fmt.Errorf("replace booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
}

// writeTransactionally serializes booking writes per (item, date). Reads
// alone are not enough under snapshot isolation: two writers inserting
// fresh documents never touch each other's writes, so both would commit.
// The ledger claim makes every writer for the same item and date modify
// one shared document; the storage engine aborts the loser with a
// transient error and WithTransaction re-runs it against a snapshot that
// includes the winner's booking.
func (r *mongoBookingRepo) writeTransactionally(
	ctx context.Context,
	booking *models.Booking,
	window *SlotWindow,
	excludeID string,
	write func(sc mongo.SessionContext) error,
) ([]models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var conflicts []models.Booking

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		conflicts = nil

		if err := r.claimLedger(sc, booking.ItemID, booking.Date); err != nil {
			return nil, err
		}

		cursor, err := r.coll.Find(sc, overlapFilter(booking.ItemID, booking.Date, booking.Start, booking.End, excludeID))
		if err != nil {
			return nil, fmt.Errorf("overlap query failed: %w", err)
		}
		if err := cursor.All(sc, &conflicts); err != nil {
			return nil, fmt.Errorf("overlap decode failed: %w", err)
		}
		if len(conflicts) > 0 {
			return nil, errIntervalConflict
		}

		if window != nil {
			count, err := r.coll.CountDocuments(sc, overlapFilter(booking.ItemID, booking.Date, window.Start, window.End, excludeID))
			if err != nil {
				return nil, fmt.Errorf("capacity count failed: %w", err)
			}
			if int(count) >= window.MaxBookings {
				return nil, ErrSlotCapacity
			}
		}

		return nil, write(sc)
	})

	switch {
	case err == nil:
		return nil, nil
	case errors.Is(err, errIntervalConflict):
		return conflicts, nil
	case errors.Is(err, ErrSlotCapacity):
		return nil, ErrSlotCapacity
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, mongo.ErrNoDocuments
	default:
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}
}

// claimLedger upserts and bumps the (item, date) ledger document inside
// the current transaction. The unique index on (item_id, date) keeps a
// single document per pair, so concurrent booking writers always collide
// on it.
func (r *mongoBookingRepo) claimLedger(sc mongo.SessionContext, itemID, date string) error {
	_, err := r.ledger.UpdateOne(sc,
		bson.M{"item_id": itemID, "date": date},
		bson.M{"$inc": bson.M{"rev": 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ledger claim failed: %w", err)
	}
	return nil
}

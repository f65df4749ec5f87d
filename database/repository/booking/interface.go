// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"quotify/database"
	"quotify/models"
)

// SlotWindow is the capacity bound a booking write must respect. A nil
// window means the item declares no slots and capacity is unbounded.
type SlotWindow struct {
	Start       int // minutes from midnight
	End         int
	MaxBookings int
}

// BookingRepository stores bookings. Writes that could double-book run
// inside a Mongo session transaction so that the conflict check and the
// insert are one logical unit.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByItem(ctx context.Context, itemID, date string) ([]models.Booking, error)
	FindOverlapping(ctx context.Context, itemID, date string, start, end int, excludeID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CompleteIfConfirmed(ctx context.Context, id string) (bool, error)

	// CreateTransactionally inserts the booking only when no overlapping
	// non-cancelled booking exists and the slot window still has capacity.
	// On an interval clash it returns the offending bookings and no error;
	// the caller decides how to surface them.
	CreateTransactionally(ctx context.Context, booking *models.Booking, window *SlotWindow) ([]models.Booking, error)
	// ReplaceTransactionally applies the same checks for a revision,
	// excluding the booking's own interval from the overlap query.
	ReplaceTransactionally(ctx context.Context, booking *models.Booking, window *SlotWindow) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll   *mongo.Collection
	ledger *mongo.Collection // one document per (item, date), written on every booking txn
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll:   database.DB().Collection("bookings"),
		ledger: database.DB().Collection("booking_ledgers"),
	}
	repo.ensureIndexes()
	return repo
}

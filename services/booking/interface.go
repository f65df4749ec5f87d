// File: services/booking/interface.go
package booking

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	bookingRepo "quotify/database/repository/booking"
	"quotify/models"
	"quotify/services/catalog"
	"quotify/services/quote"
)

// CreateBookingRequest carries a proposed reservation. Start and End are
// minutes from midnight; End zero means "use the item's default
// duration".
type CreateBookingRequest struct {
	ItemID   string
	Date     string // "2006-01-02"
	Start    int
	End      int
	Quantity int
	Addons   []models.AddonSelection
}

// UpdateBookingRequest revises a booking. Nil fields keep their current
// value. Any revision triggers a full re-quote.
type UpdateBookingRequest struct {
	Date     *string
	Start    *int
	End      *int
	Quantity *int
	Addons   *[]models.AddonSelection
}

// BookingService owns the reservation lifecycle and the availability
// contracts consumed on every booking attempt.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, itemID, date string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)

	CheckAvailability(ctx context.Context, itemID, date string, start, end int) error
	FindConflicts(ctx context.Context, itemID, date string, start, end int, excludeID string) ([]models.Booking, error)
	AvailableSlots(ctx context.Context, itemID, date string) ([]models.SlotAvailability, error)
}

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalog.CatalogService
	Quotes  quote.QuoteEngine
	Cache   *redis.Client // optional availability cache
	Tasks   *asynq.Client // optional completion scheduler
}

package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "quotify/database/repository/booking"
	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

// memBookingRepo mirrors the transactional gate in memory: the mutex
// stands in for the ledger claim, so the overlap and capacity checks and
// the write are one atomic step.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	seq      int
}

var _ bookingRepo.BookingRepository = (*memBookingRepo)(nil)

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}

func (r *memBookingRepo) ListByItem(ctx context.Context, itemID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) overlapping(itemID, date string, start, end int, excludeID string) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Date != date || b.ID == excludeID {
			continue
		}
		if b.Status == models.BookingCancelled {
			continue
		}
		if utils.IntervalsOverlap(b.Start, b.End, start, end) {
			out = append(out, b)
		}
	}
	return out
}

func (r *memBookingRepo) FindOverlapping(ctx context.Context, itemID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapping(itemID, date, start, end, excludeID), nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Status = status
	r.bookings[id] = b
	return nil
}

func (r *memBookingRepo) CompleteIfConfirmed(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	if b.Status != models.BookingConfirmed {
		return false, nil
	}
	b.Status = models.BookingCompleted
	r.bookings[id] = b
	return true, nil
}

func (r *memBookingRepo) gate(booking *models.Booking, window *bookingRepo.SlotWindow, excludeID string) ([]models.Booking, error) {
	conflicts := r.overlapping(booking.ItemID, booking.Date, booking.Start, booking.End, excludeID)
	if len(conflicts) > 0 {
		return conflicts, nil
	}
	if window != nil {
		count := len(r.overlapping(booking.ItemID, booking.Date, window.Start, window.End, excludeID))
		if count >= window.MaxBookings {
			return nil, bookingRepo.ErrSlotCapacity
		}
	}
	return nil, nil
}

func (r *memBookingRepo) CreateTransactionally(ctx context.Context, booking *models.Booking, window *bookingRepo.SlotWindow) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conflicts, err := r.gate(booking, window, "")
	if err != nil || len(conflicts) > 0 {
		return conflicts, err
	}
	if booking.ID == "" {
		r.seq++
		booking.ID = fmt.Sprintf("bkg-%d", r.seq)
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings[booking.ID] = *booking
	return nil, nil
}

func (r *memBookingRepo) ReplaceTransactionally(ctx context.Context, booking *models.Booking, window *bookingRepo.SlotWindow) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conflicts, err := r.gate(booking, window, booking.ID)
	if err != nil || len(conflicts) > 0 {
		return conflicts, err
	}
	if _, ok := r.bookings[booking.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = *booking
	return nil, nil
}

// stubCatalog serves items from a map. Only the methods the booking
// service touches are implemented; anything else panics through the nil
// embedded interface.
type stubCatalog struct {
	catalog.CatalogService
	items map[string]*models.Item
}

func (s *stubCatalog) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, &catalog.NotFoundError{Kind: "item", ID: id}
	}
	return item, nil
}

// stubQuotes returns a canned breakdown and records the asOf instant it
// was asked to price at.
type stubQuotes struct {
	mu        sync.Mutex
	breakdown models.PriceBreakdown
	lastAsOf  time.Time
	err       error
}

func (s *stubQuotes) Quote(ctx context.Context, itemID string, quantity int, asOf time.Time, selections []models.AddonSelection) (*models.PriceBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAsOf = asOf
	if s.err != nil {
		return nil, s.err
	}
	b := s.breakdown
	return &b, nil
}

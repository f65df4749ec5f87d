// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"quotify/cron"
	bookingRepo "quotify/database/repository/booking"
	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

func newConflictError(bookings []models.Booking) *ConflictError {
	conflicts := make([]Conflict, len(bookings))
	for i, b := range bookings {
		conflicts[i] = Conflict{BookingID: b.ID, Start: b.Start, End: b.End, Status: b.Status}
	}
	return &ConflictError{Bookings: conflicts}
}

// bookingInstant anchors a booking's date and start minute as the
// pricing timestamp, so dynamic rules fire for the reserved time rather
// than the time of the request.
func bookingInstant(date string, startMins int) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return day.Add(time.Duration(startMins) * time.Minute), nil
}

func validateInterval(start, end int) error {
	if start < 0 || end > 24*60 || end <= start {
		return &AvailabilityError{Reason: fmt.Sprintf("invalid interval [%s,%s)", utils.FormatClock(start), utils.FormatClock(end))}
	}
	return nil
}

// CreateBooking runs the full booking path: availability (hours), quote,
// then the transactional conflict/capacity gate and insert. The check
// and the write are one logical unit; a concurrent loser gets a
// conflict error instead of a double-booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	item, err := s.Catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, &catalog.InactiveEntityError{Kind: "item", ID: item.ID}
	}
	if !item.Bookable {
		return nil, &AvailabilityError{Reason: fmt.Sprintf("item %s is not bookable", item.ID)}
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if req.End == 0 && item.DefaultDurationMins > 0 {
		req.End = req.Start + item.DefaultDurationMins
	}
	if err := validateInterval(req.Start, req.End); err != nil {
		return nil, err
	}

	win, err := matchSlot(item, req.Date, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	asOf, err := bookingInstant(req.Date, req.Start)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.Quotes.Quote(ctx, item.ID, req.Quantity, asOf, req.Addons)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ItemID:    item.ID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Quantity:  req.Quantity,
		Addons:    breakdown.Addons,
		Breakdown: *breakdown,
		Status:    models.BookingPending,
	}

	conflicts, err := s.Repo.CreateTransactionally(ctx, booking, repoWindow(win))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotCapacity) {
			return nil, &AvailabilityError{Reason: "slot capacity reached"}
		}
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, newConflictError(conflicts)
	}

	s.invalidateAvailability(ctx, booking.ItemID, booking.Date)
	logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("itemID", booking.ItemID),
		zap.String("date", booking.Date),
		zap.Float64("finalPrice", booking.Breakdown.FinalPrice))
	return booking, nil
}

func repoWindow(win *slotWindow) *bookingRepo.SlotWindow {
	if win == nil {
		return nil
	}
	return &bookingRepo.SlotWindow{Start: win.start, End: win.end, MaxBookings: win.slot.MaxBookings}
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &catalog.NotFoundError{Kind: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, itemID, date string) ([]models.Booking, error) {
	return s.Repo.ListByItem(ctx, itemID, date)
}

// UpdateBooking revises time, quantity or addons. The stored price
// snapshot is replaced by a full re-quote; the availability and conflict
// gates re-run with the booking's own interval excluded.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCancelled || booking.Status == models.BookingCompleted {
		return nil, &AvailabilityError{Reason: fmt.Sprintf("%s booking cannot be revised", booking.Status)}
	}
	oldDate := booking.Date

	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.Start != nil {
		booking.Start = *req.Start
	}
	if req.End != nil {
		booking.End = *req.End
	}
	if req.Quantity != nil {
		booking.Quantity = *req.Quantity
	}
	addons := selectionsFromSnapshot(booking.Addons)
	if req.Addons != nil {
		addons = *req.Addons
	}

	if booking.Quantity < 1 {
		booking.Quantity = 1
	}
	if err := validateInterval(booking.Start, booking.End); err != nil {
		return nil, err
	}

	item, err := s.Catalog.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	win, err := matchSlot(item, booking.Date, booking.Start, booking.End)
	if err != nil {
		return nil, err
	}

	asOf, err := bookingInstant(booking.Date, booking.Start)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.Quotes.Quote(ctx, booking.ItemID, booking.Quantity, asOf, addons)
	if err != nil {
		return nil, err
	}
	booking.Addons = breakdown.Addons
	booking.Breakdown = *breakdown

	conflicts, err := s.Repo.ReplaceTransactionally(ctx, booking, repoWindow(win))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotCapacity) {
			return nil, &AvailabilityError{Reason: "slot capacity reached"}
		}
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, newConflictError(conflicts)
	}

	s.invalidateAvailability(ctx, booking.ItemID, booking.Date)
	if oldDate != booking.Date {
		s.invalidateAvailability(ctx, booking.ItemID, oldDate)
	}
	return booking, nil
}

// selectionsFromSnapshot rebuilds selection inputs from the stored addon
// snapshot, for revisions that keep the addons unchanged.
func selectionsFromSnapshot(addons []models.SelectedAddon) []models.AddonSelection {
	byGroup := make(map[string]*models.AddonSelection)
	var order []string
	for _, addon := range addons {
		sel, ok := byGroup[addon.GroupID]
		if !ok {
			sel = &models.AddonSelection{GroupID: addon.GroupID}
			byGroup[addon.GroupID] = sel
			order = append(order, addon.GroupID)
		}
		sel.AddonIDs = append(sel.AddonIDs, addon.AddonID)
	}
	var selections []models.AddonSelection
	for _, groupID := range order {
		selections = append(selections, *byGroup[groupID])
	}
	return selections
}

// ConfirmBooking moves a pending booking to confirmed and schedules the
// completion task for its end instant.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, &AvailabilityError{Reason: fmt.Sprintf("only pending bookings can be confirmed, status is %s", booking.Status)}
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingConfirmed

	s.scheduleCompletion(booking)
	return booking, nil
}

func (s *DefaultBookingService) scheduleCompletion(booking *models.Booking) {
	if s.Tasks == nil {
		return
	}
	logger := utils.GetLogger()

	endAt, err := bookingInstant(booking.Date, booking.End)
	if err != nil {
		logger.Warn("cannot schedule completion", zap.String("id", booking.ID), zap.Error(err))
		return
	}
	task, err := cron.NewBookingCompleteTask(booking.ID)
	if err != nil {
		logger.Warn("cannot build completion task", zap.String("id", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, asynq.ProcessAt(endAt)); err != nil {
		logger.Warn("failed to enqueue completion task", zap.String("id", booking.ID), zap.Error(err))
	}
}

// CancelBooking cancels any non-completed booking, freeing its interval.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCompleted {
		return nil, &AvailabilityError{Reason: "completed booking cannot be cancelled"}
	}
	if booking.Status == models.BookingCancelled {
		return booking, nil
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled

	s.invalidateAvailability(ctx, booking.ItemID, booking.Date)
	return booking, nil
}

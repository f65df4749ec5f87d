// File: services/booking/availability.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quotify/config"
	"quotify/models"
	"quotify/utils"
)

// slotWindow is an availability slot with its clock strings parsed.
type slotWindow struct {
	slot  models.AvailabilitySlot
	start int
	end   int
}

func parseSlot(slot models.AvailabilitySlot) (slotWindow, error) {
	start, err := utils.ParseClock(slot.Start)
	if err != nil {
		return slotWindow{}, err
	}
	end, err := utils.ParseClock(slot.End)
	if err != nil {
		return slotWindow{}, err
	}
	return slotWindow{slot: slot, start: start, end: end}, nil
}

func weekdayOf(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return int(t.Weekday()), nil
}

// matchSlot finds the slot on the date's weekday that fully contains
// [start,end). An item without slots accepts every interval; the nil,
// nil return encodes that.
func matchSlot(item *models.Item, date string, start, end int) (*slotWindow, error) {
	if len(item.Slots) == 0 {
		return nil, nil
	}
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}
	for _, slot := range item.Slots {
		if slot.DayOfWeek != weekday {
			continue
		}
		win, err := parseSlot(slot)
		if err != nil {
			continue
		}
		if win.start <= start && end <= win.end {
			return &win, nil
		}
	}
	return nil, &AvailabilityError{Reason: "outside available hours"}
}

// CheckAvailability reports whether the proposed interval falls inside
// the item's declared weekly hours.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, itemID, date string, start, end int) error {
	item, err := s.Catalog.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	_, err = matchSlot(item, date, start, end)
	return err
}

// FindConflicts lists every non-cancelled booking on the item/date whose
// interval overlaps the proposed one.
func (s *DefaultBookingService) FindConflicts(ctx context.Context, itemID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	return s.Repo.FindOverlapping(ctx, itemID, date, start, end, excludeID)
}

// AvailableSlots is the advisory listing: each slot on the date's
// weekday with its current load against the declared capacity. Results
// are cached briefly and invalidated on booking writes.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, itemID, date string) ([]models.SlotAvailability, error) {
	if cached, ok := s.cachedAvailability(ctx, itemID, date); ok {
		return cached, nil
	}

	item, err := s.Catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.Repo.ListByItem(ctx, itemID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list slot bookings: %w", err)
	}

	var result []models.SlotAvailability
	for _, slot := range item.Slots {
		if slot.DayOfWeek != weekday {
			continue
		}
		win, err := parseSlot(slot)
		if err != nil {
			continue
		}
		count := 0
		for _, b := range bookings {
			if b.Status == models.BookingCancelled {
				continue
			}
			if utils.IntervalsOverlap(b.Start, b.End, win.start, win.end) {
				count++
			}
		}
		result = append(result, models.SlotAvailability{
			Slot:            slot,
			CurrentBookings: count,
			IsAvailable:     count < slot.MaxBookings,
		})
	}

	s.storeAvailability(ctx, itemID, date, result)
	return result, nil
}

func availabilityCacheKey(itemID, date string) string {
	return fmt.Sprintf("availability:%s:%s", itemID, date)
}

func (s *DefaultBookingService) cachedAvailability(ctx context.Context, itemID, date string) ([]models.SlotAvailability, bool) {
	if s.Cache == nil || config.AppConfig.AvailabilityCacheTTL <= 0 {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, availabilityCacheKey(itemID, date)).Result()
	if err != nil {
		return nil, false
	}
	var result []models.SlotAvailability
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *DefaultBookingService) storeAvailability(ctx context.Context, itemID, date string, result []models.SlotAvailability) {
	if s.Cache == nil || config.AppConfig.AvailabilityCacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	if err := s.Cache.Set(ctx, availabilityCacheKey(itemID, date), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("itemID", itemID), zap.String("date", date), zap.Error(err))
	}
}

// invalidateAvailability drops the cached listing after a booking write.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, itemID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(itemID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("itemID", itemID), zap.String("date", date), zap.Error(err))
	}
}

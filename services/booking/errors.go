package booking

import "fmt"

// AvailabilityError signals a requested interval outside the item's
// declared hours or a slot without remaining capacity.
type AvailabilityError struct {
	Reason string
}

func (e *AvailabilityError) Error() string {
	return e.Reason
}

// ConflictError signals an overlap with existing non-cancelled bookings.
// It carries the offenders for caller display.
type ConflictError struct {
	Bookings []Conflict
}

// Conflict is the caller-facing view of one offending booking.
type Conflict struct {
	BookingID string `json:"bookingId"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Status    string `json:"status"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested interval conflicts with %d existing booking(s)", len(e.Bookings))
}

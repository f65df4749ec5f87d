package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a reservation of an item's interval on a date. Prices are
// snapshotted at creation (or last revision) and never recomputed.
type Booking struct {
	ID        string          `bson:"id" json:"id"`
	ItemID    string          `bson:"item_id" json:"item_id"`
	Date      string          `bson:"date" json:"date"`   // "2006-01-02"
	Start     int             `bson:"start" json:"start"` // minutes from midnight
	End       int             `bson:"end" json:"end"`     // minutes from midnight, exclusive
	Quantity  int             `bson:"quantity" json:"quantity"`
	Addons    []SelectedAddon `bson:"addons,omitempty" json:"addons,omitempty"`
	Breakdown PriceBreakdown  `bson:"breakdown" json:"breakdown"`
	Status    string          `bson:"status" json:"status"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// PriceBreakdown is the full auditable result of one quote.
type PriceBreakdown struct {
	Pricing     PricingResult   `bson:"pricing" json:"pricing"`
	Addons      []SelectedAddon `bson:"addons,omitempty" json:"addons,omitempty"`
	AddonsTotal float64         `bson:"addonsTotal" json:"addonsTotal"`
	Subtotal    float64         `bson:"subtotal" json:"subtotal"`
	TaxRate     float64         `bson:"taxRate" json:"taxRate"`
	TaxSource   string          `bson:"taxSource" json:"taxSource"`
	TaxAmount   float64         `bson:"taxAmount" json:"taxAmount"`
	FinalPrice  float64         `bson:"finalPrice" json:"finalPrice"`
}

package models

import "time"

// Item is a sellable or bookable catalog entry. It belongs to a
// subcategory, a category, or both; at least one must be set, and a
// subcategory implies its category.
type Item struct {
	ID                  string             `bson:"id" json:"id"`
	Name                string             `bson:"name" json:"name"`
	CategoryID          string             `bson:"category_id,omitempty" json:"category_id,omitempty"`
	SubcategoryID       string             `bson:"subcategory_id,omitempty" json:"subcategory_id,omitempty"`
	Tax                 TaxSetting         `bson:"tax" json:"tax"`
	Pricing             PricingConfig      `bson:"pricing" json:"pricing"`
	AddonGroupIDs       []string           `bson:"addonGroupIds,omitempty" json:"addonGroupIds,omitempty"`
	Bookable            bool               `bson:"bookable" json:"bookable"`
	Slots               []AvailabilitySlot `bson:"slots,omitempty" json:"slots,omitempty"` // only meaningful when Bookable
	DefaultDurationMins int                `bson:"defaultDurationMins,omitempty" json:"defaultDurationMins,omitempty"`
	Active              bool               `bson:"active" json:"active"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

// AvailabilitySlot is a recurring weekly booking window owned by an item.
// Slots may not wrap past midnight.
type AvailabilitySlot struct {
	ID          string `bson:"id" json:"id"`
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Start       string `bson:"start" json:"start"`         // "HH:MM"
	End         string `bson:"end" json:"end"`             // "HH:MM", exclusive
	MaxBookings int    `bson:"maxBookings" json:"maxBookings"`
}

// SlotAvailability pairs a slot with its current load for a given date.
type SlotAvailability struct {
	Slot            AvailabilitySlot `json:"slot"`
	CurrentBookings int              `json:"currentBookings"`
	IsAvailable     bool             `json:"isAvailable"`
}

// File: handlers/bundle.go
package handlers

import (
	"quotify/services/booking"
	"quotify/services/catalog"
	"quotify/services/quote"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Items   *ItemHandler
	Addons  *AddonHandler
	Quotes  *QuoteHandler
	Booking *BookingHandler
}

func NewHandlerBundle(cat catalog.CatalogService, engine quote.QuoteEngine, bookings booking.BookingService) *HandlerBundle {
	return &HandlerBundle{
		Catalog: NewCatalogHandler(cat),
		Items:   NewItemHandler(cat),
		Addons:  NewAddonHandler(cat),
		Quotes:  NewQuoteHandler(engine),
		Booking: NewBookingHandler(bookings),
	}
}

// File: services/quote/interface.go
package quote

import (
	"context"
	"time"

	addonRepo "quotify/database/repository/addon"
	"quotify/models"
	"quotify/services/catalog"
)

// QuoteEngine is the single public computation entry point: it composes
// the pricing evaluator, the addon selector and the tax resolver into
// one end-to-end price breakdown.
type QuoteEngine interface {
	Quote(ctx context.Context, itemID string, quantity int, asOf time.Time, selections []models.AddonSelection) (*models.PriceBreakdown, error)
}

// DefaultQuoteEngine is the production quote engine.
type DefaultQuoteEngine struct {
	Addons  addonRepo.AddonRepository
	Catalog catalog.CatalogService
}

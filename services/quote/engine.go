// File: services/quote/engine.go
package quote

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"quotify/models"
	"quotify/services/catalog"
	"quotify/utils"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quote builds the full price breakdown for an item: base pricing, addon
// selections, then tax on the subtotal. Rounding to two decimals happens
// only at the tax step.
func (e *DefaultQuoteEngine) Quote(
	ctx context.Context,
	itemID string,
	quantity int,
	asOf time.Time,
	selections []models.AddonSelection,
) (*models.PriceBreakdown, error) {
	logger := utils.GetLogger()

	item, err := e.Catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, &catalog.InactiveEntityError{Kind: "item", ID: itemID}
	}

	pricing, err := EvaluatePricing(item.Pricing, quantity, asOf)
	if err != nil {
		// Configs are validated at write time; reaching this means the
		// stored config is corrupt.
		logger.Error("pricing evaluation failed on validated config",
			zap.String("itemID", itemID), zap.Error(err))
		return nil, fmt.Errorf("pricing evaluation failed: %w", err)
	}

	selected, addonsTotal, err := e.priceAddons(ctx, item, selections)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Amount + addonsTotal

	tax, err := e.Catalog.ResolveTaxFor(ctx, item)
	if err != nil {
		return nil, err
	}
	taxAmount := 0.0
	if tax.Applicable {
		taxAmount = round2(subtotal * tax.Percentage / 100)
	}

	return &models.PriceBreakdown{
		Pricing:     pricing,
		Addons:      selected,
		AddonsTotal: addonsTotal,
		Subtotal:    subtotal,
		TaxRate:     tax.Percentage,
		TaxSource:   tax.Source,
		TaxAmount:   taxAmount,
		FinalPrice:  round2(subtotal + taxAmount),
	}, nil
}

// priceAddons validates every group attached to the item against the
// customer's selections and prices the valid picks. A group with no
// selection still runs through validation so mandatory groups reject.
func (e *DefaultQuoteEngine) priceAddons(
	ctx context.Context,
	item *models.Item,
	selections []models.AddonSelection,
) ([]models.SelectedAddon, float64, error) {
	selectionByGroup := make(map[string][]string, len(selections))
	for _, sel := range selections {
		selectionByGroup[sel.GroupID] = append(selectionByGroup[sel.GroupID], sel.AddonIDs...)
	}

	attached := make(map[string]bool, len(item.AddonGroupIDs))
	for _, id := range item.AddonGroupIDs {
		attached[id] = true
	}
	for groupID := range selectionByGroup {
		if !attached[groupID] {
			return nil, 0, &catalog.NotFoundError{Kind: "addon group", ID: groupID}
		}
	}

	if len(item.AddonGroupIDs) == 0 {
		return nil, 0, nil
	}

	groups, err := e.Addons.GetByIDs(ctx, item.AddonGroupIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch addon groups: %w", err)
	}

	var selected []models.SelectedAddon
	total := 0.0
	for _, group := range groups {
		if !group.Active {
			continue
		}
		valid, err := ValidateSelection(group, selectionByGroup[group.ID])
		if err != nil {
			return nil, 0, err
		}
		for _, addon := range valid {
			selected = append(selected, models.SelectedAddon{
				GroupID: group.ID,
				AddonID: addon.ID,
				Name:    addon.Name,
				Price:   addon.Price,
			})
			total += addon.Price
		}
	}
	return selected, total, nil
}

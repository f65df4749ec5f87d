package quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotify/models"
	"quotify/services/catalog"
)

type engineFixture struct {
	items   *memItemRepo
	addons  *memAddonRepo
	catRepo *memCatalogRepo
	engine  *DefaultQuoteEngine
}

func newEngineFixture() *engineFixture {
	items := newMemItemRepo()
	addons := newMemAddonRepo()
	catRepo := newMemCatalogRepo()
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catRepo,
		Items:  items,
		Addons: addons,
	}
	return &engineFixture{
		items:   items,
		addons:  addons,
		catRepo: catRepo,
		engine: &DefaultQuoteEngine{
			Addons:  addons,
			Catalog: catalogService,
		},
	}
}

// A static item under a tax-enabled category, with one optional addon
// group. Final price: base 100 x 2 = 200, addon 20, subtotal 220, 5%
// tax 11.00, total 231.00.
func TestQuoteFullBreakdown(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.catRepo.categories["cat-1"] = models.Category{
		ID:     "cat-1",
		Name:   "Venues",
		Tax:    models.TaxSetting{Mode: models.TaxEnabled, Percentage: 5},
		Active: true,
	}
	fx.addons.groups["grp-1"] = models.AddonGroup{
		ID:            "grp-1",
		Name:          "Extras",
		SelectionType: models.SelectionSingle,
		MaxSelections: 1,
		Active:        true,
		Addons: []models.Addon{
			{ID: "proj", Name: "Projector", Price: 20, Active: true},
		},
	}
	fx.items.items["item-1"] = models.Item{
		ID:            "item-1",
		Name:          "Hall",
		CategoryID:    "cat-1",
		Tax:           models.TaxSetting{Mode: models.TaxInherit},
		Pricing:       models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		AddonGroupIDs: []string{"grp-1"},
		Active:        true,
	}

	breakdown, err := fx.engine.Quote(ctx, "item-1", 2, time.Now(), []models.AddonSelection{
		{GroupID: "grp-1", AddonIDs: []string{"proj"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, breakdown.Pricing.Amount)
	assert.Equal(t, 20.0, breakdown.AddonsTotal)
	assert.Equal(t, 220.0, breakdown.Subtotal)
	assert.Equal(t, 5.0, breakdown.TaxRate)
	assert.Equal(t, models.TaxSourceCategory, breakdown.TaxSource)
	assert.Equal(t, 11.0, breakdown.TaxAmount)
	assert.Equal(t, 231.0, breakdown.FinalPrice)
	require.Len(t, breakdown.Addons, 1)
	assert.Equal(t, "Projector", breakdown.Addons[0].Name)
}

func TestQuoteIsDeterministic(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.items.items["item-1"] = models.Item{
		ID:      "item-1",
		Name:    "Hall",
		Tax:     models.TaxSetting{Mode: models.TaxDisabled},
		Pricing: models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 42}},
		Active:  true,
	}

	asOf := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	first, err := fx.engine.Quote(ctx, "item-1", 3, asOf, nil)
	require.NoError(t, err)
	second, err := fx.engine.Quote(ctx, "item-1", 3, asOf, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuoteNoTaxWhenDisabled(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.items.items["item-1"] = models.Item{
		ID:      "item-1",
		Name:    "Hall",
		Tax:     models.TaxSetting{Mode: models.TaxDisabled},
		Pricing: models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		Active:  true,
	}

	breakdown, err := fx.engine.Quote(ctx, "item-1", 1, time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.TaxAmount)
	assert.Equal(t, 100.0, breakdown.FinalPrice)
	assert.Equal(t, models.TaxSourceSelf, breakdown.TaxSource)
}

func TestQuoteMandatoryGroupWithoutSelectionRejected(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.addons.groups["grp-1"] = models.AddonGroup{
		ID:            "grp-1",
		Name:          "Required Extras",
		SelectionType: models.SelectionSingle,
		Mandatory:     true,
		MinSelections: 1,
		MaxSelections: 1,
		Active:        true,
		Addons: []models.Addon{
			{ID: "svc", Name: "Service", Price: 10, Active: true},
		},
	}
	fx.items.items["item-1"] = models.Item{
		ID:            "item-1",
		Name:          "Hall",
		Tax:           models.TaxSetting{Mode: models.TaxDisabled},
		Pricing:       models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		AddonGroupIDs: []string{"grp-1"},
		Active:        true,
	}

	_, err := fx.engine.Quote(ctx, "item-1", 1, time.Now(), nil)
	var violation *SelectionViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "Required Extras", violation.GroupName)
}

func TestQuoteSelectionForUnattachedGroupRejected(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.addons.groups["grp-other"] = models.AddonGroup{
		ID: "grp-other", Name: "Other", SelectionType: models.SelectionSingle,
		MaxSelections: 1, Active: true,
	}
	fx.items.items["item-1"] = models.Item{
		ID:      "item-1",
		Name:    "Hall",
		Tax:     models.TaxSetting{Mode: models.TaxDisabled},
		Pricing: models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		Active:  true,
	}

	_, err := fx.engine.Quote(ctx, "item-1", 1, time.Now(), []models.AddonSelection{
		{GroupID: "grp-other", AddonIDs: []string{"x"}},
	})
	var notFound *catalog.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestQuoteInactiveItemRejected(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.items.items["item-1"] = models.Item{
		ID:      "item-1",
		Name:    "Hall",
		Pricing: models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		Active:  false,
	}

	_, err := fx.engine.Quote(ctx, "item-1", 1, time.Now(), nil)
	var inactive *catalog.InactiveEntityError
	require.ErrorAs(t, err, &inactive)
}

func TestQuoteUnknownItemRejected(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	_, err := fx.engine.Quote(ctx, "nope", 1, time.Now(), nil)
	var notFound *catalog.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestQuoteInactiveGroupSkipped(t *testing.T) {
	ctx := context.Background()
	fx := newEngineFixture()

	fx.addons.groups["grp-1"] = models.AddonGroup{
		ID:            "grp-1",
		Name:          "Retired",
		SelectionType: models.SelectionSingle,
		Mandatory:     true,
		MinSelections: 1,
		MaxSelections: 1,
		Active:        false,
	}
	fx.items.items["item-1"] = models.Item{
		ID:            "item-1",
		Name:          "Hall",
		Tax:           models.TaxSetting{Mode: models.TaxDisabled},
		Pricing:       models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 100}},
		AddonGroupIDs: []string{"grp-1"},
		Active:        true,
	}

	// An inactive group no longer constrains the quote even though it
	// is mandatory.
	breakdown, err := fx.engine.Quote(ctx, "item-1", 1, time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, breakdown.FinalPrice)
}

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotify/models"
)

func TestCreateCategoryNormalizesTax(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateCategory(context.Background(), &models.Category{
		Name: "Venues",
		Tax:  models.TaxSetting{Mode: models.TaxDisabled, Percentage: 15},
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	// The percentage is meaningless outside "enabled" and gets cleared.
	assert.Equal(t, 0.0, created.Tax.Percentage)
}

func TestCreateCategoryDefaultsToInherit(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateCategory(context.Background(), &models.Category{Name: "Venues"})
	require.NoError(t, err)
	assert.Equal(t, models.TaxInherit, created.Tax.Mode)
}

func TestCreateCategoryRejectsBadTax(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), &models.Category{
		Name: "Venues",
		Tax:  models.TaxSetting{Mode: models.TaxEnabled, Percentage: 150},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateSubcategoryRequiresExistingCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateSubcategory(context.Background(), &models.Subcategory{
		Name:       "Halls",
		CategoryID: "missing",
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRestoreSubcategoryRefusesInactiveParent(t *testing.T) {
	svc, catRepo, _, _ := newTestService()
	ctx := context.Background()

	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: false}
	catRepo.subcategories["sub-1"] = models.Subcategory{ID: "sub-1", Name: "Halls", CategoryID: "cat-1", Active: false}

	err := svc.RestoreSubcategory(ctx, "sub-1")
	var inactive *InactiveEntityError
	require.ErrorAs(t, err, &inactive)
	assert.Equal(t, "category", inactive.Kind)

	cat := catRepo.categories["cat-1"]
	cat.Active = true
	catRepo.categories["cat-1"] = cat
	require.NoError(t, svc.RestoreSubcategory(ctx, "sub-1"))
	assert.True(t, catRepo.subcategories["sub-1"].Active)
}

func TestCreateItemDerivesCategoryFromSubcategory(t *testing.T) {
	svc, catRepo, _, _ := newTestService()
	ctx := context.Background()

	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: true}
	catRepo.subcategories["sub-1"] = models.Subcategory{ID: "sub-1", Name: "Halls", CategoryID: "cat-1", Active: true}

	created, err := svc.CreateItem(ctx, &models.Item{
		Name:          "Grand Hall",
		SubcategoryID: "sub-1",
		Pricing:       models.PricingConfig{Type: models.PricingStatic, Static: &models.StaticPricingData{BasePrice: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-1", created.CategoryID)
	assert.True(t, created.Active)
}

func TestCreateItemRequiresPlacement(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateItem(context.Background(), &models.Item{
		Name:    "Orphan",
		Pricing: models.PricingConfig{Type: models.PricingComplimentary},
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateItemRejectsUnknownAddonGroup(t *testing.T) {
	svc, catRepo, _, _ := newTestService()
	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: true}

	_, err := svc.CreateItem(context.Background(), &models.Item{
		Name:          "Hall",
		CategoryID:    "cat-1",
		Pricing:       models.PricingConfig{Type: models.PricingComplimentary},
		AddonGroupIDs: []string{"missing"},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRestoreItemRefusesInactiveParents(t *testing.T) {
	svc, catRepo, items, _ := newTestService()
	ctx := context.Background()

	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: true}
	catRepo.subcategories["sub-1"] = models.Subcategory{ID: "sub-1", Name: "Halls", CategoryID: "cat-1", Active: false}
	items.items["item-1"] = models.Item{
		ID: "item-1", Name: "Hall", CategoryID: "cat-1", SubcategoryID: "sub-1",
		Pricing: models.PricingConfig{Type: models.PricingComplimentary},
		Active:  false,
	}

	err := svc.RestoreItem(ctx, "item-1")
	var inactive *InactiveEntityError
	require.ErrorAs(t, err, &inactive)
	assert.Equal(t, "subcategory", inactive.Kind)
}

func TestSetItemSlots(t *testing.T) {
	svc, catRepo, items, _ := newTestService()
	ctx := context.Background()

	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: true}
	items.items["item-1"] = models.Item{
		ID: "item-1", Name: "Hall", CategoryID: "cat-1",
		Pricing:  models.PricingConfig{Type: models.PricingComplimentary},
		Bookable: true,
		Active:   true,
	}

	updated, err := svc.SetItemSlots(ctx, "item-1", []models.AvailabilitySlot{
		{DayOfWeek: 1, Start: "09:00", End: "17:00", MaxBookings: 2},
	})
	require.NoError(t, err)
	require.Len(t, updated.Slots, 1)

	// Rejected on a non-bookable item.
	item := items.items["item-1"]
	item.Bookable = false
	items.items["item-1"] = item
	_, err = svc.SetItemSlots(ctx, "item-1", nil)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateCategoryPreservesLifecycleFields(t *testing.T) {
	svc, catRepo, _, _ := newTestService()
	ctx := context.Background()

	catRepo.categories["cat-1"] = models.Category{ID: "cat-1", Name: "Venues", Active: false}

	updated, err := svc.UpdateCategory(ctx, &models.Category{
		ID:   "cat-1",
		Name: "Event Venues",
		Tax:  models.TaxSetting{Mode: models.TaxEnabled, Percentage: 10},
	})
	require.NoError(t, err)
	// Updates never resurrect a soft-deleted entity.
	assert.False(t, updated.Active)
	assert.Equal(t, "Event Venues", updated.Name)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	err := svc.DeleteCategory(context.Background(), "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreateAddonGroupActivatesAddons(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateAddonGroup(context.Background(), &models.AddonGroup{
		Name:          "Extras",
		SelectionType: models.SelectionMultiple,
		MaxSelections: 3,
		Addons: []models.Addon{
			{Name: "Projector", Price: 20},
			{Name: "Catering", Price: 150},
		},
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	for _, addon := range created.Addons {
		assert.True(t, addon.Active)
	}
}

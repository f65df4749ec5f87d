// File: services/catalog/items.go
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	itemRepo "quotify/database/repository/item"
	"quotify/models"
	"quotify/utils"
)

// resolveParents checks the item's placement in the hierarchy and
// derives the category from the subcategory when one is set.
func (s *DefaultCatalogService) resolveParents(ctx context.Context, item *models.Item) error {
	if item.CategoryID == "" && item.SubcategoryID == "" {
		return newValidationError("item must belong to a category or a subcategory")
	}
	if item.SubcategoryID != "" {
		sub, err := s.GetSubcategory(ctx, item.SubcategoryID)
		if err != nil {
			return err
		}
		item.CategoryID = sub.CategoryID
		return nil
	}
	_, err := s.GetCategory(ctx, item.CategoryID)
	return err
}

func (s *DefaultCatalogService) validateItem(ctx context.Context, item *models.Item) error {
	if item.Name == "" {
		return newValidationError("item name is required")
	}
	if err := validateTaxSetting(item.Tax); err != nil {
		return err
	}
	normalizeTax(&item.Tax)

	if err := s.resolveParents(ctx, item); err != nil {
		return err
	}
	if err := ValidatePricingConfig(item.Pricing); err != nil {
		return err
	}
	if err := validateSlots(item.Slots); err != nil {
		return err
	}
	for _, groupID := range item.AddonGroupIDs {
		if _, err := s.GetAddonGroup(ctx, groupID); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultCatalogService) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := s.validateItem(ctx, item); err != nil {
		return nil, err
	}
	item.Active = true

	if err := s.Items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	utils.GetLogger().Info("item created",
		zap.String("id", item.ID),
		zap.String("name", item.Name),
		zap.String("pricingType", item.Pricing.Type))
	return item, nil
}

func (s *DefaultCatalogService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.Items.GetByID(ctx, id)
	if err != nil {
		if isNoDocs(err) {
			return nil, &NotFoundError{Kind: "item", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return item, nil
}

func (s *DefaultCatalogService) ListItems(ctx context.Context, filter itemRepo.ItemFilter) ([]models.Item, error) {
	return s.Items.List(ctx, filter)
}

func (s *DefaultCatalogService) UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	existing, err := s.GetItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if err := s.validateItem(ctx, item); err != nil {
		return nil, err
	}
	item.Active = existing.Active
	item.CreatedAt = existing.CreatedAt

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (s *DefaultCatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.Items.SetActive(ctx, id, false); err != nil {
		if isNoDocs(err) {
			return &NotFoundError{Kind: "item", ID: id}
		}
		return err
	}
	return nil
}

// RestoreItem reactivates an item, refusing when its parent subcategory
// or category is inactive.
func (s *DefaultCatalogService) RestoreItem(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if item.SubcategoryID != "" {
		sub, err := s.GetSubcategory(ctx, item.SubcategoryID)
		if err != nil {
			return err
		}
		if !sub.Active {
			return &InactiveEntityError{Kind: "subcategory", ID: sub.ID}
		}
	}
	if item.CategoryID != "" {
		cat, err := s.GetCategory(ctx, item.CategoryID)
		if err != nil {
			return err
		}
		if !cat.Active {
			return &InactiveEntityError{Kind: "category", ID: cat.ID}
		}
	}
	return s.Items.SetActive(ctx, id, true)
}

// SetItemSlots replaces the item's availability slots.
func (s *DefaultCatalogService) SetItemSlots(ctx context.Context, itemID string, slots []models.AvailabilitySlot) (*models.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Bookable {
		return nil, newValidationError("item %s is not bookable", itemID)
	}
	if err := validateSlots(slots); err != nil {
		return nil, err
	}
	if err := s.Items.SetSlots(ctx, itemID, slots); err != nil {
		return nil, fmt.Errorf("failed to set item slots: %w", err)
	}
	return s.GetItem(ctx, itemID)
}

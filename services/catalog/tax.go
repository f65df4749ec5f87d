// File: services/catalog/tax.go
package catalog

import (
	"context"

	"quotify/models"
)

// taxResultFrom converts an explicit setting into a resolver result.
// Percentage is forced to 0 whenever tax does not apply.
func taxResultFrom(tax models.TaxSetting, source string) *models.TaxResult {
	res := &models.TaxResult{
		Applicable: tax.Mode == models.TaxEnabled,
		Source:     source,
	}
	if res.Applicable {
		res.Percentage = tax.Percentage
	}
	return res
}

var defaultTaxResult = models.TaxResult{Applicable: false, Percentage: 0, Source: models.TaxSourceDefault}

// inherits treats a missing mode the same as an explicit "inherit".
func inherits(tax models.TaxSetting) bool {
	return tax.Mode == models.TaxInherit || tax.Mode == ""
}

// ResolveTaxFor resolves the effective tax for an already-loaded item by
// walking the inheritance chain: item, then its subcategory, then the
// category. Resolution always reads the current hierarchy state, so a
// category edit is reflected on the next call without touching
// descendants.
func (s *DefaultCatalogService) ResolveTaxFor(ctx context.Context, item *models.Item) (*models.TaxResult, error) {
	if !inherits(item.Tax) {
		return taxResultFrom(item.Tax, models.TaxSourceSelf), nil
	}

	if item.SubcategoryID != "" {
		sub, err := s.GetSubcategory(ctx, item.SubcategoryID)
		if err != nil {
			return nil, err
		}
		return s.resolveSubcategoryChain(ctx, sub, models.TaxSourceSubcategory)
	}

	if item.CategoryID != "" {
		cat, err := s.GetCategory(ctx, item.CategoryID)
		if err != nil {
			return nil, err
		}
		return categoryTaxResult(cat), nil
	}

	res := defaultTaxResult
	return &res, nil
}

func categoryTaxResult(cat *models.Category) *models.TaxResult {
	if inherits(cat.Tax) {
		res := defaultTaxResult
		return &res
	}
	return taxResultFrom(cat.Tax, models.TaxSourceCategory)
}

// resolveSubcategoryChain returns the subcategory's own setting when
// explicit, else the parent category's.
func (s *DefaultCatalogService) resolveSubcategoryChain(ctx context.Context, sub *models.Subcategory, selfSource string) (*models.TaxResult, error) {
	if !inherits(sub.Tax) {
		return taxResultFrom(sub.Tax, selfSource), nil
	}
	cat, err := s.GetCategory(ctx, sub.CategoryID)
	if err != nil {
		return nil, err
	}
	return categoryTaxResult(cat), nil
}

// ResolveItemTax resolves effective tax for an item by id.
func (s *DefaultCatalogService) ResolveItemTax(ctx context.Context, itemID string) (*models.TaxResult, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.ResolveTaxFor(ctx, item)
}

// ResolveSubcategoryTax resolves effective tax for a subcategory by id.
func (s *DefaultCatalogService) ResolveSubcategoryTax(ctx context.Context, subID string) (*models.TaxResult, error) {
	sub, err := s.GetSubcategory(ctx, subID)
	if err != nil {
		return nil, err
	}
	return s.resolveSubcategoryChain(ctx, sub, models.TaxSourceSelf)
}

// File: services/catalog/subcategories.go
package catalog

import (
	"context"
	"fmt"

	"quotify/models"
)

func (s *DefaultCatalogService) CreateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error) {
	if sub.Name == "" {
		return nil, newValidationError("subcategory name is required")
	}
	if err := validateTaxSetting(sub.Tax); err != nil {
		return nil, err
	}
	normalizeTax(&sub.Tax)

	if _, err := s.GetCategory(ctx, sub.CategoryID); err != nil {
		return nil, err
	}
	sub.Active = true

	if err := s.Repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return sub, nil
}

func (s *DefaultCatalogService) GetSubcategory(ctx context.Context, id string) (*models.Subcategory, error) {
	sub, err := s.Repo.GetSubcategoryByID(ctx, id)
	if err != nil {
		if isNoDocs(err) {
			return nil, &NotFoundError{Kind: "subcategory", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch subcategory: %w", err)
	}
	return sub, nil
}

func (s *DefaultCatalogService) ListSubcategories(ctx context.Context, categoryID string, includeInactive bool) ([]models.Subcategory, error) {
	return s.Repo.ListSubcategories(ctx, categoryID, includeInactive)
}

func (s *DefaultCatalogService) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error) {
	existing, err := s.GetSubcategory(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	if sub.Name == "" {
		return nil, newValidationError("subcategory name is required")
	}
	if err := validateTaxSetting(sub.Tax); err != nil {
		return nil, err
	}
	normalizeTax(&sub.Tax)

	if sub.CategoryID != existing.CategoryID {
		if _, err := s.GetCategory(ctx, sub.CategoryID); err != nil {
			return nil, err
		}
	}
	sub.Active = existing.Active
	sub.CreatedAt = existing.CreatedAt

	if err := s.Repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}
	return sub, nil
}

func (s *DefaultCatalogService) DeleteSubcategory(ctx context.Context, id string) error {
	if err := s.Repo.SetSubcategoryActive(ctx, id, false); err != nil {
		if isNoDocs(err) {
			return &NotFoundError{Kind: "subcategory", ID: id}
		}
		return err
	}
	return nil
}

// RestoreSubcategory reactivates a subcategory. It refuses when the
// parent category is itself inactive.
func (s *DefaultCatalogService) RestoreSubcategory(ctx context.Context, id string) error {
	sub, err := s.GetSubcategory(ctx, id)
	if err != nil {
		return err
	}
	cat, err := s.GetCategory(ctx, sub.CategoryID)
	if err != nil {
		return err
	}
	if !cat.Active {
		return &InactiveEntityError{Kind: "category", ID: cat.ID}
	}
	return s.Repo.SetSubcategoryActive(ctx, id, true)
}

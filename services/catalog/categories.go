// File: services/catalog/categories.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"quotify/models"
	"quotify/utils"
)

func isNoDocs(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// normalizeTax enforces the tax invariants: an omitted mode means
// "inherit", and a percentage is meaningless, and must be cleared,
// unless the mode is "enabled".
func normalizeTax(tax *models.TaxSetting) {
	if tax.Mode == "" {
		tax.Mode = models.TaxInherit
	}
	if tax.Mode != models.TaxEnabled {
		tax.Percentage = 0
	}
}

func validateTaxSetting(tax models.TaxSetting) error {
	switch tax.Mode {
	case models.TaxEnabled:
		if tax.Percentage < 0 || tax.Percentage > 100 {
			return newValidationError("tax percentage must be between 0 and 100, got %.2f", tax.Percentage)
		}
	case models.TaxDisabled, models.TaxInherit, "":
	default:
		return newValidationError("unknown tax mode %q", tax.Mode)
	}
	return nil
}

func (s *DefaultCatalogService) CreateCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	if cat.Name == "" {
		return nil, newValidationError("category name is required")
	}
	if err := validateTaxSetting(cat.Tax); err != nil {
		return nil, err
	}
	normalizeTax(&cat.Tax)
	cat.Active = true

	if err := s.Repo.CreateCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	utils.GetLogger().Info("category created", zap.String("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (s *DefaultCatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	cat, err := s.Repo.GetCategoryByID(ctx, id)
	if err != nil {
		if isNoDocs(err) {
			return nil, &NotFoundError{Kind: "category", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return cat, nil
}

func (s *DefaultCatalogService) ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx, includeInactive)
}

func (s *DefaultCatalogService) UpdateCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	existing, err := s.GetCategory(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	if cat.Name == "" {
		return nil, newValidationError("category name is required")
	}
	if err := validateTaxSetting(cat.Tax); err != nil {
		return nil, err
	}
	normalizeTax(&cat.Tax)
	cat.Active = existing.Active
	cat.CreatedAt = existing.CreatedAt

	if err := s.Repo.UpdateCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return cat, nil
}

func (s *DefaultCatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.Repo.SetCategoryActive(ctx, id, false); err != nil {
		if isNoDocs(err) {
			return &NotFoundError{Kind: "category", ID: id}
		}
		return err
	}
	utils.GetLogger().Info("category soft-deleted", zap.String("id", id))
	return nil
}

func (s *DefaultCatalogService) RestoreCategory(ctx context.Context, id string) error {
	if err := s.Repo.SetCategoryActive(ctx, id, true); err != nil {
		if isNoDocs(err) {
			return &NotFoundError{Kind: "category", ID: id}
		}
		return err
	}
	return nil
}

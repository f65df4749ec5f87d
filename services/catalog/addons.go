// File: services/catalog/addons.go
package catalog

import (
	"context"
	"fmt"

	"quotify/models"
)

func validateAddonGroup(group *models.AddonGroup) error {
	if group.Name == "" {
		return newValidationError("addon group name is required")
	}
	switch group.SelectionType {
	case models.SelectionSingle:
		// Single-select groups allow at most one pick.
		group.MaxSelections = 1
	case models.SelectionMultiple:
		if group.MaxSelections < 1 {
			return newValidationError("multiple-select group needs maxSelections >= 1")
		}
	default:
		return newValidationError("unknown selection type %q", group.SelectionType)
	}
	if group.Mandatory && group.MinSelections < 1 {
		group.MinSelections = 1
	}
	if group.MinSelections < 0 {
		return newValidationError("minSelections must not be negative")
	}
	if group.MinSelections > group.MaxSelections {
		return newValidationError("minSelections %d exceeds maxSelections %d", group.MinSelections, group.MaxSelections)
	}
	for _, addon := range group.Addons {
		if addon.Name == "" {
			return newValidationError("addon name is required")
		}
		if addon.Price < 0 {
			return newValidationError("addon %q has negative price", addon.Name)
		}
	}
	return nil
}

func (s *DefaultCatalogService) CreateAddonGroup(ctx context.Context, group *models.AddonGroup) (*models.AddonGroup, error) {
	if err := validateAddonGroup(group); err != nil {
		return nil, err
	}
	group.Active = true
	for i := range group.Addons {
		group.Addons[i].Active = true
	}

	if err := s.Addons.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create addon group: %w", err)
	}
	return group, nil
}

func (s *DefaultCatalogService) GetAddonGroup(ctx context.Context, id string) (*models.AddonGroup, error) {
	group, err := s.Addons.GetByID(ctx, id)
	if err != nil {
		if isNoDocs(err) {
			return nil, &NotFoundError{Kind: "addon group", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch addon group: %w", err)
	}
	return group, nil
}

func (s *DefaultCatalogService) ListAddonGroups(ctx context.Context, includeInactive bool) ([]models.AddonGroup, error) {
	return s.Addons.List(ctx, includeInactive)
}

func (s *DefaultCatalogService) UpdateAddonGroup(ctx context.Context, group *models.AddonGroup) (*models.AddonGroup, error) {
	existing, err := s.GetAddonGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	if err := validateAddonGroup(group); err != nil {
		return nil, err
	}
	group.Active = existing.Active
	group.CreatedAt = existing.CreatedAt

	if err := s.Addons.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update addon group: %w", err)
	}
	return group, nil
}

func (s *DefaultCatalogService) DeleteAddonGroup(ctx context.Context, id string) error {
	if err := s.Addons.SetActive(ctx, id, false); err != nil {
		if isNoDocs(err) {
			return &NotFoundError{Kind: "addon group", ID: id}
		}
		return err
	}
	return nil
}

// File: services/catalog/validation.go
package catalog

import (
	"sort"

	"quotify/models"
	"quotify/utils"
)

// ValidatePricingConfig enforces the type-specific pricing rules at
// write time. Evaluation assumes a config that passed this gate.
func ValidatePricingConfig(cfg models.PricingConfig) error {
	switch cfg.Type {
	case models.PricingStatic:
		if cfg.Static == nil {
			return newValidationError("static pricing requires a base price")
		}
		if cfg.Static.BasePrice < 0 {
			return newValidationError("base price must not be negative")
		}

	case models.PricingTiered:
		if cfg.Tiered == nil || len(cfg.Tiered.Tiers) == 0 {
			return newValidationError("tiered pricing requires at least one tier")
		}
		return validateTiers(cfg.Tiered.Tiers)

	case models.PricingComplimentary:
		// Nothing to configure.

	case models.PricingDiscounted:
		if cfg.Discounted == nil {
			return newValidationError("discounted pricing requires a base price and discount")
		}
		d := cfg.Discounted
		if d.BasePrice < 0 {
			return newValidationError("base price must not be negative")
		}
		if d.DiscountType != models.DiscountFlat && d.DiscountType != models.DiscountPercentage {
			return newValidationError("unknown discount type %q", d.DiscountType)
		}
		if d.DiscountValue < 0 {
			return newValidationError("discount value must not be negative")
		}

	case models.PricingDynamic:
		if cfg.Dynamic == nil || len(cfg.Dynamic.Rules) == 0 {
			return newValidationError("dynamic pricing requires at least one rule")
		}
		if cfg.Dynamic.DefaultUnitPrice < 0 {
			return newValidationError("default unit price must not be negative")
		}
		for i, rule := range cfg.Dynamic.Rules {
			if rule.UnitPrice < 0 {
				return newValidationError("rule %d has negative unit price", i)
			}
			for _, day := range rule.Days {
				if day < 0 || day > 6 {
					return newValidationError("rule %d has invalid day %d", i, day)
				}
			}
			if _, err := utils.ParseClock(rule.Start); err != nil {
				return newValidationError("rule %d: %v", i, err)
			}
			if _, err := utils.ParseClock(rule.End); err != nil {
				return newValidationError("rule %d: %v", i, err)
			}
		}

	default:
		return newValidationError("unknown pricing type %q", cfg.Type)
	}
	return nil
}

// validateTiers rejects malformed or overlapping quantity ranges.
func validateTiers(tiers []models.PriceTier) error {
	sorted := make([]models.PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinQty < sorted[j].MinQty })

	for i, tier := range sorted {
		if tier.MinQty < 1 {
			return newValidationError("tier minQty must be at least 1")
		}
		if tier.MaxQty < tier.MinQty {
			return newValidationError("tier range [%d,%d] is inverted", tier.MinQty, tier.MaxQty)
		}
		if tier.UnitPrice < 0 {
			return newValidationError("tier [%d,%d] has negative price", tier.MinQty, tier.MaxQty)
		}
		if i > 0 && tier.MinQty <= sorted[i-1].MaxQty {
			return newValidationError("tier ranges [%d,%d] and [%d,%d] overlap",
				sorted[i-1].MinQty, sorted[i-1].MaxQty, tier.MinQty, tier.MaxQty)
		}
	}
	return nil
}

// validateSlots checks weekly availability windows. Slots may not wrap
// past midnight.
func validateSlots(slots []models.AvailabilitySlot) error {
	for i, slot := range slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return newValidationError("slot %d has invalid day of week %d", i, slot.DayOfWeek)
		}
		start, err := utils.ParseClock(slot.Start)
		if err != nil {
			return newValidationError("slot %d: %v", i, err)
		}
		end, err := utils.ParseClock(slot.End)
		if err != nil {
			return newValidationError("slot %d: %v", i, err)
		}
		if end <= start {
			return newValidationError("slot %d window [%s,%s] is empty or wraps midnight", i, slot.Start, slot.End)
		}
		if slot.MaxBookings < 1 {
			return newValidationError("slot %d needs maxBookings >= 1", i)
		}
	}
	return nil
}

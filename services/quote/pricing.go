// File: services/quote/pricing.go
package quote

import (
	"fmt"
	"sort"
	"time"

	"quotify/models"
	"quotify/utils"
)

// EvaluatePricing computes the price for a quantity at a point in time.
// It is a pure function of its arguments; configs are assumed to have
// passed write-time validation, so an unknown type here is an internal
// consistency fault, not user input.
func EvaluatePricing(cfg models.PricingConfig, quantity int, asOf time.Time) (models.PricingResult, error) {
	if quantity < 1 {
		quantity = 1
	}

	switch cfg.Type {
	case models.PricingStatic:
		return evaluateStatic(*cfg.Static, quantity), nil
	case models.PricingTiered:
		return evaluateTiered(*cfg.Tiered, quantity), nil
	case models.PricingComplimentary:
		return models.PricingResult{Amount: 0, UnitPrice: 0, RuleLabel: "Complimentary"}, nil
	case models.PricingDiscounted:
		return evaluateDiscounted(*cfg.Discounted, quantity), nil
	case models.PricingDynamic:
		return evaluateDynamic(*cfg.Dynamic, quantity, asOf), nil
	default:
		return models.PricingResult{}, fmt.Errorf("unknown pricing type %q", cfg.Type)
	}
}

func evaluateStatic(data models.StaticPricingData, quantity int) models.PricingResult {
	return models.PricingResult{
		Amount:    data.BasePrice * float64(quantity),
		UnitPrice: data.BasePrice,
		RuleLabel: "Fixed Price",
	}
}

// evaluateTiered selects the tier whose range contains the quantity,
// boundaries included. When no tier matches it falls back to the tier
// with the highest range, or the configured default unit price when no
// tiers exist, labelled "overflow".
func evaluateTiered(data models.TieredPricingData, quantity int) models.PricingResult {
	tiers := make([]models.PriceTier, len(data.Tiers))
	copy(tiers, data.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinQty < tiers[j].MinQty })

	for _, tier := range tiers {
		if quantity >= tier.MinQty && quantity <= tier.MaxQty {
			return models.PricingResult{
				Amount:    tier.UnitPrice * float64(quantity),
				UnitPrice: tier.UnitPrice,
				RuleLabel: fmt.Sprintf("Tier %d-%d", tier.MinQty, tier.MaxQty),
			}
		}
	}

	unitPrice := data.DefaultUnitPrice
	if len(tiers) > 0 {
		unitPrice = tiers[len(tiers)-1].UnitPrice
	}
	return models.PricingResult{
		Amount:    unitPrice * float64(quantity),
		UnitPrice: unitPrice,
		RuleLabel: "overflow",
	}
}

// evaluateDiscounted subtracts a flat or percentage discount from the
// base amount. The discount never exceeds the base amount.
func evaluateDiscounted(data models.DiscountedPricingData, quantity int) models.PricingResult {
	base := data.BasePrice * float64(quantity)

	var discount float64
	switch data.DiscountType {
	case models.DiscountFlat:
		discount = data.DiscountValue
	case models.DiscountPercentage:
		discount = base * data.DiscountValue / 100
	}
	if discount > base {
		discount = base
	}
	if discount < 0 {
		discount = 0
	}

	return models.PricingResult{
		Amount:    base - discount,
		UnitPrice: data.BasePrice,
		RuleLabel: "Discounted Price",
		Discount:  discount,
	}
}

// evaluateDynamic picks the matching rule with the highest priority;
// ties break on declaration order. A window with end before start wraps
// past midnight.
func evaluateDynamic(data models.DynamicPricingData, quantity int, asOf time.Time) models.PricingResult {
	day := int(asOf.Weekday())
	minute := asOf.Hour()*60 + asOf.Minute()

	matchedIdx := -1
	for i, rule := range data.Rules {
		if !ruleMatches(rule, day, minute) {
			continue
		}
		if matchedIdx == -1 || rule.Priority > data.Rules[matchedIdx].Priority {
			matchedIdx = i
		}
	}

	if matchedIdx == -1 {
		return models.PricingResult{
			Amount:    data.DefaultUnitPrice * float64(quantity),
			UnitPrice: data.DefaultUnitPrice,
			RuleLabel: "Standard Rate",
		}
	}

	rule := data.Rules[matchedIdx]
	label := rule.Label
	if label == "" {
		label = fmt.Sprintf("%s-%s", rule.Start, rule.End)
	}
	return models.PricingResult{
		Amount:    rule.UnitPrice * float64(quantity),
		UnitPrice: rule.UnitPrice,
		RuleLabel: label,
	}
}

func ruleMatches(rule models.DynamicRule, day, minute int) bool {
	if len(rule.Days) > 0 {
		found := false
		for _, d := range rule.Days {
			if d == day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	start, err := utils.ParseClock(rule.Start)
	if err != nil {
		return false
	}
	end, err := utils.ParseClock(rule.End)
	if err != nil {
		return false
	}

	if end < start {
		// Overnight window, e.g. 22:00-02:00.
		return minute >= start || minute < end
	}
	return minute >= start && minute < end
}

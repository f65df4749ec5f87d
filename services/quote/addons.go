// File: services/quote/addons.go
package quote

import (
	"fmt"

	"quotify/models"
)

// ValidateSelection intersects the requested addon ids with the group's
// active addons and checks the group's selection bounds. Unknown or
// inactive ids are silently dropped, not errors. The returned slice
// holds the valid addons in the group's declaration order.
func ValidateSelection(group models.AddonGroup, selectedIDs []string) ([]models.Addon, error) {
	requested := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		requested[id] = true
	}

	var valid []models.Addon
	for _, addon := range group.Addons {
		if addon.Active && requested[addon.ID] {
			valid = append(valid, addon)
		}
	}

	if len(valid) < group.MinSelections {
		return nil, &SelectionViolationError{
			GroupName: group.Name,
			Reason:    fmt.Sprintf("minimum %d required", group.MinSelections),
		}
	}
	if len(valid) > group.MaxSelections {
		return nil, &SelectionViolationError{
			GroupName: group.Name,
			Reason:    fmt.Sprintf("maximum %d allowed", group.MaxSelections),
		}
	}
	return valid, nil
}

// PriceSelection sums the prices of the validated addons.
func PriceSelection(addons []models.Addon) float64 {
	total := 0.0
	for _, addon := range addons {
		total += addon.Price
	}
	return total
}

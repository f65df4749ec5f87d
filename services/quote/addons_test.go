package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotify/models"
)

func sideGroup() models.AddonGroup {
	return models.AddonGroup{
		ID:            "grp-sides",
		Name:          "Sides",
		SelectionType: models.SelectionMultiple,
		MinSelections: 0,
		MaxSelections: 2,
		Active:        true,
		Addons: []models.Addon{
			{ID: "fries", Name: "Fries", Price: 3, Active: true},
			{ID: "salad", Name: "Salad", Price: 4, Active: true},
			{ID: "soup", Name: "Soup", Price: 5, Active: false},
		},
	}
}

func TestValidateSelection(t *testing.T) {
	group := sideGroup()

	valid, err := ValidateSelection(group, []string{"fries", "salad"})
	require.NoError(t, err)
	require.Len(t, valid, 2)
	assert.Equal(t, 7.0, PriceSelection(valid))
}

func TestValidateSelectionDropsUnknownAndInactive(t *testing.T) {
	group := sideGroup()

	valid, err := ValidateSelection(group, []string{"fries", "soup", "nonsense"})
	require.NoError(t, err)
	require.Len(t, valid, 1)
	assert.Equal(t, "fries", valid[0].ID)
}

func TestValidateSelectionEmptyAgainstOptionalGroup(t *testing.T) {
	valid, err := ValidateSelection(sideGroup(), nil)
	require.NoError(t, err)
	assert.Empty(t, valid)
	assert.Equal(t, 0.0, PriceSelection(valid))
}

func TestValidateSelectionMaxExceeded(t *testing.T) {
	group := sideGroup()
	group.MaxSelections = 1

	_, err := ValidateSelection(group, []string{"fries", "salad"})
	var violation *SelectionViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "Sides", violation.GroupName)
	assert.Contains(t, violation.Error(), "maximum 1")
}

func TestValidateSelectionMinNotMet(t *testing.T) {
	group := sideGroup()
	group.MinSelections = 1

	_, err := ValidateSelection(group, nil)
	var violation *SelectionViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Error(), "minimum 1")
}

func TestValidateSelectionInactivePickDoesNotSatisfyMinimum(t *testing.T) {
	// An inactive pick is dropped before the bounds check, so a
	// mandatory group is not satisfied by it.
	group := sideGroup()
	group.MinSelections = 1

	_, err := ValidateSelection(group, []string{"soup"})
	var violation *SelectionViolationError
	require.ErrorAs(t, err, &violation)
}

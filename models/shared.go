package models

// TaxMode is the tri-state tax flag carried by categories, subcategories and
// items. "inherit" means no explicit setting: below the category level it
// defers to the parent; on a category it leaves the default in effect.
type TaxMode string

const (
	TaxInherit  TaxMode = "inherit"
	TaxEnabled  TaxMode = "enabled"
	TaxDisabled TaxMode = "disabled"
)

// TaxSetting is the tax configuration stored on a catalog entity.
// Percentage is meaningful only when Mode is "enabled".
type TaxSetting struct {
	Mode       TaxMode `bson:"mode" json:"mode"`
	Percentage float64 `bson:"percentage,omitempty" json:"percentage,omitempty"` // 0..100
}

// Tax sources reported by the resolver.
const (
	TaxSourceSelf        = "self"
	TaxSourceSubcategory = "subcategory"
	TaxSourceCategory    = "category"
	TaxSourceDefault     = "default"
)

// TaxResult is the effective tax for an entity after walking the
// inheritance chain.
type TaxResult struct {
	Applicable bool    `json:"applicable"`
	Percentage float64 `json:"percentage"`
	Source     string  `json:"source"` // "self", "subcategory", "category" or "default"
}

package models

// Pricing strategy discriminators for PricingConfig.Type.
const (
	PricingStatic        = "static"
	PricingTiered        = "tiered"
	PricingComplimentary = "complimentary"
	PricingDiscounted    = "discounted"
	PricingDynamic       = "dynamic"
)

// Discount shapes for DiscountedPricingData.DiscountType.
const (
	DiscountFlat       = "flat"
	DiscountPercentage = "percentage"
)

// PricingConfig is a tagged union over the five pricing strategies.
// Exactly one of the variant pointers is non-nil, matching Type.
type PricingConfig struct {
	Type       string                 `bson:"type" json:"type"`
	Static     *StaticPricingData     `bson:"static,omitempty" json:"static,omitempty"`
	Tiered     *TieredPricingData     `bson:"tiered,omitempty" json:"tiered,omitempty"`
	Discounted *DiscountedPricingData `bson:"discounted,omitempty" json:"discounted,omitempty"`
	Dynamic    *DynamicPricingData    `bson:"dynamic,omitempty" json:"dynamic,omitempty"`
}

type StaticPricingData struct {
	BasePrice float64 `bson:"basePrice" json:"basePrice"` // price per unit
}

// PriceTier is a quantity range with its own unit price. Ranges across
// tiers of one config must not overlap.
type PriceTier struct {
	MinQty    int     `bson:"minQty" json:"minQty"`
	MaxQty    int     `bson:"maxQty" json:"maxQty"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
}

type TieredPricingData struct {
	Tiers            []PriceTier `bson:"tiers" json:"tiers"`
	DefaultUnitPrice float64     `bson:"defaultUnitPrice,omitempty" json:"defaultUnitPrice,omitempty"` // used only when no tiers exist
}

type DiscountedPricingData struct {
	BasePrice     float64 `bson:"basePrice" json:"basePrice"`
	DiscountType  string  `bson:"discountType" json:"discountType"` // "flat" or "percentage"
	DiscountValue float64 `bson:"discountValue" json:"discountValue"`
}

// DynamicRule prices a recurring window of the week. An empty Days set
// matches every day. A window with End before Start wraps past midnight.
type DynamicRule struct {
	Days      []int   `bson:"days,omitempty" json:"days,omitempty"` // 0 = Sunday .. 6 = Saturday
	Start     string  `bson:"start" json:"start"`                   // "HH:MM"
	End       string  `bson:"end" json:"end"`                       // "HH:MM", exclusive
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Priority  int     `bson:"priority" json:"priority"` // higher wins; ties go to declaration order
	Label     string  `bson:"label,omitempty" json:"label,omitempty"`
}

type DynamicPricingData struct {
	Rules            []DynamicRule `bson:"rules" json:"rules"`
	DefaultUnitPrice float64       `bson:"defaultUnitPrice" json:"defaultUnitPrice"`
}

// PricingResult is the outcome of evaluating a pricing config for a
// quantity at a point in time.
type PricingResult struct {
	Amount    float64 `json:"amount"`
	UnitPrice float64 `json:"unitPrice"`
	RuleLabel string  `json:"ruleLabel"`
	Discount  float64 `json:"discount,omitempty"`
}

package models

import "time"

// Category is the root of the catalog hierarchy and of the tax
// inheritance chain. A tax mode of "inherit" here ends the chain at the
// system default.
type Category struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"` // unique
	Tax          TaxSetting `bson:"tax" json:"tax"`
	Active       bool       `bson:"active" json:"active"`
	DisplayOrder int        `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// Subcategory belongs to exactly one category. A tax mode of "inherit"
// defers to the parent category.
type Subcategory struct {
	ID           string     `bson:"id" json:"id"`
	CategoryID   string     `bson:"category_id" json:"category_id"`
	Name         string     `bson:"name" json:"name"`
	Tax          TaxSetting `bson:"tax" json:"tax"`
	Active       bool       `bson:"active" json:"active"`
	DisplayOrder int        `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

package models

import "time"

// Selection cardinality for an addon group.
const (
	SelectionSingle   = "single"
	SelectionMultiple = "multiple"
)

// AddonGroup is a shared, named collection of addons with selection
// rules. Addons live and die with their group.
type AddonGroup struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	SelectionType string    `bson:"selectionType" json:"selectionType"` // "single" or "multiple"
	Mandatory     bool      `bson:"mandatory" json:"mandatory"`
	MinSelections int       `bson:"minSelections" json:"minSelections"`
	MaxSelections int       `bson:"maxSelections" json:"maxSelections"`
	Addons        []Addon   `bson:"addons" json:"addons"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type Addon struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Price  float64 `bson:"price" json:"price"`
	Active bool    `bson:"active" json:"active"`
}

// AddonSelection is a customer's pick against one group.
type AddonSelection struct {
	GroupID  string   `json:"groupId"`
	AddonIDs []string `json:"addonIds"`
}

// SelectedAddon is the snapshot stored on bookings and quotes: the addon
// and the price it carried at computation time.
type SelectedAddon struct {
	GroupID string  `bson:"group_id" json:"group_id"`
	AddonID string  `bson:"addon_id" json:"addon_id"`
	Name    string  `bson:"name" json:"name"`
	Price   float64 `bson:"price" json:"price"`
}

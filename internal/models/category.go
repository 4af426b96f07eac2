package models

// Category is static reference data describing a spending category.
// Transactions carry free-form category strings and do not reference this
// table; it exists only to seed category pickers.
type Category struct {
	Base
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

package models

import "time"

// Transaction represents a single monetary event attributed to a user and
// linked to a budget. Amounts are signed; the budget link is not checked for
// referential integrity, so dangling budget ids are possible.
type Transaction struct {
	Base
	Title     string    `gorm:"not null" json:"title"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"not null;index" json:"category"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedBy string    `gorm:"index" json:"created_by"`
	BudgetID  string    `gorm:"type:uuid;not null;index" json:"budget_id"`
	Label     string    `json:"label,omitempty"`
}

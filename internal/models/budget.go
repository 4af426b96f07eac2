package models

import "time"

// BudgetStatusActive is the status value that gates user-scoped listings.
const BudgetStatusActive = "active"

// Budget represents a spending envelope with a validity window, owner,
// shared membership, and a free-form status flag. Users is a set-like list
// of member emails kept in insertion order; sharing adds members via union
// and never replaces the list. Budgets are never deleted.
type Budget struct {
	Base
	Name        string     `gorm:"not null" json:"name"`
	TotalBudget float64    `gorm:"not null" json:"total_budget"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	CreatedBy   string     `gorm:"index" json:"created_by"`
	Status      string     `gorm:"index" json:"status"`
	Users       StringList `gorm:"type:text" json:"users"`
}

// HasMember reports whether the given email belongs to the budget.
func (b *Budget) HasMember(email string) bool {
	return b.Users.Contains(email)
}

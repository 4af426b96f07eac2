package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneywise/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// UniqueEmail returns an email address not used by any other fixture in the
// test run. The shared-cache test database makes this necessary for
// isolation between tests that query by membership.
func UniqueEmail(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("user%d@test.com", nextID())
}

// CreateTestBudget creates a budget owned by createdBy with the given
// status. The owner is the sole initial member.
func CreateTestBudget(t *testing.T, db *gorm.DB, createdBy, status string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Name:        fmt.Sprintf("Test Budget %d", nextID()),
		TotalBudget: 1000,
		StartDate:   time.Now().AddDate(0, -1, 0),
		EndDate:     time.Now().AddDate(0, 1, 0),
		CreatedBy:   createdBy,
		Status:      status,
		Users:       models.StringList{createdBy},
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestTransaction creates a transaction linked to the given budget.
func CreateTestTransaction(t *testing.T, db *gorm.DB, budgetID, createdBy, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Title:     fmt.Sprintf("Test Txn %d", nextID()),
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedBy: createdBy,
		BudgetID:  budgetID,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestLabel creates a label set with the given tags and members.
func CreateTestLabel(t *testing.T, db *gorm.DB, tags, users []string) *models.Label {
	t.Helper()

	label := &models.Label{
		Tags:  models.StringList(tags),
		Users: models.StringList(users),
	}
	if err := db.Create(label).Error; err != nil {
		t.Fatalf("failed to create test label: %v", err)
	}
	return label
}

// CreateTestCategory creates a reference category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:        fmt.Sprintf("Test Category %d", nextID()),
		Description: "reference data",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

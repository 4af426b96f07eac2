package services

import (
	"time"

	"moneywise/internal/aggregate"
	"moneywise/internal/models"
	"moneywise/internal/pagination"
)

// TransactionFilter holds optional filter parameters for transaction search.
// Categories is a set-membership filter; the amount bounds are inclusive.
type TransactionFilter struct {
	Categories []string
	MinAmount  *float64
	MaxAmount  *float64
}

// TransactionUpdate holds the partial-merge fields for a transaction update.
// Nil fields keep the stored value.
type TransactionUpdate struct {
	Title     *string
	Amount    *float64
	Category  *string
	Date      *time.Time
	CreatedBy *string
	BudgetID  *string
	Label     *string
}

// TransactionPage is one page of a user's transaction listing plus
// aggregates computed over the full filtered set, not just the page.
type TransactionPage struct {
	pagination.PageResponse[models.Transaction]
	MaxAmount float64 `json:"max_amount"`
}

// SpendSummary holds spend totals for the two rolling windows computed from
// server time.
type SpendSummary struct {
	TotalAmountToday    float64 `json:"total_amount_today"`
	TotalAmountThisWeek float64 `json:"total_amount_this_week"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(title string, amount float64, category string, date time.Time, createdBy, budgetID, label string) (*models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	GetTransactionsByCreator(email string) ([]models.Transaction, error)
	ListUserTransactions(email string, page pagination.PageRequest) (*TransactionPage, error)
	FilterTransactions(email string, filter TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id string) error
	SpendSummary(email string) (*SpendSummary, error)
}

// BudgetUpdate holds the partial-merge fields for a budget update. Nil
// fields fall back to the stored value. CreatedBy is accepted for schema
// compatibility but the stored value always wins: the field is immutable
// by contract.
type BudgetUpdate struct {
	Name        *string
	TotalBudget *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
	CreatedBy   *string
}

// BudgetWithSpent is a budget together with its derived spent amount, the
// sum of all transaction amounts referencing the budget.
type BudgetWithSpent struct {
	models.Budget
	SpentAmount float64 `json:"spent_amount"`
}

// BudgetStats holds the three aggregates computed over a budget's
// transactions. DatesData keys follow aggregate.DayKeyFormat and serialize
// in chronological order.
type BudgetStats struct {
	CategoryTxnCount map[string]aggregate.Totals `json:"category_txn_count"`
	LabelTxnCount    map[string]aggregate.Totals `json:"label_txn_count"`
	DatesData        map[string]float64          `json:"dates_data"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(name string, totalBudget float64, startDate, endDate time.Time, createdBy, status string) (*models.Budget, error)
	ShareBudget(budgetID, email string) (*models.Budget, error)
	GetUserBudgets(email string, status *string) ([]BudgetWithSpent, error)
	GetBudgetByID(budgetID string) (*BudgetWithSpent, error)
	UpdateBudget(budgetID string, update BudgetUpdate) (*models.Budget, error)
	GetBudgetStats(budgetID string) (*BudgetStats, error)
}

// LabelServicer defines the contract for label-related business logic.
type LabelServicer interface {
	GetUserTags(email string) (models.StringList, error)
}

// CategoryServicer defines the contract for category reference data.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
}

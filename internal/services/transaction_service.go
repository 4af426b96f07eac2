package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"moneywise/internal/aggregate"
	apperrors "moneywise/internal/errors"
	"moneywise/internal/models"
	"moneywise/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction writes a new transaction record. The budget reference is
// stored as given; it is not checked against the budgets table.
func (s *transactionService) CreateTransaction(
	title string,
	amount float64,
	category string,
	date time.Time,
	createdBy, budgetID, label string,
) (*models.Transaction, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if createdBy == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "createdBy is required")
	}
	if budgetID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budgetId is required")
	}

	txn := &models.Transaction{
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedBy: createdBy,
		BudgetID:  budgetID,
		Label:     label,
	}

	if err := s.db.Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return txn, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Where("id = ?", id).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &txn, nil
}

// GetTransactionsByCreator lists all transactions created by the given user,
// regardless of budget membership.
func (s *transactionService) GetTransactionsByCreator(email string) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.db.Where("created_by = ?", email).Order("date DESC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// activeBudgetIDs resolves the ids of active budgets the user belongs to.
// Membership lives in a JSON list column, so the status filter runs in the
// store and the membership test runs here.
func (s *transactionService) activeBudgetIDs(email string) ([]string, error) {
	var budgets []models.Budget
	if err := s.db.Where("status = ?", models.BudgetStatusActive).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var ids []string
	for _, b := range budgets {
		if b.HasMember(email) {
			ids = append(ids, b.ID)
		}
	}
	return ids, nil
}

// ListUserTransactions returns one page of the user's transactions across
// their active budgets, ordered by date descending, plus the max single
// amount and total count over the full filtered set.
//
// The cursor for page N is the date of the last record of the preceding
// N-1 pages. The legacy implementation derived every cursor from page 1,
// which made all pages past the second identical; that defect is fixed here.
func (s *transactionService) ListUserTransactions(email string, page pagination.PageRequest) (*TransactionPage, error) {
	page.Defaults()

	ids, err := s.activeBudgetIDs(email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &TransactionPage{
			PageResponse: pagination.NewPageResponse([]models.Transaction{}, page.Page, page.Count, 0),
		}, nil
	}

	var totalItems int64
	if err := s.db.Model(&models.Transaction{}).Where("budget_id IN ?", ids).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var maxAmount float64
	if err := s.db.Model(&models.Transaction{}).
		Where("budget_id IN ?", ids).
		Select("COALESCE(MAX(amount), 0)").
		Scan(&maxAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cursor *time.Time
	if rows := page.CursorRows(); rows > 0 {
		var prior []models.Transaction
		if err := s.db.Where("budget_id IN ?", ids).
			Order("date DESC").
			Limit(rows).
			Find(&prior).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(prior) < rows {
			// Past the end of the set.
			result := &TransactionPage{
				PageResponse: pagination.NewPageResponse([]models.Transaction{}, page.Page, page.Count, totalItems),
				MaxAmount:    maxAmount,
			}
			return result, nil
		}
		cursor = &prior[len(prior)-1].Date
	}

	var txns []models.Transaction
	if err := s.db.Where("budget_id IN ?", ids).
		Order("date DESC").
		Scopes(pagination.DateCursor(cursor, page.Count)).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &TransactionPage{
		PageResponse: pagination.NewPageResponse(txns, page.Page, page.Count, totalItems),
		MaxAmount:    maxAmount,
	}, nil
}

// FilterTransactions returns all transactions of the user's active budgets
// matching the optional category-set and inclusive amount-range filters.
func (s *transactionService) FilterTransactions(email string, filter TransactionFilter) ([]models.Transaction, error) {
	ids, err := s.activeBudgetIDs(email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Transaction{}, nil
	}

	q := s.db.Where("budget_id IN ?", ids)
	if len(filter.Categories) > 0 {
		q = q.Where("category IN ?", filter.Categories)
	}
	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}

	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return txns, nil
}

// UpdateTransaction merges the given fields over the stored record. Omitted
// fields keep their current values. The budget reference is not validated.
func (s *transactionService) UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error) {
	txn, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		txn.Title = *update.Title
	}
	if update.Amount != nil {
		txn.Amount = *update.Amount
	}
	if update.Category != nil {
		txn.Category = *update.Category
	}
	if update.Date != nil {
		txn.Date = *update.Date
	}
	if update.CreatedBy != nil {
		txn.CreatedBy = *update.CreatedBy
	}
	if update.BudgetID != nil {
		txn.BudgetID = *update.BudgetID
	}
	if update.Label != nil {
		txn.Label = *update.Label
	}

	if err := s.db.Save(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// DeleteTransaction deletes a transaction by ID. A missing record is a
// distinct not-found condition; any other store fault is internal.
func (s *transactionService) DeleteTransaction(id string) error {
	txn, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(txn).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SpendSummary sums the user's transactions in their active budgets over
// the today and this-week windows anchored at the current server time.
func (s *transactionService) SpendSummary(email string) (*SpendSummary, error) {
	return s.spendSummaryAt(email, time.Now())
}

func (s *transactionService) spendSummaryAt(email string, now time.Time) (*SpendSummary, error) {
	ids, err := s.activeBudgetIDs(email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &SpendSummary{}, nil
	}

	var txns []models.Transaction
	if err := s.db.Where("budget_id IN ? AND created_by = ?", ids, email).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	dayStart, dayEnd := aggregate.DayWindow(now)
	weekStart, weekEnd := aggregate.WeekWindow(now)

	return &SpendSummary{
		TotalAmountToday:    aggregate.SumBetween(txns, dayStart, dayEnd),
		TotalAmountThisWeek: aggregate.SumBetween(txns, weekStart, weekEnd),
	}, nil
}

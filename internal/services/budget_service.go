package services

import (
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"moneywise/internal/aggregate"
	apperrors "moneywise/internal/errors"
	"moneywise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget writes a new budget. The creator becomes the sole initial
// member of the budget's user list.
func (s *budgetService) CreateBudget(
	name string,
	totalBudget float64,
	startDate, endDate time.Time,
	createdBy, status string,
) (*models.Budget, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if createdBy == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "createdBy is required")
	}
	if status == "" {
		status = models.BudgetStatusActive
	}

	budget := &models.Budget{
		Name:        name,
		TotalBudget: totalBudget,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   createdBy,
		Status:      status,
		Users:       models.StringList{createdBy},
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// ShareBudget adds one member to the budget's user list via set union.
// Existing members are always preserved; sharing with an existing member
// is a no-op.
func (s *budgetService) ShareBudget(budgetID, email string) (*models.Budget, error) {
	budget, err := s.getBudget(budgetID)
	if err != nil {
		return nil, err
	}

	budget.Users = budget.Users.Union(email)
	if err := s.db.Model(budget).Update("users", budget.Users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetUserBudgets lists budgets the user belongs to, optionally filtered by
// status, each with its derived spent amount. Per-budget sums are fetched
// concurrently; output order matches the store's budget order.
func (s *budgetService) GetUserBudgets(email string, status *string) ([]BudgetWithSpent, error) {
	q := s.db.Model(&models.Budget{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var mine []models.Budget
	for _, b := range budgets {
		if b.HasMember(email) {
			mine = append(mine, b)
		}
	}

	out := make([]BudgetWithSpent, len(mine))
	g := new(errgroup.Group)
	for i, b := range mine {
		g.Go(func() error {
			spent, err := s.spentAmount(b.ID)
			if err != nil {
				return err
			}
			out[i] = BudgetWithSpent{Budget: b, SpentAmount: spent}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBudgetByID returns a budget with its derived spent amount.
func (s *budgetService) GetBudgetByID(budgetID string) (*BudgetWithSpent, error) {
	budget, err := s.getBudget(budgetID)
	if err != nil {
		return nil, err
	}

	spent, err := s.spentAmount(budget.ID)
	if err != nil {
		return nil, err
	}
	return &BudgetWithSpent{Budget: *budget, SpentAmount: spent}, nil
}

// UpdateBudget merges the given fields over a snapshot of the stored record.
// Omitted fields fall back to the stored values. CreatedBy is immutable:
// the stored value wins regardless of request input.
func (s *budgetService) UpdateBudget(budgetID string, update BudgetUpdate) (*models.Budget, error) {
	budget, err := s.getBudget(budgetID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		budget.Name = *update.Name
	}
	if update.TotalBudget != nil {
		budget.TotalBudget = *update.TotalBudget
	}
	if update.StartDate != nil {
		budget.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		budget.EndDate = *update.EndDate
	}
	if update.Status != nil {
		budget.Status = *update.Status
	}
	// update.CreatedBy is deliberately ignored.

	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}

// GetBudgetStats computes the category, label, and per-day aggregates over
// all of the budget's transactions in one pass each. A budget with no
// transactions yields nil: "no data" is distinct from all-zero aggregates.
func (s *budgetService) GetBudgetStats(budgetID string) (*BudgetStats, error) {
	if _, err := s.getBudget(budgetID); err != nil {
		return nil, err
	}

	var txns []models.Transaction
	if err := s.db.Where("budget_id = ?", budgetID).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(txns) == 0 {
		return nil, nil
	}

	return &BudgetStats{
		CategoryTxnCount: aggregate.ByCategory(txns),
		LabelTxnCount:    aggregate.ByLabel(txns),
		DatesData:        aggregate.ByDay(txns),
	}, nil
}

func (s *budgetService) getBudget(budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ?", budgetID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// spentAmount sums all transaction amounts referencing the budget.
func (s *budgetService) spentAmount(budgetID string) (float64, error) {
	var spent float64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("budget_id = ?", budgetID).
		Scan(&spent).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}

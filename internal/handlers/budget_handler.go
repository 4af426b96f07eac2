package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneywise/internal/errors"
	"moneywise/internal/services"
	"moneywise/internal/validator"
)

// BudgetHandler handles budget HTTP requests.
type BudgetHandler struct {
	service services.BudgetServicer
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(service services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Name        string   `json:"name" binding:"required"`
	TotalBudget *float64 `json:"total_budget" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required,txn_date"`
	EndDate     string   `json:"end_date" binding:"required,txn_date"`
	CreatedBy   string   `json:"created_by" binding:"required,email"`
	Status      string   `json:"status"`
}

// UpdateBudgetRequest represents the request body for updating a budget. All
// fields are optional; absent fields are left unchanged. The creator is fixed
// at creation time and cannot be changed here.
type UpdateBudgetRequest struct {
	Name        *string  `json:"name"`
	TotalBudget *float64 `json:"total_budget"`
	StartDate   *string  `json:"start_date" binding:"omitempty,txn_date"`
	EndDate     *string  `json:"end_date" binding:"omitempty,txn_date"`
	CreatedBy   *string  `json:"created_by" binding:"omitempty,email"`
	Status      *string  `json:"status"`
}

// Create godoc
// @Summary Create a budget
// @Description Creates a new budget with the creator as its first member
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body CreateBudgetRequest true "Budget details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /budget/create [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := validator.ParseDate(req.StartDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid start_date"))
		return
	}
	endDate, err := validator.ParseDate(req.EndDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid end_date"))
		return
	}

	budget, err := h.service.CreateBudget(req.Name, *req.TotalBudget, startDate, endDate, req.CreatedBy, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// Share godoc
// @Summary Share a budget
// @Description Adds a user to the budget's member list
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Param email path string true "Email of the user to add"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /budget/share/{id}/{email} [put]
func (h *BudgetHandler) Share(c *gin.Context) {
	budget, err := h.service.ShareBudget(c.Param("id"), c.Param("email"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// List godoc
// @Summary List a user's budgets
// @Description Lists every budget the user is a member of, each with its spent amount, optionally filtered by status
// @Tags budgets
// @Produce json
// @Param email path string true "User email"
// @Param status path string false "Budget status filter"
// @Success 200 {object} map[string]interface{}
// @Router /budget/all/{email}/{status} [get]
func (h *BudgetHandler) List(c *gin.Context) {
	var status *string
	if s := c.Param("status"); s != "" {
		status = &s
	}

	budgets, err := h.service.GetUserBudgets(c.Param("email"), status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetByID godoc
// @Summary Get a budget
// @Description Retrieves a single budget by its ID, with its spent amount
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /budget/{id} [get]
func (h *BudgetHandler) GetByID(c *gin.Context) {
	budget, err := h.service.GetBudgetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// Update godoc
// @Summary Update a budget
// @Description Applies a partial update to an existing budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param request body UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /budget/update/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.service.UpdateBudget(c.Param("id"), services.BudgetUpdate{
		Name:        req.Name,
		TotalBudget: req.TotalBudget,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   req.CreatedBy,
		Status:      req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// Stats godoc
// @Summary Get budget statistics
// @Description Returns per-category and per-label totals and per-day sums for the budget's transactions
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /budget/stats/{id} [get]
func (h *BudgetHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetBudgetStats(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := validator.ParseDate(*s)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+field)
	}
	return &d, nil
}

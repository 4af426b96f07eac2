package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneywise/internal/errors"
	"moneywise/internal/pagination"
	"moneywise/internal/services"
	"moneywise/internal/validator"
)

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	service services.TransactionServicer
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	Title     string   `json:"title" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Date      string   `json:"date" binding:"required,txn_date"`
	CreatedBy string   `json:"created_by" binding:"required,email"`
	BudgetID  string   `json:"budget_id" binding:"required"`
	Label     string   `json:"label"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. All fields are optional; absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Title     *string  `json:"title"`
	Amount    *float64 `json:"amount"`
	Category  *string  `json:"category"`
	Date      *string  `json:"date" binding:"omitempty,txn_date"`
	CreatedBy *string  `json:"created_by" binding:"omitempty,email"`
	BudgetID  *string  `json:"budget_id"`
	Label     *string  `json:"label"`
}

// FilterTransactionsRequest represents the request body for filtering
// transactions by category set and amount range.
type FilterTransactionsRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	Categories []string `json:"categories"`
	MinAmount  *float64 `json:"min_amount"`
	MaxAmount  *float64 `json:"max_amount"`
}

// Create godoc
// @Summary Create a transaction
// @Description Records a new transaction against a budget
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /txn/create [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := validator.ParseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	txn, err := h.service.CreateTransaction(req.Title, *req.Amount, req.Category, date, req.CreatedBy, req.BudgetID, req.Label)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// GetByID godoc
// @Summary Get a transaction
// @Description Retrieves a single transaction by its ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /txn/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	txn, err := h.service.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// ListByCreator godoc
// @Summary List transactions by creator
// @Description Lists every transaction created by the given email
// @Tags transactions
// @Produce json
// @Param created_by query string true "Creator email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /txn [get]
func (h *TransactionHandler) ListByCreator(c *gin.Context) {
	email := c.Query("created_by")
	if email == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "created_by is required"))
		return
	}

	txns, err := h.service.GetTransactionsByCreator(email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// List godoc
// @Summary List a user's transactions
// @Description Lists transactions across the user's active budgets, newest first, one page at a time
// @Tags transactions
// @Produce json
// @Param email path string true "User email"
// @Param page path int true "Page number, starting at 1"
// @Param count path int true "Page size"
// @Success 200 {object} services.TransactionPage
// @Failure 400 {object} ErrorResponse
// @Router /txn/all/{email}/{page}/{count} [get]
func (h *TransactionHandler) List(c *gin.Context) {
	page, err := parsePathInt(c, "page")
	if err != nil {
		respondWithError(c, err)
		return
	}
	count, err := parsePathInt(c, "count")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.service.ListUserTransactions(c.Param("email"), pagination.PageRequest{Page: page, Count: count})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Filter godoc
// @Summary Filter a user's transactions
// @Description Filters transactions across the user's active budgets by category set and amount range
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body FilterTransactionsRequest true "Filter criteria"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /txn/filter [post]
func (h *TransactionHandler) Filter(c *gin.Context) {
	var req FilterTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txns, err := h.service.FilterTransactions(req.Email, services.TransactionFilter{
		Categories: req.Categories,
		MinAmount:  req.MinAmount,
		MaxAmount:  req.MaxAmount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// Update godoc
// @Summary Update a transaction
// @Description Applies a partial update to an existing transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /txn/update/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil {
		d, err := validator.ParseDate(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
			return
		}
		date = &d
	}

	txn, err := h.service.UpdateTransaction(c.Param("id"), services.TransactionUpdate{
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      date,
		CreatedBy: req.CreatedBy,
		BudgetID:  req.BudgetID,
		Label:     req.Label,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// Delete godoc
// @Summary Delete a transaction
// @Description Deletes a transaction by its ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /txn/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// Spent godoc
// @Summary Get spend totals
// @Description Returns the user's total spend for today and for the current week
// @Tags transactions
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} services.SpendSummary
// @Router /txn/spent/{email} [get]
func (h *TransactionHandler) Spent(c *gin.Context) {
	summary, err := h.service.SpendSummary(c.Param("email"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

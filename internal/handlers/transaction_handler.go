package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/pagination"
	"github.com/marcelokbc/expense-manager/internal/period"
	"github.com/marcelokbc/expense-manager/internal/services"
)

// TransactionHandler handles transaction and summary requests.
type TransactionHandler struct {
	ledger  services.LedgerServicer
	catalog models.Catalog
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer, catalog models.Catalog) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, catalog: catalog}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Date          string `json:"date" binding:"required"`
	Category      string `json:"category" binding:"required,category_key"`
	Title         string `json:"title" binding:"required,max=200"`
	Value         int64  `json:"value" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"max=100"`
}

type listTransactionsQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
	pagination.PageRequest
}

// ListTransactions handles the retrieval of transactions for a month
// @Summary     List transactions
// @Description Get a paginated list of transactions, optionally filtered to one calendar month
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       month     query string false "Calendar month filter (YYYY-MM)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q listTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.ledger.List(q.Month, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.ledger.Add(date, models.CategoryKey(req.Category), req.Title, req.Value, req.PaymentMethod)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Description Delete a user transaction by ID (seed records cannot be deleted)
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Seed record"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledger.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// defaultExpensePercentage is the expense share applied when the request
// leaves the allocation split unspecified.
const defaultExpensePercentage = 70

type summaryQuery struct {
	Month             string `form:"month" binding:"omitempty,year_month"`
	ExpensePercentage *int   `form:"expense_percentage" binding:"omitempty,min=0,max=100"`
}

// GetSummary handles the monthly summary
// @Summary     Monthly summary
// @Description Income/expense totals, per-category expense breakdown, and income allocation for one month
// @Tags        transactions
// @Produce     json
// @Param       month              query string false "Calendar month (YYYY-MM, defaults to the current month)"
// @Param       expense_percentage query int    false "Expense share of the income allocation (default 70)"
// @Success     200 {object} services.MonthSummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Month == "" {
		q.Month = period.Current(time.Now()).String()
	}
	pct := defaultExpensePercentage
	if q.ExpensePercentage != nil {
		pct = *q.ExpensePercentage
	}

	summary, err := h.ledger.Summary(q.Month, pct)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CategoryResponse is one catalog entry with its key.
type CategoryResponse struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Color   string `json:"color"`
	Expense bool   `json:"expense"`
}

// ListCategories handles the retrieval of the category catalog
// @Summary     List categories
// @Description Get the static category catalog, sorted by key
// @Tags        categories
// @Produce     json
// @Success     200 {array} CategoryResponse "Categories"
// @Router      /categories [get]
func (h *TransactionHandler) ListCategories(c *gin.Context) {
	out := make([]CategoryResponse, 0, len(h.catalog))
	for key, cat := range h.catalog {
		out = append(out, CategoryResponse{
			Key:     string(key),
			Title:   cat.Title,
			Color:   cat.Color,
			Expense: cat.Expense,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

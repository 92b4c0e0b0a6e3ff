package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/services"
)

// InvestmentHandler handles investment-row requests.
type InvestmentHandler struct {
	investments services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investments: investmentService}
}

// ListInvestments handles the retrieval of investment rows
// @Summary     List investments
// @Description Get every tracked investment row in insertion order
// @Tags        investments
// @Produce     json
// @Success     200 {array} models.Investment "Investments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	list, err := h.investments.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investments": list})
}

// CreateInvestmentRequest represents the request payload for tracking an investment.
type CreateInvestmentRequest struct {
	Type            string `json:"type" binding:"required,max=100"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	InvestmentDate  string `json:"investment_date" binding:"required"`
	RedemptionDate  string `json:"redemption_date"`
	ForecastAmount  int64  `json:"forecast_amount" binding:"omitempty,gt=0"`
	PercentageYield string `json:"percentage_yield" binding:"max=50"`
}

// CreateInvestment handles tracking a new investment row
// @Summary     Create an investment
// @Description Track a new investment row
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investmentDate, err := parseFlexibleTime(req.InvestmentDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var redemptionDate time.Time
	if req.RedemptionDate != "" {
		redemptionDate, err = parseFlexibleTime(req.RedemptionDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	inv, err := h.investments.Add(req.Type, req.Amount, investmentDate, redemptionDate, req.ForecastAmount, req.PercentageYield)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// DeleteInvestment handles deleting an investment row
// @Summary     Delete an investment
// @Description Delete an investment row by ID
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     204 "Investment deleted"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	if err := h.investments.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTotals handles investment totals
// @Summary     Investment totals
// @Description Sum of invested amounts and forecast amounts
// @Tags        investments
// @Produce     json
// @Success     200 {object} services.InvestmentTotals "Totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/totals [get]
func (h *InvestmentHandler) GetTotals(c *gin.Context) {
	totals, err := h.investments.Totals()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/services"
)

// CardHandler handles credit-card billing-cycle requests.
type CardHandler struct {
	billing services.BillingServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(billingService services.BillingServicer) *CardHandler {
	return &CardHandler{billing: billingService}
}

// ListCards handles the retrieval of the configured credit cards
// @Summary     List credit cards
// @Description Get the static credit card billing configurations
// @Tags        cards
// @Produce     json
// @Success     200 {array} models.CreditCard "Cards"
// @Router      /cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": h.billing.Cards()})
}

// StatementDateResponse is the computed statement date for a purchase.
type StatementDateResponse struct {
	Card          string `json:"card"`
	PurchaseDate  string `json:"purchase_date"`
	StatementDate string `json:"statement_date"`
}

// GetStatementDate handles the billing-cycle date-shift query
// @Summary     Statement date for a purchase
// @Description Compute the calendar date on which a purchase appears on the named card's statement
// @Tags        cards
// @Produce     json
// @Param       card query string true "Card name"
// @Param       date query string true "Purchase date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} StatementDateResponse "Statement date"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Router      /cards/statement-date [get]
func (h *CardHandler) GetStatementDate(c *gin.Context) {
	cardName := c.Query("card")
	if cardName == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "card is required"))
		return
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required"))
		return
	}
	purchase, err := parseFlexibleTime(rawDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	statement, err := h.billing.StatementDate(cardName, purchase)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatementDateResponse{
		Card:          cardName,
		PurchaseDate:  purchase.Format("2006-01-02"),
		StatementDate: statement.Format("2006-01-02"),
	})
}

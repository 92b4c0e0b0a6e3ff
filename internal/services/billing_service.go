package services

import (
	"fmt"
	"time"

	"github.com/marcelokbc/expense-manager/internal/billing"
	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
)

// billingService answers statement-date queries against the static card
// configurations supplied at start-up.
type billingService struct {
	cards []models.CreditCard
}

// NewBillingService validates every card configuration up front; a closing
// or payment day outside 1-31 is a configuration error, not a runtime one.
func NewBillingService(cards []models.CreditCard) (BillingServicer, error) {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("invalid credit card configuration: %w", err)
		}
	}
	return &billingService{cards: cards}, nil
}

// Cards returns the configured credit cards.
func (s *billingService) Cards() []models.CreditCard {
	out := make([]models.CreditCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// StatementDate computes the statement date of a purchase on the named card.
func (s *billingService) StatementDate(cardName string, purchase time.Time) (time.Time, error) {
	if purchase.IsZero() {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase date is required")
	}
	for _, card := range s.cards {
		if card.Name == cardName {
			return billing.StatementDate(purchase, card), nil
		}
	}
	return time.Time{}, apperrors.ErrCardNotFound
}

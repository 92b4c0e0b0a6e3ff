package models

import "fmt"

// CreditCard describes a card's billing cycle: the day of month the
// statement closes and the day of month payment is due.
type CreditCard struct {
	Name       string `json:"name"`
	ClosingDay int    `json:"closing_day"`
	PaymentDay int    `json:"payment_day"`
}

// Validate checks the billing-cycle configuration.
func (c CreditCard) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("credit card name is required")
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return fmt.Errorf("card %q: closing day %d out of range 1-31", c.Name, c.ClosingDay)
	}
	if c.PaymentDay < 1 || c.PaymentDay > 31 {
		return fmt.Errorf("card %q: payment day %d out of range 1-31", c.Name, c.PaymentDay)
	}
	return nil
}

// DefaultCards returns the built-in credit card configurations.
func DefaultCards() []CreditCard {
	return []CreditCard{
		{Name: "Nubank Ju", ClosingDay: 29, PaymentDay: 5},
		{Name: "Nubank Kbça", ClosingDay: 11, PaymentDay: 18},
		{Name: "Carrefour", ClosingDay: 5, PaymentDay: 15},
		{Name: "Assai", ClosingDay: 18, PaymentDay: 25},
	}
}

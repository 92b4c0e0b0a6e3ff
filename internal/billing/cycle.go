// Package billing computes the statement date a credit card purchase lands
// on, from the card's closing-day/payment-day cycle configuration.
package billing

import (
	"time"

	"github.com/marcelokbc/expense-manager/internal/models"
)

// StatementDate returns the calendar date on which a purchase appears on a
// statement. A purchase strictly after the current cycle's closing date
// rolls past the closing boundary into the next cycle, whose payment falls
// two months after the purchase month; a purchase on or before the closing
// date is paid the following month. Month overflow rolls into the next year
// via standard date normalization. Time-of-day on the purchase is ignored.
func StatementDate(purchase time.Time, card models.CreditCard) time.Time {
	loc := purchase.Location()
	day := time.Date(purchase.Year(), purchase.Month(), purchase.Day(), 0, 0, 0, 0, loc)
	closing := time.Date(purchase.Year(), purchase.Month(), card.ClosingDay, 0, 0, 0, 0, loc)

	monthsAhead := time.Month(1)
	if day.After(closing) {
		monthsAhead = 2
	}
	return time.Date(purchase.Year(), purchase.Month()+monthsAhead, card.PaymentDay, 0, 0, 0, 0, loc)
}

package models

import "time"

// Transaction represents a dated income or expense record. Amounts are
// stored in cents.
type Transaction struct {
	ID            string      `json:"id"`
	Date          time.Time   `json:"date"`
	Category      CategoryKey `json:"category"`
	Title         string      `json:"title"`
	Value         int64       `json:"value"`
	PaymentMethod string      `json:"payment_method,omitempty"`
}

// When returns the record's calendar date.
func (t Transaction) When() time.Time { return t.Date }

package models

import "time"

// SeedTransactions returns the fixed default records merged with persisted
// user data at start-up. Seeds live for the lifetime of the process and are
// never written back to the store.
func SeedTransactions() []Transaction {
	return []Transaction{
		{
			ID:            "seed-1",
			Date:          time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			Category:      CategoryFood,
			Title:         "McDonalds",
			Value:         3200,
			PaymentMethod: "credit",
		},
		{
			ID:            "seed-2",
			Date:          time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			Category:      CategoryFood,
			Title:         "Burger King",
			Value:         2800,
			PaymentMethod: "credit",
		},
		{
			ID:            "seed-3",
			Date:          time.Date(2024, time.August, 18, 0, 0, 0, 0, time.UTC),
			Category:      CategorySalary,
			Title:         "Salário ACME",
			Value:         450000,
			PaymentMethod: "debit",
		},
	}
}

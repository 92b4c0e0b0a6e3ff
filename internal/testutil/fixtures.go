package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewSale builds a cash sale for the given client, flavor and date.
func NewSale(clientName, flavor string, date time.Time, paid bool) models.Sale {
	return models.Sale{
		ID:            fmt.Sprintf("sale-%d", nextID()),
		Date:          date,
		ClientName:    clientName,
		Flavor:        flavor,
		Value:         1500, // R$15.00
		PaymentMethod: models.PaymentCash,
		Paid:          paid,
	}
}

// NewTransaction builds a transaction for the given category, value and date.
func NewTransaction(category models.CategoryKey, value int64, date time.Time) models.Transaction {
	n := nextID()
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", n),
		Date:     date,
		Category: category,
		Title:    fmt.Sprintf("Test Transaction %d", n),
		Value:    value,
	}
}

// NewInvestment builds an investment with the given amount and date.
func NewInvestment(amount int64, date time.Time) models.Investment {
	return models.Investment{
		ID:             fmt.Sprintf("inv-%d", nextID()),
		Type:           "CDB",
		Amount:         amount,
		InvestmentDate: date,
		ForecastAmount: amount + amount/10,
	}
}

// SeedStore marshals records and stores them under key, so services hydrate
// them on construction.
func SeedStore(t *testing.T, st store.Store, key string, records interface{}) {
	t.Helper()

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("failed to marshal fixtures for %q: %v", key, err)
	}
	if err := st.Set(key, data); err != nil {
		t.Fatalf("failed to seed store key %q: %v", key, err)
	}
}

// Date builds a UTC timestamp at noon on the given day, keeping sale grouping
// and month filtering away from timezone edges.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

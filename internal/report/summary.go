// Package report reduces filtered transaction lists into the derived
// aggregates shown on the dashboard: income/expense totals, per-category
// expense breakdown, and the income allocation split.
package report

import (
	"fmt"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
)

// Summary holds the totals for one filtered transaction list. ByCategory
// maps category display titles to summed expense values; income categories
// are excluded from the breakdown. Callers must treat ByCategory as a keyed
// mapping, not an ordered list.
type Summary struct {
	Income     int64            `json:"income"`
	Expense    int64            `json:"expense"`
	ByCategory map[string]int64 `json:"by_category"`
}

// Summarize reduces the list against the catalog. The catalog is assumed
// complete for every record in the system; an unknown category key is an
// invariant violation, not a recoverable condition.
func Summarize(list []models.Transaction, catalog models.Catalog) (Summary, error) {
	s := Summary{ByCategory: map[string]int64{}}
	for _, tx := range list {
		cat, ok := catalog[tx.Category]
		if !ok {
			return Summary{}, apperrors.WithMessage(apperrors.ErrUnknownCategory,
				fmt.Sprintf("transaction %s references unknown category %q", tx.ID, tx.Category))
		}
		if cat.Expense {
			s.Expense += tx.Value
			s.ByCategory[cat.Title] += tx.Value
		} else {
			s.Income += tx.Value
		}
	}
	return s, nil
}

// Allocation splits an income total into an expense share and a savings
// share by percentage.
type Allocation struct {
	Percentage   int   `json:"percentage"`
	ExpenseShare int64 `json:"expense_share"`
	SavingsShare int64 `json:"savings_share"`
}

// Allocate computes the allocation of income at the given expense
// percentage. The remainder after the expense share goes to savings, so the
// two shares always sum to income exactly.
func Allocate(income int64, percentage int) Allocation {
	expense := income * int64(percentage) / 100
	return Allocation{
		Percentage:   percentage,
		ExpenseShare: expense,
		SavingsShare: income - expense,
	}
}

package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/id"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/pagination"
	"github.com/marcelokbc/expense-manager/internal/period"
	"github.com/marcelokbc/expense-manager/internal/report"
	"github.com/marcelokbc/expense-manager/internal/store"
)

// ledgerService owns the transaction collection: a fixed seed set plus the
// user records hydrated from the store. Only user records are flushed back;
// seeds live for the process lifetime.
type ledgerService struct {
	mu      sync.RWMutex
	store   store.Store
	catalog models.Catalog
	seeds   []models.Transaction
	user    []models.Transaction
}

// NewLedgerService hydrates persisted user transactions and concatenates
// them with the seed set.
func NewLedgerService(st store.Store, catalog models.Catalog, seeds []models.Transaction) (LedgerServicer, error) {
	s := &ledgerService{store: st, catalog: catalog, seeds: seeds}

	raw, ok, err := st.Get(store.KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.user); err != nil {
			return nil, fmt.Errorf("failed to decode persisted transactions: %w", err)
		}
	}
	return s, nil
}

// all returns seeds followed by user records, as a fresh slice.
func (s *ledgerService) all() []models.Transaction {
	out := make([]models.Transaction, 0, len(s.seeds)+len(s.user))
	out = append(out, s.seeds...)
	out = append(out, s.user...)
	return out
}

// flush persists the user-owned records. Callers hold the write lock.
func (s *ledgerService) flush() error {
	raw, err := json.Marshal(s.user)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(store.KeyTransactions, raw); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns the transactions for a month (or every record when month is
// empty), paginated, preserving insertion order.
func (s *ledgerService) List(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	s.mu.RLock()
	list := s.all()
	s.mu.RUnlock()

	if month != "" {
		list = period.FilterByMonth(list, month)
	}
	resp := pagination.Window(list, page)
	return &resp, nil
}

// Add validates and appends a new user transaction, then flushes.
func (s *ledgerService) Add(date time.Time, category models.CategoryKey, title string, value int64, paymentMethod string) (*models.Transaction, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if value <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must be greater than zero")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if !s.catalog.Has(category) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("unknown category %q", category))
	}

	tx := models.Transaction{
		ID:            id.NewRecord(),
		Date:          date,
		Category:      category,
		Title:         title,
		Value:         value,
		PaymentMethod: paymentMethod,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = append(s.user, tx)
	if err := s.flush(); err != nil {
		s.user = s.user[:len(s.user)-1]
		return nil, err
	}
	return &tx, nil
}

// Delete removes a user transaction by id. Seed records cannot be deleted.
func (s *ledgerService) Delete(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seed := range s.seeds {
		if seed.ID == txID {
			return apperrors.ErrSeedTransaction
		}
	}
	for i := range s.user {
		if s.user[i].ID == txID {
			removed := s.user[i]
			s.user = append(s.user[:i], s.user[i+1:]...)
			if err := s.flush(); err != nil {
				s.user = append(s.user[:i], append([]models.Transaction{removed}, s.user[i:]...)...)
				return err
			}
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}

// Summary filters the collection to the month and reduces it into totals,
// the per-category expense breakdown, and the income allocation split.
func (s *ledgerService) Summary(month string, expensePercentage int) (*MonthSummary, error) {
	if expensePercentage < 0 || expensePercentage > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense percentage must be between 0 and 100")
	}

	s.mu.RLock()
	list := s.all()
	s.mu.RUnlock()

	filtered := period.FilterByMonth(list, month)
	sum, err := report.Summarize(filtered, s.catalog)
	if err != nil {
		return nil, err
	}

	return &MonthSummary{
		Month:      month,
		Income:     sum.Income,
		Expense:    sum.Expense,
		ByCategory: sum.ByCategory,
		Allocation: report.Allocate(sum.Income, expensePercentage),
	}, nil
}

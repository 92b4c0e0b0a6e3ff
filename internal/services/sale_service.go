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
	"github.com/marcelokbc/expense-manager/internal/period"
	"github.com/marcelokbc/expense-manager/internal/sales"
	"github.com/marcelokbc/expense-manager/internal/store"
)

// saleService owns the sale-record collection. Group-level edits and deletes
// are per-record mutations applied under one lock with a single flush, so a
// partial application is never observable.
type saleService struct {
	mu      sync.RWMutex
	store   store.Store
	records []models.Sale
}

// NewSaleService hydrates persisted sale records.
func NewSaleService(st store.Store) (SaleServicer, error) {
	s := &saleService{store: st}

	raw, ok, err := st.Get(store.KeySales)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.records); err != nil {
			return nil, fmt.Errorf("failed to decode persisted sales: %w", err)
		}
	}
	return s, nil
}

// flush persists the collection. Callers hold the write lock.
func (s *saleService) flush() error {
	raw, err := json.Marshal(s.records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(store.KeySales, raw); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// snapshot returns a copy of the collection.
func (s *saleService) snapshot() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.records))
	copy(out, s.records)
	return out
}

// Groups returns the grouped, filtered sale rows for a month (or for every
// record when month is empty).
func (s *saleService) Groups(month string, filter sales.GroupFilter) ([]sales.Group, error) {
	if filter.Status == "" {
		filter.Status = sales.StatusAll
	}
	if !filter.Status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be all, paid, or pending")
	}

	list := s.snapshot()
	if month != "" {
		list = period.FilterByMonth(list, month)
	}
	return sales.Build(list, filter), nil
}

// Stats returns the whole-collection counters for a month.
func (s *saleService) Stats(month string) (sales.Stats, error) {
	list := s.snapshot()
	if month != "" {
		list = period.FilterByMonth(list, month)
	}
	return sales.Tally(list), nil
}

// AddBatch validates one submission and expands it into individual sale
// records: each item contributes quantity records sharing client, flavor,
// day, and payment data. IDs are unique within the batch.
func (s *saleService) AddBatch(date time.Time, clientName string, method models.PaymentMethod, paid bool, notes string, items []BatchItem) ([]models.Sale, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if !method.Valid() {
		return nil, apperrors.ErrUnknownPaymentMethod
	}
	if len(items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one item is required")
	}
	for i, item := range items {
		if item.Flavor == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("item %d: flavor is required", i+1))
		}
		if item.Value <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("item %d: value must be greater than zero", i+1))
		}
		if item.Quantity < 1 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("item %d: quantity must be at least 1", i+1))
		}
	}

	batch := time.Now()
	var created []models.Sale
	for i, item := range items {
		for unit := 0; unit < item.Quantity; unit++ {
			created = append(created, models.Sale{
				ID:            id.NewSale(batch, i, unit),
				Date:          date,
				ClientName:    clientName,
				Flavor:        item.Flavor,
				Value:         item.Value,
				PaymentMethod: method,
				Paid:          paid,
				Notes:         notes,
			})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := len(s.records)
	s.records = append(s.records, created...)
	if err := s.flush(); err != nil {
		s.records = s.records[:prev]
		return nil, err
	}
	return created, nil
}

// apply copies the set fields of the update onto the record.
func apply(rec *models.Sale, upd SaleUpdate) {
	if upd.ClientName != nil {
		rec.ClientName = strings.TrimSpace(*upd.ClientName)
	}
	if upd.Paid != nil {
		rec.Paid = *upd.Paid
	}
	if upd.PaymentMethod != nil {
		rec.PaymentMethod = *upd.PaymentMethod
	}
}

func validateUpdate(upd SaleUpdate) error {
	if upd.ClientName != nil && strings.TrimSpace(*upd.ClientName) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "client name cannot be empty")
	}
	if upd.PaymentMethod != nil && !upd.PaymentMethod.Valid() {
		return apperrors.ErrUnknownPaymentMethod
	}
	return nil
}

// Update edits a single record by id.
func (s *saleService) Update(saleID string, upd SaleUpdate) (*models.Sale, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == saleID {
			before := s.records[i]
			apply(&s.records[i], upd)
			if err := s.flush(); err != nil {
				s.records[i] = before
				return nil, err
			}
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, apperrors.ErrSaleNotFound
}

// UpdateGroup edits every record sharing the group key of the record with
// the given id. The key is computed from the record's current (pre-update)
// field values, so renaming a client moves the whole group.
func (s *saleService) UpdateGroup(saleID string, upd SaleUpdate) ([]models.Sale, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.groupKeyOf(saleID)
	if !ok {
		return nil, apperrors.ErrSaleNotFound
	}

	before := make([]models.Sale, len(s.records))
	copy(before, s.records)

	var updated []models.Sale
	for i := range s.records {
		if sales.Key(before[i]) == key {
			apply(&s.records[i], upd)
			updated = append(updated, s.records[i])
		}
	}
	if err := s.flush(); err != nil {
		s.records = before
		return nil, err
	}
	return updated, nil
}

// Delete removes a single record by id.
func (s *saleService) Delete(saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == saleID {
			removed := s.records[i]
			s.records = append(s.records[:i], s.records[i+1:]...)
			if err := s.flush(); err != nil {
				s.records = append(s.records[:i], append([]models.Sale{removed}, s.records[i:]...)...)
				return err
			}
			return nil
		}
	}
	return apperrors.ErrSaleNotFound
}

// DeleteGroup removes every record sharing the group key of the record with
// the given id and returns how many were removed.
func (s *saleService) DeleteGroup(saleID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.groupKeyOf(saleID)
	if !ok {
		return 0, apperrors.ErrSaleNotFound
	}

	before := s.records
	kept := make([]models.Sale, 0, len(s.records))
	for _, rec := range s.records {
		if sales.Key(rec) != key {
			kept = append(kept, rec)
		}
	}
	removed := len(before) - len(kept)
	s.records = kept
	if err := s.flush(); err != nil {
		s.records = before
		return 0, err
	}
	return removed, nil
}

// EditDefaults resolves the initial edit-dialog state for the group row
// containing the record with the given id.
func (s *saleService) EditDefaults(saleID string) (*EditDefaults, error) {
	list := s.snapshot()
	seed, mode, ok := sales.EditSeed(list, saleID)
	if !ok {
		return nil, apperrors.ErrSaleNotFound
	}
	return &EditDefaults{Mode: mode, Seed: seed}, nil
}

// groupKeyOf returns the group key of the record with the given id.
// Callers hold at least the read lock.
func (s *saleService) groupKeyOf(saleID string) (string, bool) {
	for i := range s.records {
		if s.records[i].ID == saleID {
			return sales.Key(s.records[i]), true
		}
	}
	return "", false
}

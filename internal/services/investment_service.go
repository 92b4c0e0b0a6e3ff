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
	"github.com/marcelokbc/expense-manager/internal/store"
)

// investmentService owns the tracked investment rows.
type investmentService struct {
	mu      sync.RWMutex
	store   store.Store
	records []models.Investment
}

// NewInvestmentService hydrates persisted investment rows.
func NewInvestmentService(st store.Store) (InvestmentServicer, error) {
	s := &investmentService{store: st}

	raw, ok, err := st.Get(store.KeyInvestments)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.records); err != nil {
			return nil, fmt.Errorf("failed to decode persisted investments: %w", err)
		}
	}
	return s, nil
}

func (s *investmentService) flush() error {
	raw, err := json.Marshal(s.records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Set(store.KeyInvestments, raw); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns the investment rows in insertion order.
func (s *investmentService) List() ([]models.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Investment, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Add validates and appends a new investment row, then flushes.
func (s *investmentService) Add(invType string, amount int64, investmentDate, redemptionDate time.Time, forecastAmount int64, percentageYield string) (*models.Investment, error) {
	invType = strings.TrimSpace(invType)
	if invType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investment type is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if investmentDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investment date is required")
	}

	inv := models.Investment{
		ID:              id.NewRecord(),
		Type:            invType,
		Amount:          amount,
		InvestmentDate:  investmentDate,
		RedemptionDate:  redemptionDate,
		ForecastAmount:  forecastAmount,
		PercentageYield: percentageYield,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, inv)
	if err := s.flush(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return nil, err
	}
	return &inv, nil
}

// Delete removes an investment row by id.
func (s *investmentService) Delete(invID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == invID {
			removed := s.records[i]
			s.records = append(s.records[:i], s.records[i+1:]...)
			if err := s.flush(); err != nil {
				s.records = append(s.records[:i], append([]models.Investment{removed}, s.records[i:]...)...)
				return err
			}
			return nil
		}
	}
	return apperrors.ErrInvestmentNotFound
}

// Totals sums the invested amounts and forecast amounts.
func (s *investmentService) Totals() (InvestmentTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var t InvestmentTotals
	for _, inv := range s.records {
		t.Amount += inv.Amount
		t.Forecast += inv.ForecastAmount
	}
	return t, nil
}

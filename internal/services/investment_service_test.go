package services

import (
	"testing"
	"time"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/store"
	"github.com/marcelokbc/expense-manager/internal/testutil"
)

func newInvestments(t *testing.T, st store.Store) InvestmentServicer {
	t.Helper()
	svc, err := NewInvestmentService(st)
	testutil.AssertNoError(t, err)
	return svc
}

func TestInvestmentHydration(t *testing.T) {
	st := store.NewMemory()
	persisted := []models.Investment{
		testutil.NewInvestment(100000, testutil.Date(2024, time.January, 10)),
	}
	testutil.SeedStore(t, st, store.KeyInvestments, persisted)

	svc := newInvestments(t, st)
	list, err := svc.List()
	testutil.AssertNoError(t, err)
	if len(list) != 1 || list[0].ID != persisted[0].ID {
		t.Errorf("expected persisted row back, got %+v", list)
	}
}

func TestInvestmentAdd(t *testing.T) {
	t.Run("appends and persists", func(t *testing.T) {
		st := store.NewMemory()
		svc := newInvestments(t, st)

		inv, err := svc.Add("CDB", 100000, testutil.Date(2024, time.January, 10),
			testutil.Date(2025, time.January, 10), 112000, "112% CDI")
		testutil.AssertNoError(t, err)
		if inv.ID == "" {
			t.Error("expected a generated ID")
		}

		again := newInvestments(t, st)
		list, err := again.List()
		testutil.AssertNoError(t, err)
		if len(list) != 1 {
			t.Errorf("expected 1 persisted row, got %d", len(list))
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc := newInvestments(t, store.NewMemory())
		date := testutil.Date(2024, time.January, 10)

		_, err := svc.Add("  ", 100, date, time.Time{}, 0, "")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.Add("CDB", 0, date, time.Time{}, 0, "")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.Add("CDB", 100, time.Time{}, time.Time{}, 0, "")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	})
}

func TestInvestmentDelete(t *testing.T) {
	t.Run("removes a row", func(t *testing.T) {
		svc := newInvestments(t, store.NewMemory())
		inv, err := svc.Add("CDB", 100000, testutil.Date(2024, time.January, 10), time.Time{}, 0, "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.Delete(inv.ID))

		list, err := svc.List()
		testutil.AssertNoError(t, err)
		if len(list) != 0 {
			t.Errorf("expected empty list, got %d rows", len(list))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newInvestments(t, store.NewMemory())
		err := svc.Delete("missing")
		testutil.AssertAppError(t, err, apperrors.ErrInvestmentNotFound.Code)
	})
}

func TestInvestmentTotals(t *testing.T) {
	svc := newInvestments(t, store.NewMemory())
	_, err := svc.Add("CDB", 100000, testutil.Date(2024, time.January, 10), time.Time{}, 112000, "")
	testutil.AssertNoError(t, err)
	_, err = svc.Add("Tesouro", 50000, testutil.Date(2024, time.February, 1), time.Time{}, 54000, "")
	testutil.AssertNoError(t, err)

	totals, err := svc.Totals()
	testutil.AssertNoError(t, err)
	if totals.Amount != 150000 {
		t.Errorf("expected amount total 150000, got %d", totals.Amount)
	}
	if totals.Forecast != 166000 {
		t.Errorf("expected forecast total 166000, got %d", totals.Forecast)
	}
}

package services

import (
	"testing"
	"time"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/sales"
	"github.com/marcelokbc/expense-manager/internal/store"
	"github.com/marcelokbc/expense-manager/internal/testutil"
)

func newSales(t *testing.T, st store.Store) SaleServicer {
	t.Helper()
	svc, err := NewSaleService(st)
	testutil.AssertNoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func methodPtr(m models.PaymentMethod) *models.PaymentMethod { return &m }

func TestSaleHydration(t *testing.T) {
	st := store.NewMemory()
	persisted := []models.Sale{
		testutil.NewSale("Ana", "Chocolate", testutil.Date(2024, time.June, 15), false),
	}
	testutil.SeedStore(t, st, store.KeySales, persisted)

	svc := newSales(t, st)
	groups, err := svc.Groups("", sales.GroupFilter{})
	testutil.AssertNoError(t, err)
	if len(groups) != 1 || groups[0].ClientName != "Ana" {
		t.Errorf("expected Ana's group from persistence, got %+v", groups)
	}
}

func TestSaleAddBatch(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("expands quantities into individual records", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentPix, false, "entregar sexta", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 3},
			{Flavor: "Coco", Value: 1200, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		if len(created) != 5 {
			t.Fatalf("expected 5 records, got %d", len(created))
		}
		seen := map[string]bool{}
		for _, rec := range created {
			if seen[rec.ID] {
				t.Errorf("duplicate ID %q in batch", rec.ID)
			}
			seen[rec.ID] = true
			if rec.ClientName != "Ana" || rec.Notes != "entregar sexta" {
				t.Errorf("batch fields not shared: %+v", rec)
			}
		}

		groups, err := svc.Groups("", sales.GroupFilter{})
		testutil.AssertNoError(t, err)
		if len(groups) != 2 {
			t.Errorf("expected 2 groups (one per flavor), got %d", len(groups))
		}
	})

	t.Run("persists across rehydration", func(t *testing.T) {
		st := store.NewMemory()
		svc := newSales(t, st)
		_, err := svc.AddBatch(day, "Ana", models.PaymentCash, true, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		again := newSales(t, st)
		stats, err := again.Stats("")
		testutil.AssertNoError(t, err)
		if stats.Count != 2 {
			t.Errorf("expected 2 persisted records, got %d", stats.Count)
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		items := []BatchItem{{Flavor: "Chocolate", Value: 1500, Quantity: 1}}

		_, err := svc.AddBatch(day, "  ", models.PaymentCash, false, "", items)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.AddBatch(time.Time{}, "Ana", models.PaymentCash, false, "", items)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.AddBatch(day, "Ana", models.PaymentMethod("cheque"), false, "", items)
		testutil.AssertAppError(t, err, apperrors.ErrUnknownPaymentMethod.Code)

		_, err = svc.AddBatch(day, "Ana", models.PaymentCash, false, "", nil)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{{Flavor: "", Value: 100, Quantity: 1}})
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{{Flavor: "Coco", Value: 0, Quantity: 1}})
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)

		_, err = svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{{Flavor: "Coco", Value: 100, Quantity: 0}})
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	})
}

func TestSaleUpdate(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("updates a single record", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		rec, err := svc.Update(created[0].ID, SaleUpdate{Paid: boolPtr(true)})
		testutil.AssertNoError(t, err)
		if !rec.Paid {
			t.Error("expected record marked paid")
		}

		groups, err := svc.Groups("", sales.GroupFilter{})
		testutil.AssertNoError(t, err)
		if groups[0].PaidQuantity != 1 || groups[0].PendingQuantity != 1 {
			t.Errorf("expected 1 paid / 1 pending, got %d / %d",
				groups[0].PaidQuantity, groups[0].PendingQuantity)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 1},
		})
		testutil.AssertNoError(t, err)

		_, err = svc.Update(created[0].ID, SaleUpdate{PaymentMethod: methodPtr("cheque")})
		testutil.AssertAppError(t, err, apperrors.ErrUnknownPaymentMethod.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		_, err := svc.Update("missing", SaleUpdate{Paid: boolPtr(true)})
		testutil.AssertAppError(t, err, apperrors.ErrSaleNotFound.Code)
	})
}

func TestSaleUpdateGroup(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("touches every record in the group", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 3},
		})
		testutil.AssertNoError(t, err)
		_, err = svc.AddBatch(day, "Bia", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 1},
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateGroup(created[1].ID, SaleUpdate{Paid: boolPtr(true)})
		testutil.AssertNoError(t, err)
		if len(updated) != 3 {
			t.Fatalf("expected 3 updated records, got %d", len(updated))
		}

		groups, err := svc.Groups("", sales.GroupFilter{Client: "Ana"})
		testutil.AssertNoError(t, err)
		if !groups[0].Paid {
			t.Error("expected Ana's group settled")
		}

		groups, err = svc.Groups("", sales.GroupFilter{Client: "Bia"})
		testutil.AssertNoError(t, err)
		if groups[0].Paid {
			t.Error("Bia's group must be untouched")
		}
	})

	t.Run("renaming the client moves the whole group", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateGroup(created[0].ID, SaleUpdate{ClientName: strPtr("Ana Paula")})
		testutil.AssertNoError(t, err)
		if len(updated) != 2 {
			t.Fatalf("expected both records renamed, got %d", len(updated))
		}

		groups, err := svc.Groups("", sales.GroupFilter{})
		testutil.AssertNoError(t, err)
		if len(groups) != 1 || groups[0].ClientName != "Ana Paula" {
			t.Errorf("expected one renamed group, got %+v", groups)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		_, err := svc.UpdateGroup("missing", SaleUpdate{Paid: boolPtr(true)})
		testutil.AssertAppError(t, err, apperrors.ErrSaleNotFound.Code)
	})
}

func TestSaleDelete(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("single record", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.Delete(created[0].ID))

		stats, err := svc.Stats("")
		testutil.AssertNoError(t, err)
		if stats.Count != 1 {
			t.Errorf("expected 1 record left, got %d", stats.Count)
		}
	})

	t.Run("whole group", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 3},
		})
		testutil.AssertNoError(t, err)
		_, err = svc.AddBatch(day, "Bia", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Coco", Value: 1200, Quantity: 1},
		})
		testutil.AssertNoError(t, err)

		removed, err := svc.DeleteGroup(created[2].ID)
		testutil.AssertNoError(t, err)
		if removed != 3 {
			t.Errorf("expected 3 records removed, got %d", removed)
		}

		stats, err := svc.Stats("")
		testutil.AssertNoError(t, err)
		if stats.Count != 1 {
			t.Errorf("expected only Bia's record left, got %d", stats.Count)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		err := svc.Delete("missing")
		testutil.AssertAppError(t, err, apperrors.ErrSaleNotFound.Code)

		_, err = svc.DeleteGroup("missing")
		testutil.AssertAppError(t, err, apperrors.ErrSaleNotFound.Code)
	})
}

func TestSaleEditDefaults(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("multi-record group defaults to group mode", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 2},
		})
		testutil.AssertNoError(t, err)

		def, err := svc.EditDefaults(created[1].ID)
		testutil.AssertNoError(t, err)
		if def.Mode != sales.EditModeGroup {
			t.Errorf("expected group mode, got %s", def.Mode)
		}
		if def.Seed.ID != created[0].ID {
			t.Errorf("expected seed from first member, got %s", def.Seed.ID)
		}
	})

	t.Run("single record defaults to individual mode", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		created, err := svc.AddBatch(day, "Bia", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Coco", Value: 1200, Quantity: 1},
		})
		testutil.AssertNoError(t, err)

		def, err := svc.EditDefaults(created[0].ID)
		testutil.AssertNoError(t, err)
		if def.Mode != sales.EditModeIndividual {
			t.Errorf("expected individual mode, got %s", def.Mode)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		_, err := svc.EditDefaults("missing")
		testutil.AssertAppError(t, err, apperrors.ErrSaleNotFound.Code)
	})
}

func TestSaleGroupsFilters(t *testing.T) {
	day := testutil.Date(2024, time.June, 15)

	t.Run("month filter", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		_, err := svc.AddBatch(day, "Ana", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Chocolate", Value: 1500, Quantity: 1},
		})
		testutil.AssertNoError(t, err)
		_, err = svc.AddBatch(testutil.Date(2024, time.July, 2), "Bia", models.PaymentCash, false, "", []BatchItem{
			{Flavor: "Coco", Value: 1200, Quantity: 1},
		})
		testutil.AssertNoError(t, err)

		groups, err := svc.Groups("2024-06", sales.GroupFilter{})
		testutil.AssertNoError(t, err)
		if len(groups) != 1 || groups[0].ClientName != "Ana" {
			t.Errorf("expected only Ana's June group, got %+v", groups)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := newSales(t, store.NewMemory())
		_, err := svc.Groups("", sales.GroupFilter{Status: "unpaid"})
		testutil.AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	})
}

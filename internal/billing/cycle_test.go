package billing

import (
	"testing"
	"time"

	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/testutil"
)

func TestStatementDate(t *testing.T) {
	card := models.CreditCard{Name: "Test Card", ClosingDay: 10, PaymentDay: 5}

	t.Run("after closing pays two months out", func(t *testing.T) {
		got := StatementDate(testutil.Date(2024, time.June, 12), card)
		want := time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	})

	t.Run("before closing pays next month", func(t *testing.T) {
		got := StatementDate(testutil.Date(2024, time.June, 5), card)
		want := time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	})

	t.Run("on the closing day stays in the current cycle", func(t *testing.T) {
		got := StatementDate(testutil.Date(2024, time.June, 10), card)
		want := time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		lateOnClosing := time.Date(2024, time.June, 10, 23, 59, 59, 0, time.UTC)
		got := StatementDate(lateOnClosing, card)
		want := time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		got := StatementDate(testutil.Date(2024, time.December, 20), card)
		want := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}

		got = StatementDate(testutil.Date(2024, time.December, 3), card)
		want = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	})

	t.Run("monotonic over purchase dates", func(t *testing.T) {
		prev := StatementDate(testutil.Date(2024, time.January, 1), card)
		for day := testutil.Date(2024, time.January, 2); day.Year() == 2024; day = day.AddDate(0, 0, 1) {
			cur := StatementDate(day, card)
			if cur.Before(prev) {
				t.Fatalf("statement date went backwards at %s: %s < %s",
					day.Format("2006-01-02"), cur.Format("2006-01-02"), prev.Format("2006-01-02"))
			}
			prev = cur
		}
	})

	t.Run("real card configurations", func(t *testing.T) {
		for _, card := range models.DefaultCards() {
			got := StatementDate(testutil.Date(2024, time.June, 15), card)
			if got.Day() != card.PaymentDay {
				t.Errorf("%s: expected payment day %d, got %d", card.Name, card.PaymentDay, got.Day())
			}
			if !got.After(testutil.Date(2024, time.June, 15)) {
				t.Errorf("%s: statement date %s is not after the purchase", card.Name, got.Format("2006-01-02"))
			}
		}
	})
}

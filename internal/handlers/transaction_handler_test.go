package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/pagination"
	"github.com/marcelokbc/expense-manager/internal/services"
	"github.com/marcelokbc/expense-manager/internal/validator"
)

// --- mock ledger service ---

type mockLedgerService struct {
	listFn    func(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	addFn     func(date time.Time, category models.CategoryKey, title string, value int64, paymentMethod string) (*models.Transaction, error)
	deleteFn  func(id string) error
	summaryFn func(month string, expensePercentage int) (*services.MonthSummary, error)
}

func (m *mockLedgerService) List(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(month, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockLedgerService) Add(date time.Time, category models.CategoryKey, title string, value int64, paymentMethod string) (*models.Transaction, error) {
	if m.addFn != nil {
		return m.addFn(date, category, title, value, paymentMethod)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockLedgerService) Summary(month string, expensePercentage int) (*services.MonthSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(month, expensePercentage)
	}
	return &services.MonthSummary{Month: month}, nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register(models.DefaultCatalog())
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/transactions", handler.ListTransactions)
	r.POST("/transactions", handler.CreateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	r.GET("/summary", handler.GetSummary)
	r.GET("/categories", handler.ListCategories)
	return r
}

// --- tests ---

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("returns 200 with the page", func(t *testing.T) {
		ledger := &mockLedgerService{
			listFn: func(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				if month != "2024-06" {
					t.Errorf("expected month 2024-06, got %q", month)
				}
				resp := pagination.NewPageResponse([]models.Transaction{{ID: "tx-1", Title: "Padaria"}}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?month=2024-06", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(data))
		}
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?month=junho", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.ErrInvalidInput.Code)
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		ledger := &mockLedgerService{
			addFn: func(date time.Time, category models.CategoryKey, title string, value int64, _ string) (*models.Transaction, error) {
				return &models.Transaction{ID: "tx-1", Date: date, Category: category, Title: title, Value: value}, nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2024-06-15","category":"food","title":"Padaria","value":1850}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["value"].(float64) != 1850 {
			t.Errorf("expected value 1850, got %v", tx["value"])
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2024-06-15","category":"rent","title":"Aluguel","value":1850}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero value", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2024-06-15","category":"food","title":"Padaria","value":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"15/06/2024","category":"food","title":"Padaria","value":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		ledger := &mockLedgerService{
			deleteFn: func(id string) error {
				if id != "tx-1" {
					t.Errorf("expected id tx-1, got %q", id)
				}
				return nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/tx-1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for seed records", func(t *testing.T) {
		ledger := &mockLedgerService{
			deleteFn: func(string) error { return apperrors.ErrSeedTransaction },
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/seed-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.ErrSeedTransaction.Code)
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		ledger := &mockLedgerService{
			deleteFn: func(string) error { return apperrors.ErrTransactionNotFound },
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetSummary(t *testing.T) {
	t.Run("returns 200 with the summary", func(t *testing.T) {
		ledger := &mockLedgerService{
			summaryFn: func(month string, pct int) (*services.MonthSummary, error) {
				if month != "2024-06" || pct != 80 {
					t.Errorf("expected 2024-06/80, got %s/%d", month, pct)
				}
				return &services.MonthSummary{Month: month, Income: 450000, Expense: 6000}, nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/summary?month=2024-06&expense_percentage=80", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["income"].(float64) != 450000 {
			t.Errorf("expected income 450000, got %v", result["income"])
		}
	})

	t.Run("defaults to the current month and 70 percent", func(t *testing.T) {
		var gotMonth string
		var gotPct int
		ledger := &mockLedgerService{
			summaryFn: func(month string, pct int) (*services.MonthSummary, error) {
				gotMonth = month
				gotPct = pct
				return &services.MonthSummary{Month: month}, nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		want := time.Now().Format("2006-01")
		if gotMonth != want {
			t.Errorf("expected current month %s, got %s", want, gotMonth)
		}
		if gotPct != 70 {
			t.Errorf("expected default percentage 70, got %d", gotPct)
		}
	})

	t.Run("forwards an explicit zero percentage", func(t *testing.T) {
		gotPct := -1
		ledger := &mockLedgerService{
			summaryFn: func(_ string, pct int) (*services.MonthSummary, error) {
				gotPct = pct
				return &services.MonthSummary{}, nil
			},
		}
		handler := NewTransactionHandler(ledger, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/summary?month=2024-06&expense_percentage=0", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPct != 0 {
			t.Errorf("expected percentage 0 forwarded, got %d", gotPct)
		}
	})

	t.Run("returns 400 on out-of-range percentage", func(t *testing.T) {
		handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/summary?expense_percentage=101", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListCategories(t *testing.T) {
	handler := NewTransactionHandler(&mockLedgerService{}, models.DefaultCatalog())
	r := setupTransactionRouter(handler)

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	cats := result["categories"].([]interface{})
	if len(cats) != len(models.DefaultCatalog()) {
		t.Fatalf("expected %d categories, got %d", len(models.DefaultCatalog()), len(cats))
	}
	// Sorted by key.
	prev := ""
	for _, raw := range cats {
		key := raw.(map[string]interface{})["key"].(string)
		if key < prev {
			t.Fatalf("categories not sorted: %q after %q", key, prev)
		}
		prev = key
	}
}

package services

import (
	"time"

	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/pagination"
	"github.com/marcelokbc/expense-manager/internal/report"
	"github.com/marcelokbc/expense-manager/internal/sales"
)

// MonthSummary is the dashboard aggregate for one month.
type MonthSummary struct {
	Month      string            `json:"month"`
	Income     int64             `json:"income"`
	Expense    int64             `json:"expense"`
	ByCategory map[string]int64  `json:"by_category"`
	Allocation report.Allocation `json:"allocation"`
}

// LedgerServicer defines the contract for transaction-related business logic.
type LedgerServicer interface {
	List(month string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Add(date time.Time, category models.CategoryKey, title string, value int64, paymentMethod string) (*models.Transaction, error)
	Delete(id string) error
	Summary(month string, expensePercentage int) (*MonthSummary, error)
}

// BatchItem is one line of a sale batch submission: a flavor sold at a unit
// value, quantity times.
type BatchItem struct {
	Flavor   string
	Value    int64
	Quantity int
}

// SaleUpdate carries the editable sale fields. Nil pointers leave the field
// unchanged.
type SaleUpdate struct {
	ClientName    *string
	Paid          *bool
	PaymentMethod *models.PaymentMethod
}

// EditDefaults is the initial edit-dialog state for a group row.
type EditDefaults struct {
	Mode EditModeValue `json:"mode"`
	Seed models.Sale   `json:"seed"`
}

// EditModeValue mirrors sales.EditMode for JSON responses.
type EditModeValue = sales.EditMode

// SaleServicer defines the contract for sale-record business logic.
type SaleServicer interface {
	Groups(month string, filter sales.GroupFilter) ([]sales.Group, error)
	Stats(month string) (sales.Stats, error)
	AddBatch(date time.Time, clientName string, method models.PaymentMethod, paid bool, notes string, items []BatchItem) ([]models.Sale, error)
	Update(id string, upd SaleUpdate) (*models.Sale, error)
	UpdateGroup(id string, upd SaleUpdate) ([]models.Sale, error)
	Delete(id string) error
	DeleteGroup(id string) (int, error)
	EditDefaults(id string) (*EditDefaults, error)
}

// InvestmentTotals sums the tracked investment rows.
type InvestmentTotals struct {
	Amount   int64 `json:"amount"`
	Forecast int64 `json:"forecast"`
}

// InvestmentServicer defines the contract for investment-row business logic.
type InvestmentServicer interface {
	List() ([]models.Investment, error)
	Add(invType string, amount int64, investmentDate, redemptionDate time.Time, forecastAmount int64, percentageYield string) (*models.Investment, error)
	Delete(id string) error
	Totals() (InvestmentTotals, error)
}

// BillingServicer defines the contract for credit-card billing-cycle queries.
type BillingServicer interface {
	Cards() []models.CreditCard
	StatementDate(cardName string, purchase time.Time) (time.Time, error)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/marcelokbc/expense-manager/internal/errors"
	"github.com/marcelokbc/expense-manager/internal/models"
	"github.com/marcelokbc/expense-manager/internal/sales"
	"github.com/marcelokbc/expense-manager/internal/services"
)

// Mutation scopes for sale edits and deletes.
const (
	scopeIndividual = "individual"
	scopeGroup      = "group"
)

// SaleHandler handles sale-record requests.
type SaleHandler struct {
	sales services.SaleServicer
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService services.SaleServicer) *SaleHandler {
	return &SaleHandler{sales: saleService}
}

type listGroupsQuery struct {
	Month  string `form:"month" binding:"omitempty,year_month"`
	Client string `form:"client"`
	Status string `form:"status" binding:"omitempty,sale_status"`
}

// ListGroups handles the retrieval of grouped sale rows
// @Summary     List sale groups
// @Description Sale records collapsed into settlement groups (same client, flavor, and day), newest first
// @Tags        sales
// @Produce     json
// @Param       month  query string false "Calendar month filter (YYYY-MM)"
// @Param       client query string false "Case-insensitive client name substring"
// @Param       status query string false "Settlement filter: all, paid, or pending (default all)"
// @Success     200 {array} sales.Group "Sale groups"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales [get]
func (h *SaleHandler) ListGroups(c *gin.Context) {
	var q listGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	groups, err := h.sales.Groups(q.Month, sales.GroupFilter{
		Client: q.Client,
		Status: sales.StatusFilter(q.Status),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetStats handles the sale counters
// @Summary     Sale stats
// @Description Record count, value totals, settled/partial group counts, and top flavor/client rankings
// @Tags        sales
// @Produce     json
// @Param       month query string false "Calendar month filter (YYYY-MM)"
// @Success     200 {object} sales.Stats "Stats"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/stats [get]
func (h *SaleHandler) GetStats(c *gin.Context) {
	var q listGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stats, err := h.sales.Stats(q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// BatchItemRequest is one line of a sale batch submission.
type BatchItemRequest struct {
	Flavor   string `json:"flavor" binding:"required,max=100"`
	Value    int64  `json:"value" binding:"required,gt=0"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateSalesRequest represents the request payload for a batch submission.
type CreateSalesRequest struct {
	Date          string             `json:"date" binding:"required"`
	ClientName    string             `json:"client_name" binding:"required,max=200"`
	PaymentMethod string             `json:"payment_method" binding:"required,payment_method"`
	Paid          bool               `json:"paid"`
	Notes         string             `json:"notes" binding:"max=500"`
	Items         []BatchItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateSales handles a sale batch submission
// @Summary     Create sales
// @Description Record a batch of sales; an item with quantity N expands into N individual records
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       request body CreateSalesRequest true "Batch details"
// @Success     201 {array} models.Sale "Created sale records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales [post]
func (h *SaleHandler) CreateSales(c *gin.Context) {
	var req CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items := make([]services.BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = services.BatchItem{Flavor: item.Flavor, Value: item.Value, Quantity: item.Quantity}
	}

	created, err := h.sales.AddBatch(date, req.ClientName, models.PaymentMethod(req.PaymentMethod), req.Paid, req.Notes, items)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sales": created})
}

// UpdateSaleRequest carries the editable sale fields. Omitted fields are
// left unchanged.
type UpdateSaleRequest struct {
	ClientName    *string `json:"client_name" binding:"omitempty,max=200"`
	Paid          *bool   `json:"paid"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,payment_method"`
}

func (r UpdateSaleRequest) toUpdate() services.SaleUpdate {
	upd := services.SaleUpdate{ClientName: r.ClientName, Paid: r.Paid}
	if r.PaymentMethod != nil {
		m := models.PaymentMethod(*r.PaymentMethod)
		upd.PaymentMethod = &m
	}
	return upd
}

// UpdateSale handles editing a sale record or its whole group
// @Summary     Update a sale
// @Description Edit a sale by ID; with scope=group, the same changes apply to every record in the sale's settlement group
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       id      path  string            true  "Sale ID"
// @Param       scope   query string            false "individual (default) or group"
// @Param       request body  UpdateSaleRequest true  "Fields to change"
// @Success     200 {object} models.Sale "Updated record(s)"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/{id} [put]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	switch scope := c.DefaultQuery("scope", scopeIndividual); scope {
	case scopeIndividual:
		sale, err := h.sales.Update(c.Param("id"), req.toUpdate())
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sale": sale})
	case scopeGroup:
		updated, err := h.sales.UpdateGroup(c.Param("id"), req.toUpdate())
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sales": updated})
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "scope must be individual or group"))
	}
}

// DeleteSale handles deleting a sale record or its whole group
// @Summary     Delete a sale
// @Description Delete a sale by ID; with scope=group, every record in the sale's settlement group is removed
// @Tags        sales
// @Produce     json
// @Param       id    path  string true  "Sale ID"
// @Param       scope query string false "individual (default) or group"
// @Success     200 {object} map[string]int "Number of deleted records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	switch scope := c.DefaultQuery("scope", scopeIndividual); scope {
	case scopeIndividual:
		if err := h.sales.Delete(c.Param("id")); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": 1})
	case scopeGroup:
		n, err := h.sales.DeleteGroup(c.Param("id"))
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "scope must be individual or group"))
	}
}

// GetEditDefaults handles the initial edit-dialog state for a group row
// @Summary     Edit defaults for a sale
// @Description Default edit mode and seed fields when editing the group row containing this sale
// @Tags        sales
// @Produce     json
// @Param       id path string true "Sale ID"
// @Success     200 {object} services.EditDefaults "Edit defaults"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/{id}/edit-defaults [get]
func (h *SaleHandler) GetEditDefaults(c *gin.Context) {
	defaults, err := h.sales.EditDefaults(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

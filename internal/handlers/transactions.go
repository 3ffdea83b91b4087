package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	errFetchTransactions = "failed to fetch transactions"
	errAddTransaction    = "failed to add transaction"
	errDeleteTransaction = "failed to delete transaction"
	errLoadSummary       = "failed to load summary"
)

// Request DTO for adding a transaction. Amount accepts a JSON number or a
// numeric string; anything else fails binding.
type addTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
}

// @Summary      List own transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   models.Transaction
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/transactions [get]
// @Security     BearerAuth
func (h *Handler) listTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	txs, err := h.services.Transactions.List(ctx, callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchTransactions,
			"tx_list_failed", err, "userId", callerID(c))
		return
	}
	c.JSON(http.StatusOK, txs)
}

// @Summary      Add a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  addTransactionRequest  true  "Transaction payload"
// @Success      200  {object}  map[string]interface{}  "success, transactionId"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/transactions [post]
// @Security     BearerAuth
func (h *Handler) addTransaction(c *gin.Context) {
	var req addTransactionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	id, err := h.services.Transactions.Add(ctx, callerID(c), service.AddTransactionParams{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) || errors.Is(err, service.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errAddTransaction,
			"tx_add_failed", err, "userId", callerID(c))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "transactionId": id})
}

// @Summary      Delete a transaction
// @Description  Deleting a non-existent or foreign id succeeds without effect.
// @Tags         transactions
// @Produce      json
// @Param        id  path  int  true  "Transaction id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/transactions/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Transactions.Delete(ctx, callerID(c), id); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteTransaction,
			"tx_delete_failed", err, "userId", callerID(c), "id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary      Aggregate summary
// @Description  Groups own transactions by calendar month or year, summing income and expense per bucket.
// @Tags         transactions
// @Produce      json
// @Param        period  query  string  true  "monthly or yearly"  Enums(monthly,yearly)
// @Success      200  {array}   map[string]interface{}  "month|year, total_income, total_expense"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/transactions/summary [get]
// @Security     BearerAuth
func (h *Handler) getSummary(c *gin.Context) {
	period := c.Query("period")

	ctx := c.Request.Context()
	rows, err := h.services.Transactions.Summary(ctx, callerID(c), period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSummary,
			"tx_summary_failed", err, "userId", callerID(c), "period", period)
		return
	}

	bucketKey := "month"
	if period == service.PeriodYearly {
		bucketKey = "year"
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			bucketKey:       row.Bucket,
			"total_income":  row.TotalIncome,
			"total_expense": row.TotalExpense,
		})
	}
	c.JSON(http.StatusOK, out)
}

package api

import (
	"context"
	"net/http"

	"github.com/circulo-sport/courtdesk/cash"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CashService interface {
	List(ctx context.Context) ([]cash.Entry, error)
	ByDate(ctx context.Context, date string) ([]cash.Entry, error)
	Totals(ctx context.Context) (cash.Totals, error)
	DaySummary(ctx context.Context, date string) (cash.DaySummary, error)
	RecordIncome(ctx context.Context, concept string, amount decimal.Decimal, method cash.Method) (*cash.Entry, error)
	Withdraw(ctx context.Context, concept string, amount decimal.Decimal) (*cash.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

type CashHandler struct {
	service CashService
	pin     gin.HandlerFunc
}

func NewCashHandler(service CashService, pin gin.HandlerFunc) *CashHandler {
	return &CashHandler{service: service, pin: pin}
}

type incomeRequest struct {
	Concept string          `json:"concept" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Method  cash.Method     `json:"method" binding:"required,oneof=cash transfer"`
}

type withdrawalRequest struct {
	Concept string          `json:"concept" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

type summaryQuery struct {
	Date string `form:"date" binding:"required,ymd"`
}

func (h *CashHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/entries", h.ListEntries)
	rg.GET("/totals", h.GetTotals)
	rg.GET("/summary", h.GetSummary)
	rg.POST("/income", h.RecordIncome)
	rg.POST("/withdrawals", h.pin, h.Withdraw)
	rg.DELETE("/entries/:id", h.pin, h.DeleteEntry)
}

func (h *CashHandler) ListEntries(c *gin.Context) {
	var query dateQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "date must be YYYY-MM-DD")
		return
	}

	var (
		entries []cash.Entry
		err     error
	)

	if query.Date != "" {
		entries, err = h.service.ByDate(c.Request.Context(), query.Date)
	} else {
		entries, err = h.service.List(c.Request.Context())
	}

	if err != nil {
		respondError(c, err, "failed to retrieve ledger entries")
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}

func (h *CashHandler) GetTotals(c *gin.Context) {
	totals, err := h.service.Totals(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to compute totals")
		return
	}

	c.IndentedJSON(http.StatusOK, totals)
}

func (h *CashHandler) GetSummary(c *gin.Context) {
	var query summaryQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "date must be YYYY-MM-DD")
		return
	}

	summary, err := h.service.DaySummary(c.Request.Context(), query.Date)

	if err != nil {
		respondError(c, err, "failed to compute summary")
		return
	}

	c.IndentedJSON(http.StatusOK, summary)
}

func (h *CashHandler) RecordIncome(c *gin.Context) {
	var req incomeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "concept and a cash or transfer method are required")
		return
	}

	entry, err := h.service.RecordIncome(c.Request.Context(), req.Concept, req.Amount, req.Method)

	if err != nil {
		respondError(c, err, "failed to record income")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Withdraw takes cash out of the drawer; it never exceeds the cash on hand.
func (h *CashHandler) Withdraw(c *gin.Context) {
	var req withdrawalRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "concept is required")
		return
	}

	entry, err := h.service.Withdraw(c.Request.Context(), req.Concept, req.Amount)

	if err != nil {
		respondError(c, err, "failed to record withdrawal")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *CashHandler) DeleteEntry(c *gin.Context) {
	if err := h.service.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete ledger entry")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "ledger entry deleted"})
}

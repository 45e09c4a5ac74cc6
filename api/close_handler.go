package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/shiftclose"
	"github.com/gin-gonic/gin"
)

type CloseService interface {
	Generate(ctx context.Context, operator string, start, end time.Time) (shiftclose.Record, error)
	Close(ctx context.Context, operator string, start, end time.Time) (shiftclose.Record, error)
	List(ctx context.Context, filter shiftclose.Filter) ([]shiftclose.Record, error)
	Get(ctx context.Context, id string) (shiftclose.Record, error)
	Delete(ctx context.Context, ids ...string) (int, error)
	Location() *time.Location
}

type CloseHandler struct {
	service CloseService
	clock   clock.Clock
}

func NewCloseHandler(service CloseService, clk clock.Clock) *CloseHandler {
	return &CloseHandler{service: service, clock: clk}
}

type closeRequest struct {
	Operator string    `json:"operator" binding:"required"`
	Start    time.Time `json:"start" binding:"required"`
	End      time.Time `json:"end"`
}

type closeListQuery struct {
	From     string `form:"from" binding:"omitempty,ymd"`
	To       string `form:"to" binding:"omitempty,ymd"`
	Operator string `form:"operator"`
}

type deleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (h *CloseHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/preview", h.Preview)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/csv", h.DownloadCSV)
	rg.DELETE("", h.DeleteMany)
	rg.DELETE("/:id", h.Delete)
}

// Preview computes a close over the current data without archiving it.
func (h *CloseHandler) Preview(c *gin.Context) {
	var req closeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "operator and start are required")
		return
	}

	end := req.End

	if end.IsZero() {
		end = h.clock.Now()
	}

	record, err := h.service.Generate(c.Request.Context(), req.Operator, req.Start, end)

	if err != nil {
		respondError(c, err, "failed to generate shift close")
		return
	}

	c.IndentedJSON(http.StatusOK, record)
}

func (h *CloseHandler) Create(c *gin.Context) {
	var req closeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "operator and start are required")
		return
	}

	record, err := h.service.Close(c.Request.Context(), req.Operator, req.Start, req.End)

	if err != nil {
		respondError(c, err, "failed to close shift")
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *CloseHandler) List(c *gin.Context) {
	var query closeListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "from and to must be YYYY-MM-DD")
		return
	}

	loc := h.service.Location()
	filter := shiftclose.Filter{Operator: query.Operator}

	if query.From != "" {
		filter.From, _ = time.ParseInLocation(time.DateOnly, query.From, loc)
	}

	if query.To != "" {
		to, _ := time.ParseInLocation(time.DateOnly, query.To, loc)
		filter.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	records, err := h.service.List(c.Request.Context(), filter)

	if err != nil {
		respondError(c, err, "failed to retrieve shift closes")
		return
	}

	c.IndentedJSON(http.StatusOK, records)
}

func (h *CloseHandler) GetByID(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch shift close")
		return
	}

	c.IndentedJSON(http.StatusOK, record)
}

func (h *CloseHandler) DownloadCSV(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch shift close")
		return
	}

	loc := h.service.Location()

	var buf bytes.Buffer

	if err := shiftclose.WriteCSV(&buf, record, loc); err != nil {
		respondError(c, err, "failed to render shift close")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", shiftclose.Filename(record, loc)))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func (h *CloseHandler) DeleteMany(c *gin.Context) {
	var req deleteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "ids are required")
		return
	}

	n, err := h.service.Delete(c.Request.Context(), req.IDs...)

	if err != nil {
		respondError(c, err, "failed to delete shift closes")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"deleted": n})
}

func (h *CloseHandler) Delete(c *gin.Context) {
	n, err := h.service.Delete(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to delete shift close")
		return
	}

	if n == 0 {
		respondError(c, shiftclose.ErrCloseNotFound, "failed to delete shift close")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"deleted": n})
}

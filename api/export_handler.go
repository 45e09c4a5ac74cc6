package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/export"
	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

type BackupService interface {
	Backup(ctx context.Context, opts export.Options) (export.File, error)
	Restore(ctx context.Context, raw []byte, mode export.Mode) ([]string, error)
	Settings(ctx context.Context) (export.Settings, error)
	SetRemindEveryDays(ctx context.Context, days int) (export.Settings, error)
}

// ExportHandler serves CSV exports and JSON backups.
type ExportHandler struct {
	backups   BackupService
	bookings  BookingService
	customers CustomerService
	ledger    CashService
	catalog   CatalogService
	clock     clock.Clock
	pin       gin.HandlerFunc
}

func NewExportHandler(backups BackupService, bookings BookingService, customers CustomerService, ledger CashService, catalog CatalogService, clk clock.Clock, pin gin.HandlerFunc) *ExportHandler {
	return &ExportHandler{
		backups:   backups,
		bookings:  bookings,
		customers: customers,
		ledger:    ledger,
		catalog:   catalog,
		clock:     clk,
		pin:       pin,
	}
}

type backupQuery struct {
	From    string `form:"from" binding:"omitempty,ymd"`
	To      string `form:"to" binding:"omitempty,ymd"`
	Include string `form:"include"`
}

type restoreQuery struct {
	Mode string `form:"mode" binding:"omitempty,oneof=replace merge"`
}

type settingsRequest struct {
	RemindEveryDays *int `json:"remindEveryDays" binding:"required,gte=0"`
}

func (h *ExportHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/exports/:kind", h.ExportCSV)
	rg.GET("/backup", h.Backup)
	rg.POST("/backup/restore", h.pin, h.Restore)
	rg.GET("/backup/settings", h.GetSettings)
	rg.PUT("/backup/settings", h.UpdateSettings)
}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.Param("kind")

	var (
		buf bytes.Buffer
		err error
	)

	switch kind {
	case export.KindBookings:
		err = h.writeBookings(ctx, &buf)
	case export.KindCustomers:
		err = h.writeCustomers(ctx, &buf)
	case export.KindLedger:
		err = h.writeLedger(ctx, &buf)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown export '%v'", kind)})
		return
	}

	if err != nil {
		respondError(c, err, "failed to export "+kind)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(kind, h.clock.Now())))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func (h *ExportHandler) writeBookings(ctx context.Context, buf *bytes.Buffer) error {
	bookings, err := h.bookings.GetBookings(ctx)

	if err != nil {
		return err
	}

	return export.WriteBookings(buf, bookings, h.catalog.CourtName)
}

func (h *ExportHandler) writeCustomers(ctx context.Context, buf *bytes.Buffer) error {
	customers, err := h.customers.List(ctx)

	if err != nil {
		return err
	}

	return export.WriteCustomers(buf, customers)
}

func (h *ExportHandler) writeLedger(ctx context.Context, buf *bytes.Buffer) error {
	entries, err := h.ledger.List(ctx)

	if err != nil {
		return err
	}

	return export.WriteLedger(buf, entries)
}

// Backup downloads a JSON backup. ?from and ?to limit bookings and ledger
// entries; ?include=bookings,ledger,customers,extras picks the collections.
func (h *ExportHandler) Backup(c *gin.Context) {
	var query backupQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "from and to must be YYYY-MM-DD")
		return
	}

	var opts export.Options

	if query.From != "" || query.To != "" {
		opts.Range = &export.Range{From: query.From, To: query.To}
	}

	if query.Include != "" {
		includes := export.Includes{}

		for _, name := range strings.Split(query.Include, ",") {
			switch strings.TrimSpace(name) {
			case "bookings":
				includes.Bookings = true
			case "ledger":
				includes.Ledger = true
			case "customers":
				includes.Customers = true
			case "extras":
				includes.Extras = true
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown collection '%v'", name)})
				return
			}
		}

		opts.Includes = &includes
	}

	file, err := h.backups.Backup(c.Request.Context(), opts)

	if err != nil {
		respondError(c, err, "failed to create backup")
		return
	}

	name := fmt.Sprintf("%v-backup-%v.json", export.AppTag, file.Meta.CreatedAt.Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.IndentedJSON(http.StatusOK, file)
}

func (h *ExportHandler) Restore(c *gin.Context) {
	var query restoreQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "mode must be replace or merge")
		return
	}

	raw, err := c.GetRawData()

	if err != nil {
		badRequest(c, err, "failed to read body")
		return
	}

	written, err := h.backups.Restore(c.Request.Context(), raw, export.Mode(query.Mode))

	if err != nil {
		respondError(c, err, "failed to restore backup")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"restored": written})
}

func (h *ExportHandler) GetSettings(c *gin.Context) {
	settings, err := h.backups.Settings(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to read backup settings")
		return
	}

	c.IndentedJSON(http.StatusOK, settings)
}

func (h *ExportHandler) UpdateSettings(c *gin.Context) {
	var req settingsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "remindEveryDays must be zero or more")
		return
	}

	settings, err := h.backups.SetRemindEveryDays(c.Request.Context(), *req.RemindEveryDays)

	if err != nil {
		respondError(c, err, "failed to save backup settings")
		return
	}

	c.IndentedJSON(http.StatusOK, settings)
}

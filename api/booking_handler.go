package api

import (
	"context"
	"net/http"

	bk "github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BookingService interface {
	GetBookings(ctx context.Context) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsByDate(ctx context.Context, date string) ([]bk.Booking, error)
	IsAvailable(ctx context.Context, courtID, date, start, end, excludeID string) (bool, error)
	Save(ctx context.Context, booking bk.Booking) (bk.Saved, error)
	SaveWeekly(ctx context.Context, base bk.Booking, weeks int) (bk.Series, error)
	Cancel(ctx context.Context, id string) (bk.Booking, error)
	Delete(ctx context.Context, id string) error
	GetBookingCountPerCourt(ctx context.Context, from, to string) ([]bk.CourtBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context, from, to string) ([]bk.WeekDayBookingCount, error)
}

type BookingHandler struct {
	service BookingService
	pin     gin.HandlerFunc
}

func NewBookingHandler(service BookingService, pin gin.HandlerFunc) *BookingHandler {
	return &BookingHandler{service: service, pin: pin}
}

type dateQuery struct {
	Date string `form:"date" binding:"omitempty,ymd"`
}

type periodQuery struct {
	From string `form:"from" binding:"omitempty,ymd"`
	To   string `form:"to" binding:"omitempty,ymd"`
}

type availabilityQuery struct {
	CourtID   string `form:"courtId" binding:"required"`
	Date      string `form:"date" binding:"required,ymd"`
	Start     string `form:"start" binding:"required,hhmm"`
	End       string `form:"end" binding:"required,hhmm"`
	ExcludeID string `form:"excludeId"`
}

// bookingRequest is the body of a booking write. Amounts decode strictly so a
// malformed price is rejected rather than stored as zero.
type bookingRequest struct {
	CourtID              string          `json:"courtId"`
	CustomerID           string          `json:"customerId"`
	CustomerName         string          `json:"customerName"`
	Date                 string          `json:"date"`
	Start                string          `json:"start"`
	End                  string          `json:"end"`
	Method               cash.Method     `json:"method"`
	Status               bk.Status       `json:"status"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	Addons               []bk.Addon      `json:"addons"`
	Items                []bk.Item       `json:"items"`
	Deposit              decimal.Decimal `json:"deposit"`
	DepositMethod        cash.Method     `json:"depositMethod"`
	DepositPostsToLedger *bool           `json:"depositPostsToLedger"`
	Comment              string          `json:"comment"`
	SeriesID             string          `json:"seriesId"`
}

func (r bookingRequest) booking() bk.Booking {
	return bk.Booking{
		CourtID:              r.CourtID,
		CustomerID:           r.CustomerID,
		CustomerName:         r.CustomerName,
		Date:                 r.Date,
		Start:                r.Start,
		End:                  r.End,
		Method:               r.Method,
		Status:               r.Status,
		BasePrice:            r.BasePrice,
		Addons:               r.Addons,
		Items:                r.Items,
		Deposit:              r.Deposit,
		DepositMethod:        r.DepositMethod,
		DepositPostsToLedger: r.DepositPostsToLedger,
		Comment:              r.Comment,
		SeriesID:             r.SeriesID,
	}
}

type weeklyRequest struct {
	Booking bookingRequest `json:"booking"`
	Weeks   int            `json:"weeks" binding:"gte=0,lte=52"`
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/availability", h.Availability)
	rg.GET("/stats/court", h.GetCourtStats)
	rg.GET("/stats/day", h.GetWeekDayStats)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.POST("/weekly", h.CreateWeekly)
	rg.PUT("/:id", h.Modify)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.DELETE("/:id", h.pin, h.Delete)
}

// List returns every booking, or a single day's agenda with ?date=YYYY-MM-DD.
func (h *BookingHandler) List(c *gin.Context) {
	var query dateQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "date must be YYYY-MM-DD")
		return
	}

	var (
		bookings []bk.Booking
		err      error
	)

	if query.Date != "" {
		bookings, err = h.service.FindBookingsByDate(c.Request.Context(), query.Date)
	} else {
		bookings, err = h.service.GetBookings(c.Request.Context())
	}

	if err != nil {
		respondError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.FindBookingByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Availability(c *gin.Context) {
	var query availabilityQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "courtId, date (YYYY-MM-DD), start and end (HH:MM) are required")
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), query.CourtID, query.Date, query.Start, query.End, query.ExcludeID)

	if err != nil {
		respondError(c, err, "failed to check availability")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"available": available})
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	booking := req.booking()

	saved, err := h.service.Save(c.Request.Context(), booking)

	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *BookingHandler) CreateWeekly(c *gin.Context) {
	var req weeklyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	series, err := h.service.SaveWeekly(c.Request.Context(), req.Booking.booking(), req.Weeks)

	if err != nil {
		respondError(c, err, "failed to create weekly bookings")
		return
	}

	c.JSON(http.StatusCreated, series)
}

func (h *BookingHandler) Modify(c *gin.Context) {
	var req bookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	booking := req.booking()
	booking.ID = c.Param("id")

	if _, err := h.service.FindBookingByID(c.Request.Context(), booking.ID); err != nil {
		respondError(c, err, "failed to modify booking")
		return
	}

	saved, err := h.service.Save(c.Request.Context(), booking)

	if err != nil {
		respondError(c, err, "failed to modify booking")
		return
	}

	c.IndentedJSON(http.StatusOK, saved)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.service.Cancel(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

// Delete removes the booking together with every ledger entry it posted.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

func (h *BookingHandler) GetCourtStats(c *gin.Context) {
	var query periodQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "from and to must be YYYY-MM-DD")
		return
	}

	stats, err := h.service.GetBookingCountPerCourt(c.Request.Context(), query.From, query.To)

	if err != nil {
		respondError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetWeekDayStats(c *gin.Context) {
	var query periodQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "from and to must be YYYY-MM-DD")
		return
	}

	stats, err := h.service.GetBookingCountPerWeekDay(c.Request.Context(), query.From, query.To)

	if err != nil {
		respondError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

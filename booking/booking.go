package booking

import (
	"encoding/json"
	"time"

	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Addon struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Item struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type Booking struct {
	ID                   string          `json:"id"`
	CourtID              string          `json:"courtId"`
	CustomerID           string          `json:"customerId"`
	CustomerName         string          `json:"customerName"`
	Date                 string          `json:"date"`
	Start                string          `json:"start"`
	End                  string          `json:"end"`
	Method               cash.Method     `json:"method"`
	Status               Status          `json:"status"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	Addons               []Addon         `json:"addons"`
	Items                []Item          `json:"items"`
	Total                decimal.Decimal `json:"total"`
	Deposit              decimal.Decimal `json:"deposit"`
	DepositMethod        cash.Method     `json:"depositMethod,omitempty"`
	DepositPostsToLedger *bool           `json:"depositPostsToLedger,omitempty"`
	Comment              string          `json:"comment,omitempty"`
	SeriesID             string          `json:"seriesId,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

func ID(b Booking) string { return b.ID }

// PostsDeposit reports whether deposit increases reach the ledger. An absent
// flag means true; weekly siblings carry an explicit false.
func (b Booking) PostsDeposit() bool {
	return b.DepositPostsToLedger == nil || *b.DepositPostsToLedger
}

func (b Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func (b Booking) ComputeTotal() decimal.Decimal {
	total := b.BasePrice

	for _, addon := range b.Addons {
		total = total.Add(addon.Price.Mul(decimal.NewFromInt(int64(addon.Quantity))))
	}

	for _, item := range b.Items {
		total = total.Add(item.Price)
	}

	return total
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking

	*b = Booking{}
	aux := struct {
		*plain
		BasePrice json.RawMessage `json:"basePrice"`
		Total     json.RawMessage `json:"total"`
		Deposit   json.RawMessage `json:"deposit"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	b.BasePrice = store.LenientAmount(aux.BasePrice)
	b.Total = store.LenientAmount(aux.Total)
	b.Deposit = store.LenientAmount(aux.Deposit)
	b.CreatedAt, _ = store.LenientTime(aux.CreatedAt)

	return nil
}

type CourtBookingCount struct {
	CourtID string `json:"courtId"`
	Count   int    `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}

func boolPtr(v bool) *bool { return &v }

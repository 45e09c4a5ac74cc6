package shiftclose

import (
	"encoding/json"
	"time"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/shopspring/decimal"
)

const (
	notApplicable     = "N/A"
	customerNotFound  = "customer not found"
	manualIncomeLabel = "Income"
)

type Totals struct {
	Cash     decimal.Decimal `json:"cash"`
	Transfer decimal.Decimal `json:"transfer"`
	Overall  decimal.Decimal `json:"overall"`
}

// Line is one sale in the close detail. Outflows never produce a line.
type Line struct {
	Date     string          `json:"date"`
	Customer string          `json:"customer"`
	Court    string          `json:"court"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
}

type Record struct {
	ID              string            `json:"id"`
	Operator        string            `json:"operator"`
	Start           time.Time         `json:"start"`
	End             time.Time         `json:"end"`
	DurationMinutes int64             `json:"durationMinutes"`
	Totals          Totals            `json:"totals"`
	SalesCount      int               `json:"salesCount"`
	Lines           []Line            `json:"lines"`
	Bookings        []booking.Booking `json:"bookings"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func ID(r Record) string { return r.ID }

func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record

	*r = Record{}
	aux := struct {
		*plain
		Start     json.RawMessage `json:"start"`
		End       json.RawMessage `json:"end"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Start, _ = store.LenientTime(aux.Start)
	r.End, _ = store.LenientTime(aux.End)
	r.CreatedAt, _ = store.LenientTime(aux.CreatedAt)

	return nil
}

type Filter struct {
	From     time.Time
	To       time.Time
	Operator string
}

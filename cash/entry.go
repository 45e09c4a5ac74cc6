package cash

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/circulo-sport/courtdesk/store"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodPending  Method = "pending"
)

func (m Method) Valid() bool {
	return m == MethodCash || m == MethodTransfer || m == MethodPending
}

// Kind is the reporting category of an entry. It is stored at post time;
// entries written without one are classified from their other fields.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindBalance    Kind = "balance"
	KindManual     Kind = "manual"
	KindWithdrawal Kind = "withdrawal"
)

const depositPrefix = "deposit"

type Entry struct {
	ID        string          `json:"id"`
	Direction Direction       `json:"direction"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	At        time.Time       `json:"at"`
	BookingID string          `json:"bookingId,omitempty"`
	Method    Method          `json:"method,omitempty"`
	Kind      Kind            `json:"kind,omitempty"`

	// Invalid marks an entry whose stored timestamp could not be parsed.
	Invalid bool `json:"invalid,omitempty"`

	// rawAt is the stored timestamp of an invalid entry, written back as is.
	rawAt string
}

func EntryID(e Entry) string { return e.ID }

// Signed returns the amount as it affects the drawer.
func (e Entry) Signed() decimal.Decimal {
	if e.Direction == DirectionOutflow {
		return e.Amount.Neg()
	}

	return e.Amount
}

func (e Entry) Classify() Kind {
	if e.Kind != "" {
		return e.Kind
	}

	if e.Direction == DirectionOutflow {
		return KindWithdrawal
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(e.Concept)), depositPrefix) {
		return KindDeposit
	}

	if e.BookingID != "" {
		return KindBalance
	}

	return KindManual
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry

	if !e.Invalid || e.rawAt == "" {
		return json.Marshal(plain(e))
	}

	return json.Marshal(struct {
		plain
		At json.RawMessage `json:"at"`
	}{plain: plain(e), At: json.RawMessage(e.rawAt)})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        string          `json:"id"`
		Direction Direction       `json:"direction"`
		Concept   string          `json:"concept"`
		Amount    json.RawMessage `json:"amount"`
		At        json.RawMessage `json:"at"`
		BookingID string          `json:"bookingId"`
		Method    Method          `json:"method"`
		Kind      Kind            `json:"kind"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	at, ok := store.LenientTime(aux.At)

	*e = Entry{
		ID:        aux.ID,
		Direction: aux.Direction,
		Concept:   aux.Concept,
		Amount:    nonNegative(store.LenientAmount(aux.Amount)),
		At:        at,
		BookingID: aux.BookingID,
		Method:    aux.Method,
		Kind:      aux.Kind,
		Invalid:   !ok,
	}

	if !ok && len(aux.At) > 0 {
		e.rawAt = string(aux.At)
	}

	return nil
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

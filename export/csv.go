package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/customer"
)

const (
	KindBookings  = "bookings"
	KindCustomers = "customers"
	KindLedger    = "ledger"
)

// Filename is "<kind>-YYYY-MM-DD.csv" for the local date of now.
func Filename(kind string, now time.Time) string {
	return fmt.Sprintf("%v-%v.csv", kind, now.Format(time.DateOnly))
}

func WriteBookings(w io.Writer, bookings []booking.Booking, courtName func(string) string) error {
	rows := [][]string{{
		"ID", "Court", "Customer", "Date", "Start", "End", "Payment method", "Base price", "Addons", "Items",
		"Total", "Status", "Deposit", "Deposit method", "Deposit posts to ledger", "Comment", "Created at",
	}}

	for _, b := range bookings {
		addons, err := json.Marshal(b.Addons)

		if err != nil {
			return fmt.Errorf("failed to encode addons of booking '%v': %w", b.ID, err)
		}

		items, err := json.Marshal(b.Items)

		if err != nil {
			return fmt.Errorf("failed to encode items of booking '%v': %w", b.ID, err)
		}

		rows = append(rows, []string{
			b.ID,
			courtName(b.CourtID),
			b.CustomerName,
			b.Date,
			b.Start,
			b.End,
			string(b.Method),
			b.BasePrice.String(),
			string(addons),
			string(items),
			b.Total.String(),
			string(b.Status),
			b.Deposit.String(),
			string(b.DepositMethod),
			strconv.FormatBool(b.PostsDeposit()),
			b.Comment,
			timestamp(b.CreatedAt),
		})
	}

	return writeAll(w, rows)
}

func WriteCustomers(w io.Writer, customers []customer.Customer) error {
	rows := [][]string{{"ID", "Member number", "Name", "Phone", "Created at"}}

	for _, c := range customers {
		rows = append(rows, []string{c.ID, c.MemberNumber, c.Name, c.Phone, timestamp(c.CreatedAt)})
	}

	return writeAll(w, rows)
}

func WriteLedger(w io.Writer, entries []cash.Entry) error {
	rows := [][]string{{"ID", "Direction", "Movement type", "Concept", "Amount", "At", "Booking ID", "Method"}}

	for _, e := range entries {
		at := timestamp(e.At)

		if e.Invalid {
			at = "invalid"
		}

		rows = append(rows, []string{
			e.ID,
			string(e.Direction),
			MovementType(e),
			e.Concept,
			e.Amount.String(),
			at,
			e.BookingID,
			string(e.Method),
		})
	}

	return writeAll(w, rows)
}

// MovementType is the reporting category of an entry: DEPOSIT, BALANCE, MANUAL
// or WITHDRAWAL.
func MovementType(e cash.Entry) string {
	return strings.ToUpper(string(e.Classify()))
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func writeAll(w io.Writer, rows [][]string) error {
	if err := csv.NewWriter(w).WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

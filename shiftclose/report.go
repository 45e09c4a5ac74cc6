package shiftclose

import (
	"time"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/shopspring/decimal"
)

// Build summarizes the ledger entries with start <= at <= end. Entries are
// joined to their booking for display; a missing booking degrades to a
// placeholder line. Withdrawals always come out of the cash total.
func Build(operator string, start, end time.Time, entries []cash.Entry, bookings []booking.Booking, courtName func(string) string, loc *time.Location) Record {
	byID := make(map[string]booking.Booking, len(bookings))

	for _, b := range bookings {
		byID[b.ID] = b
	}

	cashTotal, transferTotal, overall := decimal.Zero, decimal.Zero, decimal.Zero
	lines := []Line{}
	touched := []booking.Booking{}
	seen := map[string]bool{}

	for _, entry := range entries {
		if entry.Invalid || entry.At.Before(start) || entry.At.After(end) {
			continue
		}

		if b, ok := byID[entry.BookingID]; ok && !seen[b.ID] {
			seen[b.ID] = true
			touched = append(touched, b)
		}

		if entry.Direction == cash.DirectionOutflow {
			cashTotal = cashTotal.Sub(entry.Amount)
			overall = overall.Sub(entry.Amount)
			continue
		}

		switch entry.Method {
		case cash.MethodCash:
			cashTotal = cashTotal.Add(entry.Amount)
		case cash.MethodTransfer:
			transferTotal = transferTotal.Add(entry.Amount)
		}

		overall = overall.Add(entry.Amount)
		lines = append(lines, lineFor(entry, byID, courtName, loc))
	}

	duration := int64(end.Sub(start) / time.Minute)

	if duration < 0 {
		duration = 0
	}

	return Record{
		Operator:        operator,
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		Totals: Totals{
			Cash:     cashTotal.Round(0),
			Transfer: transferTotal.Round(0),
			Overall:  overall.Round(0),
		},
		SalesCount: len(lines),
		Lines:      lines,
		Bookings:   touched,
	}
}

func lineFor(entry cash.Entry, bookings map[string]booking.Booking, courtName func(string) string, loc *time.Location) Line {
	line := Line{
		Date:   entry.At.In(loc).Format(time.DateOnly),
		Amount: entry.Amount,
		Method: string(entry.Method),
		Court:  notApplicable,
	}

	if line.Method == "" {
		line.Method = notApplicable
	}

	if entry.BookingID == "" {
		line.Customer = entry.Concept

		if line.Customer == "" {
			line.Customer = manualIncomeLabel
		}

		return line
	}

	b, ok := bookings[entry.BookingID]

	if !ok {
		line.Customer = customerNotFound
		line.From = notApplicable
		line.To = notApplicable
		return line
	}

	if b.Date != "" {
		line.Date = b.Date
	}

	line.Customer = b.CustomerName
	line.Court = courtName(b.CourtID)
	line.From = b.Start
	line.To = b.End

	return line
}

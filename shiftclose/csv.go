package shiftclose

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const periodLayout = "02/01/2006 15:04"

// WriteCSV renders a close as a summary block followed by the sales table.
func WriteCSV(w io.Writer, record Record, loc *time.Location) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Shift close - " + record.Operator},
		{fmt.Sprintf("Period: %v - %v", record.Start.In(loc).Format(periodLayout), record.End.In(loc).Format(periodLayout))},
		{"Total cash: " + record.Totals.Cash.String()},
		{"Total transfer: " + record.Totals.Transfer.String()},
		{"Overall total: " + record.Totals.Overall.String()},
		{"Sales: " + strconv.Itoa(record.SalesCount)},
		{},
		{"Date", "Customer", "Court", "From", "To", "Amount", "Method"},
	}

	for _, line := range record.Lines {
		rows = append(rows, []string{line.Date, line.Customer, line.Court, line.From, line.To, line.Amount.String(), line.Method})
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write shift close csv: %w", err)
	}

	return nil
}

// Filename is "shift-close-<operator>-YYYY-MM-DD.csv" using the local start date.
func Filename(record Record, loc *time.Location) string {
	operator := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return '_'
	}, record.Operator)

	return fmt.Sprintf("shift-close-%v-%v.csv", operator, record.Start.In(loc).Format(time.DateOnly))
}

package booking

import (
	"fmt"

	"github.com/circulo-sport/courtdesk/cash"
	"github.com/shopspring/decimal"
)

// Reconcile returns the ledger inflows a save from prev to next must post.
// prev is nil for a new booking.
//
// A pending booking posts only the increase of its deposit, so raising a
// deposit never double-posts and lowering it posts nothing. Leaving pending
// posts the balance left after the deposit with the confirmed method. A save
// that raises the deposit and confirms at once posts both.
func Reconcile(prev *Booking, next Booking, courtName string) []cash.Inflow {
	inflows := []cash.Inflow{}
	confirming := prev != nil && prev.Method == cash.MethodPending && next.Method != cash.MethodPending

	if (next.Method == cash.MethodPending || confirming) && next.PostsDeposit() {
		previous := decimal.Zero

		if prev != nil {
			previous = nonNegative(prev.Deposit)
		}

		delta := nonNegative(next.Deposit).Sub(previous)

		if delta.IsPositive() {
			method := next.DepositMethod

			if method == "" {
				method = cash.MethodCash
			}

			inflows = append(inflows, cash.Inflow{
				Concept:   fmt.Sprintf("Deposit %v - %v", courtName, next.CustomerName),
				Amount:    delta,
				BookingID: next.ID,
				Method:    method,
				Kind:      cash.KindDeposit,
			})
		}
	}

	if confirming {
		balance := nonNegative(next.Total.Sub(nonNegative(next.Deposit)))

		if balance.IsPositive() {
			inflows = append(inflows, cash.Inflow{
				Concept:   fmt.Sprintf("Booking %v - %v", courtName, next.CustomerName),
				Amount:    balance,
				BookingID: next.ID,
				Method:    next.Method,
				Kind:      cash.KindBalance,
			})
		}
	}

	return inflows
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

package booking_test

import (
	"testing"

	bk "github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	pending := newBooking("padel-1", "2024-05-10", "10:00", "11:00")
	pending.ID = "b1"
	pending.Total = dec(5000)

	t.Run("new pending booking posts its deposit", func(t *testing.T) {
		next := pending
		next.Deposit = dec(1500)
		next.DepositMethod = cash.MethodTransfer

		inflows := bk.Reconcile(nil, next, "Pádel 1")
		require.Len(t, inflows, 1)
		require.True(t, dec(1500).Equal(inflows[0].Amount))
		require.Equal(t, cash.MethodTransfer, inflows[0].Method)
		require.Equal(t, cash.KindDeposit, inflows[0].Kind)
		require.Equal(t, "Deposit Pádel 1 - Ana", inflows[0].Concept)
		require.Equal(t, "b1", inflows[0].BookingID)
	})

	t.Run("deposit method defaults to cash", func(t *testing.T) {
		next := pending
		next.Deposit = dec(100)

		inflows := bk.Reconcile(nil, next, "Pádel 1")
		require.Len(t, inflows, 1)
		require.Equal(t, cash.MethodCash, inflows[0].Method)
	})

	t.Run("only the deposit increase posts", func(t *testing.T) {
		prev := pending
		prev.Deposit = dec(500)
		next := pending
		next.Deposit = dec(800)

		inflows := bk.Reconcile(&prev, next, "Pádel 1")
		require.Len(t, inflows, 1)
		require.True(t, dec(300).Equal(inflows[0].Amount))
	})

	t.Run("lowering the deposit posts nothing", func(t *testing.T) {
		prev := pending
		prev.Deposit = dec(800)
		next := pending
		next.Deposit = dec(200)

		require.Empty(t, bk.Reconcile(&prev, next, "Pádel 1"))
	})

	t.Run("informative deposit posts nothing", func(t *testing.T) {
		off := false
		next := pending
		next.Deposit = dec(1000)
		next.DepositPostsToLedger = &off

		require.Empty(t, bk.Reconcile(nil, next, "Pádel 1"))
	})

	t.Run("confirmation posts the balance", func(t *testing.T) {
		prev := pending
		prev.Deposit = dec(1500)
		next := prev
		next.Method = cash.MethodTransfer

		inflows := bk.Reconcile(&prev, next, "Pádel 1")
		require.Len(t, inflows, 1)
		require.True(t, dec(3500).Equal(inflows[0].Amount))
		require.Equal(t, cash.MethodTransfer, inflows[0].Method)
		require.Equal(t, cash.KindBalance, inflows[0].Kind)
		require.Equal(t, "Booking Pádel 1 - Ana", inflows[0].Concept)
	})

	t.Run("raising the deposit while confirming posts both", func(t *testing.T) {
		prev := pending
		prev.Deposit = dec(500)
		prev.DepositMethod = cash.MethodTransfer
		next := prev
		next.Deposit = dec(800)
		next.Method = cash.MethodCash

		inflows := bk.Reconcile(&prev, next, "Pádel 1")
		require.Len(t, inflows, 2)

		require.Equal(t, cash.KindDeposit, inflows[0].Kind)
		require.True(t, dec(300).Equal(inflows[0].Amount))
		require.Equal(t, cash.MethodTransfer, inflows[0].Method)

		require.Equal(t, cash.KindBalance, inflows[1].Kind)
		require.True(t, dec(4200).Equal(inflows[1].Amount))
		require.Equal(t, cash.MethodCash, inflows[1].Method)
	})

	t.Run("deposit covering the total leaves no balance", func(t *testing.T) {
		prev := pending
		prev.Deposit = dec(6000)
		next := prev
		next.Method = cash.MethodCash

		require.Empty(t, bk.Reconcile(&prev, next, "Pádel 1"))
	})

	t.Run("confirmed edits post nothing", func(t *testing.T) {
		prev := pending
		prev.Method = cash.MethodCash
		next := prev
		next.Deposit = dec(900)

		require.Empty(t, bk.Reconcile(&prev, next, "Pádel 1"))
	})
}

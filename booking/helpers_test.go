package booking_test

import (
	"context"
	"testing"
	"time"

	bk "github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/catalog"
	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/shopspring/decimal"
)

type storeDeps struct {
	clock   *clock.Manual
	ledger  *cash.Service
	service *bk.Service
	ctx     context.Context
}

func newStoreDeps(t *testing.T) storeDeps {
	t.Helper()

	kv := store.NewMemory()
	clk := clock.NewManual(time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC))
	ledger := cash.NewService(store.NewCollection(kv, "courtdesk-ledger", cash.EntryID), clk, events.Discard{}, time.UTC)
	courts := catalog.NewService(store.NewCollection(kv, "courtdesk-extras", catalog.ExtraID))
	repo := bk.NewRepository(store.NewCollection(kv, "courtdesk-bookings", bk.ID))

	return storeDeps{
		clock:   clk,
		ledger:  ledger,
		service: bk.NewService(repo, ledger, courts, clk, events.Discard{}),
		ctx:     context.Background(),
	}
}

func newBooking(court, date, start, end string) bk.Booking {
	return bk.Booking{
		CourtID:      court,
		CustomerID:   "c1",
		CustomerName: "Ana",
		Date:         date,
		Start:        start,
		End:          end,
		Method:       cash.MethodPending,
		BasePrice:    decimal.NewFromInt(10000),
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

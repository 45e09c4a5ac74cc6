package cash

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	All(ctx context.Context) ([]Entry, error)
	Filter(ctx context.Context, keep func(Entry) bool) ([]Entry, error)
	Upsert(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, ids ...string) (int, error)
	DeleteWhere(ctx context.Context, match func(Entry) bool) ([]Entry, error)
}

type Inflow struct {
	Concept   string
	Amount    decimal.Decimal
	BookingID string
	Method    Method
	Kind      Kind
}

type Totals struct {
	Cash     decimal.Decimal `json:"cash"`
	Transfer decimal.Decimal `json:"transfer"`
	Overall  decimal.Decimal `json:"overall"`
}

type DaySummary struct {
	Date           string          `json:"date"`
	Income         decimal.Decimal `json:"income"`
	IncomeCash     decimal.Decimal `json:"incomeCash"`
	IncomeTransfer decimal.Decimal `json:"incomeTransfer"`
	Withdrawals    decimal.Decimal `json:"withdrawals"`
	Deposits       decimal.Decimal `json:"deposits"`
	Balances       decimal.Decimal `json:"balances"`
	Manual         decimal.Decimal `json:"manual"`
	Drawer         Totals          `json:"drawer"`
}

type Service struct {
	repo   Repository
	clock  clock.Clock
	events events.Publisher
	loc    *time.Location
	mu     sync.Mutex
}

func NewService(repo Repository, clk clock.Clock, publisher events.Publisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{repo: repo, clock: clk, events: publisher, loc: loc}
}

// PostInflow appends an inflow. Pending money never reaches the drawer, so a
// pending method makes this a no-op returning a nil entry.
func (s *Service) PostInflow(ctx context.Context, in Inflow) (*Entry, error) {
	if in.Method == MethodPending {
		return nil, nil
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Direction: DirectionInflow,
		Concept:   in.Concept,
		Amount:    nonNegative(in.Amount),
		At:        s.clock.Now(),
		BookingID: in.BookingID,
		Method:    in.Method,
	}
	entry.Kind = in.Kind

	if entry.Kind == "" {
		entry.Kind = entry.Classify()
	}

	return s.append(ctx, entry)
}

// PostOutflow appends a withdrawal. Withdrawals always leave the cash drawer.
func (s *Service) PostOutflow(ctx context.Context, concept string, amount decimal.Decimal) (*Entry, error) {
	return s.append(ctx, Entry{
		ID:        uuid.NewString(),
		Direction: DirectionOutflow,
		Concept:   concept,
		Amount:    nonNegative(amount),
		At:        s.clock.Now(),
		Method:    MethodCash,
		Kind:      KindWithdrawal,
	})
}

func (s *Service) append(ctx context.Context, entry Entry) (*Entry, error) {
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to post ledger entry: %w", err)
	}

	s.events.Publish(events.Event{Type: events.LedgerPosted, At: entry.At, Payload: entry})

	return &entry, nil
}

func (s *Service) RecordIncome(ctx context.Context, concept string, amount decimal.Decimal, method Method) (*Entry, error) {
	concept = strings.TrimSpace(concept)

	if concept == "" {
		return nil, ErrMissingConcept
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if method != MethodCash && method != MethodTransfer {
		return nil, fmt.Errorf("%w: '%v'", ErrInvalidMethod, method)
	}

	return s.PostInflow(ctx, Inflow{Concept: concept, Amount: amount, Method: method, Kind: KindManual})
}

func (s *Service) Withdraw(ctx context.Context, concept string, amount decimal.Decimal) (*Entry, error) {
	concept = strings.TrimSpace(concept)

	if concept == "" {
		return nil, ErrMissingConcept
	}

	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	totals, err := s.Totals(ctx)

	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(totals.Cash) {
		return nil, fmt.Errorf("%w: available %v", ErrInsufficientCash, totals.Cash)
	}

	return s.PostOutflow(ctx, concept, amount)
}

// DeleteByBooking removes every entry referencing the booking. It is only
// used when the booking itself is deleted.
func (s *Service) DeleteByBooking(ctx context.Context, bookingID string) (int, error) {
	if bookingID == "" {
		return 0, nil
	}

	removed, err := s.repo.DeleteWhere(ctx, func(e Entry) bool { return e.BookingID == bookingID })

	if err != nil {
		return 0, fmt.Errorf("failed to delete entries of booking '%v': %w", bookingID, err)
	}

	if len(removed) > 0 {
		s.events.Publish(events.Event{Type: events.LedgerDeleted, Payload: removed})
	}

	return len(removed), nil
}

func (s *Service) Delete(ctx context.Context, ids ...string) (int, error) {
	n, err := s.repo.Delete(ctx, ids...)

	if err != nil {
		return 0, fmt.Errorf("failed to delete ledger entries: %w", err)
	}

	if n > 0 {
		s.events.Publish(events.Event{Type: events.LedgerDeleted, Payload: ids})
	}

	return n, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	n, err := s.Delete(ctx, id)

	if err != nil {
		return err
	}

	if n == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// Upsert writes an entry by id as given. It exists for restoring data and
// performs no classification or coercion beyond the non-negative amount.
func (s *Service) Upsert(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: missing id", ErrEntryNotFound)
	}

	entry.Amount = nonNegative(entry.Amount)

	return s.repo.Upsert(ctx, entry)
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.All(ctx)
}

func (s *Service) ByBooking(ctx context.Context, bookingID string) ([]Entry, error) {
	return s.repo.Filter(ctx, func(e Entry) bool { return e.BookingID == bookingID })
}

// ByDate returns the entries posted on a facility-local calendar day.
func (s *Service) ByDate(ctx context.Context, date string) ([]Entry, error) {
	return s.repo.Filter(ctx, func(e Entry) bool {
		return !e.Invalid && e.At.In(s.loc).Format(time.DateOnly) == date
	})
}

// Between returns entries with start <= at <= end.
func (s *Service) Between(ctx context.Context, start, end time.Time) ([]Entry, error) {
	return s.repo.Filter(ctx, func(e Entry) bool {
		return !e.Invalid && !e.At.Before(start) && !e.At.After(end)
	})
}

func (s *Service) Totals(ctx context.Context) (Totals, error) {
	entries, err := s.repo.All(ctx)

	if err != nil {
		return Totals{}, err
	}

	return SumTotals(entries), nil
}

func SumTotals(entries []Entry) Totals {
	totals := Totals{Cash: decimal.Zero, Transfer: decimal.Zero, Overall: decimal.Zero}

	for _, e := range entries {
		signed := e.Signed()
		totals.Overall = totals.Overall.Add(signed)

		switch e.Method {
		case MethodCash:
			totals.Cash = totals.Cash.Add(signed)
		case MethodTransfer:
			totals.Transfer = totals.Transfer.Add(signed)
		}
	}

	return totals
}

func (s *Service) DaySummary(ctx context.Context, date string) (DaySummary, error) {
	all, err := s.repo.All(ctx)

	if err != nil {
		return DaySummary{}, err
	}

	summary := DaySummary{
		Date:           date,
		Income:         decimal.Zero,
		IncomeCash:     decimal.Zero,
		IncomeTransfer: decimal.Zero,
		Withdrawals:    decimal.Zero,
		Deposits:       decimal.Zero,
		Balances:       decimal.Zero,
		Manual:         decimal.Zero,
		Drawer:         SumTotals(all),
	}

	for _, e := range all {
		if e.Invalid || e.At.In(s.loc).Format(time.DateOnly) != date {
			continue
		}

		if e.Direction == DirectionOutflow {
			summary.Withdrawals = summary.Withdrawals.Add(e.Amount)
			continue
		}

		summary.Income = summary.Income.Add(e.Amount)

		switch e.Method {
		case MethodCash:
			summary.IncomeCash = summary.IncomeCash.Add(e.Amount)
		case MethodTransfer:
			summary.IncomeTransfer = summary.IncomeTransfer.Add(e.Amount)
		}

		switch e.Classify() {
		case KindDeposit:
			summary.Deposits = summary.Deposits.Add(e.Amount)
		case KindBalance:
			summary.Balances = summary.Balances.Add(e.Amount)
		case KindManual:
			summary.Manual = summary.Manual.Add(e.Amount)
		}
	}

	return summary, nil
}

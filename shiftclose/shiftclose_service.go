package shiftclose

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/google/uuid"
)

type Ledger interface {
	List(ctx context.Context) ([]cash.Entry, error)
}

type Bookings interface {
	GetBookings(ctx context.Context) ([]booking.Booking, error)
}

type Courts interface {
	CourtName(id string) string
}

type Service struct {
	records  *store.Collection[Record]
	ledger   Ledger
	bookings Bookings
	courts   Courts
	clock    clock.Clock
	events   events.Publisher
	loc      *time.Location
	logger   *slog.Logger
}

func NewService(records *store.Collection[Record], ledger Ledger, bookings Bookings, courts Courts, clk clock.Clock, publisher events.Publisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		records:  records,
		ledger:   ledger,
		bookings: bookings,
		courts:   courts,
		clock:    clk,
		events:   publisher,
		loc:      loc,
		logger:   slog.Default().With("component", "shiftclose"),
	}
}

// Generate builds a close over the current ledger and bookings without
// archiving it.
func (s *Service) Generate(ctx context.Context, operator string, start, end time.Time) (Record, error) {
	operator = strings.TrimSpace(operator)

	if operator == "" {
		return Record{}, ErrMissingOperator
	}

	entries, err := s.ledger.List(ctx)

	if err != nil {
		return Record{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	bookings, err := s.bookings.GetBookings(ctx)

	if err != nil {
		return Record{}, fmt.Errorf("failed to read bookings: %w", err)
	}

	record := Build(operator, start, end, entries, bookings, s.courts.CourtName, s.loc)
	record.ID = uuid.NewString()
	record.CreatedAt = s.clock.Now()

	return record, nil
}

// Close generates and archives a close. A zero end closes at the current time.
func (s *Service) Close(ctx context.Context, operator string, start, end time.Time) (Record, error) {
	if end.IsZero() {
		end = s.clock.Now()
	}

	record, err := s.Generate(ctx, operator, start, end)

	if err != nil {
		return Record{}, err
	}

	if err := s.records.Upsert(ctx, record); err != nil {
		return Record{}, fmt.Errorf("failed to archive shift close: %w", err)
	}

	s.logger.Info("shift closed", "closeId", record.ID, "operator", record.Operator, "sales", record.SalesCount, "overall", record.Totals.Overall)
	s.events.Publish(events.Event{Type: events.CloseCreated, At: record.CreatedAt, Payload: record})

	return record, nil
}

// List returns archived closes, newest start first. Zero bounds are open and
// the operator filter is a case-insensitive substring.
func (s *Service) List(ctx context.Context, filter Filter) ([]Record, error) {
	operator := strings.ToLower(strings.TrimSpace(filter.Operator))

	records, err := s.records.Filter(ctx, func(r Record) bool {
		if !filter.From.IsZero() && r.Start.Before(filter.From) {
			return false
		}

		if !filter.To.IsZero() && r.Start.After(filter.To) {
			return false
		}

		return operator == "" || strings.Contains(strings.ToLower(r.Operator), operator)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift closes: %w", err)
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Start.UnixNano(), a.Start.UnixNano())
	})

	return records, nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	record, ok, err := s.records.Find(ctx, id)

	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch shift close with id %v: %w", id, err)
	}

	if !ok {
		return Record{}, ErrCloseNotFound
	}

	return record, nil
}

func (s *Service) Delete(ctx context.Context, ids ...string) (int, error) {
	n, err := s.records.Delete(ctx, ids...)

	if err != nil {
		return 0, fmt.Errorf("failed to delete shift closes: %w", err)
	}

	return n, nil
}

func (s *Service) Location() *time.Location {
	return s.loc
}

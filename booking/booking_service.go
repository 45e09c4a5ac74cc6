package booking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/catalog"
	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/google/uuid"
)

type BookingRepository interface {
	GetBookings(ctx context.Context) ([]Booking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	UpsertBooking(ctx context.Context, booking Booking) error
	DeleteBooking(ctx context.Context, id string) error
	GetBookingCountPerCourt(ctx context.Context, from, to string) ([]CourtBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context, from, to string) ([]WeekDayBookingCount, error)
}

type Ledger interface {
	PostInflow(ctx context.Context, in cash.Inflow) (*cash.Entry, error)
	Delete(ctx context.Context, ids ...string) (int, error)
	DeleteByBooking(ctx context.Context, bookingID string) (int, error)
}

type CourtCatalog interface {
	Court(id string) (catalog.Court, bool)
	CourtName(id string) string
}

// Saved is a persisted booking together with the ledger entries its save
// posted.
type Saved struct {
	Booking Booking      `json:"booking"`
	Entries []cash.Entry `json:"entries"`
}

type Service struct {
	repo   BookingRepository
	ledger Ledger
	courts CourtCatalog
	clock  clock.Clock
	events events.Publisher
	logger *slog.Logger

	// mu serializes check, post and save so two saves cannot both pass the
	// availability check for the same slot.
	mu sync.Mutex
}

func NewService(repo BookingRepository, ledger Ledger, courts CourtCatalog, clk clock.Clock, publisher events.Publisher) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		courts: courts,
		clock:  clk,
		events: publisher,
		logger: slog.Default().With("component", "booking"),
	}
}

func (s *Service) GetBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetBookings(ctx)
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

// FindBookingsByDate returns the day's bookings ordered by start time and court.
func (s *Service) FindBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	bookings, err := s.repo.GetBookingsByDate(ctx, date)

	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(bookings, func(a, b Booking) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.CourtID, b.CourtID))
	})

	return bookings, nil
}

// Save validates, checks availability, posts the reconciled ledger inflows and
// persists the booking. When persisting fails the inflows it posted are removed.
func (s *Service) Save(ctx context.Context, next Booking) (Saved, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, next)
}

func (s *Service) save(ctx context.Context, next Booking) (Saved, error) {
	if err := s.normalize(&next); err != nil {
		return Saved{}, err
	}

	var prev *Booking

	if next.ID == "" {
		next.ID = uuid.NewString()
	} else {
		existing, err := s.repo.GetBookingByID(ctx, next.ID)

		switch {
		case errors.Is(err, ErrBookingNotFound):
		case err != nil:
			return Saved{}, err
		default:
			prev = &existing
		}
	}

	if prev != nil {
		if prev.Method != cash.MethodPending && next.Method == cash.MethodPending {
			return Saved{}, ErrConfirmedToPending
		}

		next.CreatedAt = prev.CreatedAt

		if next.SeriesID == "" {
			next.SeriesID = prev.SeriesID
		}

		if next.DepositPostsToLedger == nil {
			next.DepositPostsToLedger = prev.DepositPostsToLedger
		}
	}

	if next.CreatedAt.IsZero() {
		next.CreatedAt = s.clock.Now()
	}

	next.Total = next.ComputeTotal()

	if !next.IsCancelled() {
		available, err := s.IsAvailable(ctx, next.CourtID, next.Date, next.Start, next.End, next.ID)

		if err != nil {
			return Saved{}, err
		}

		if !available {
			return Saved{}, fmt.Errorf("%w: %v %v %v-%v", ErrSlotUnavailable, s.courts.CourtName(next.CourtID), next.Date, next.Start, next.End)
		}
	}

	posted := []cash.Entry{}

	for _, inflow := range Reconcile(prev, next, s.courts.CourtName(next.CourtID)) {
		entry, err := s.ledger.PostInflow(ctx, inflow)

		if err != nil {
			s.compensate(ctx, next.ID, posted)
			return Saved{}, fmt.Errorf("failed to post booking payment: %w", err)
		}

		if entry != nil {
			posted = append(posted, *entry)
		}
	}

	if err := s.repo.UpsertBooking(ctx, next); err != nil {
		s.compensate(ctx, next.ID, posted)
		return Saved{}, err
	}

	s.events.Publish(events.Event{Type: events.BookingSaved, At: s.clock.Now(), Payload: next})

	return Saved{Booking: next, Entries: posted}, nil
}

func (s *Service) compensate(ctx context.Context, bookingID string, posted []cash.Entry) {
	if len(posted) == 0 {
		return
	}

	ids := make([]string, 0, len(posted))

	for _, entry := range posted {
		ids = append(ids, entry.ID)
	}

	if _, err := s.ledger.Delete(ctx, ids...); err != nil {
		s.logger.Error("failed to roll back ledger entries", "bookingId", bookingID, "entries", ids, "err", err)
		return
	}

	s.logger.Warn("rolled back ledger entries of unsaved booking", "bookingId", bookingID, "entries", ids)
}

func (s *Service) normalize(b *Booking) error {
	b.CourtID = strings.TrimSpace(b.CourtID)
	b.CustomerName = strings.TrimSpace(b.CustomerName)
	b.Comment = strings.TrimSpace(b.Comment)

	if _, ok := s.courts.Court(b.CourtID); !ok {
		return fmt.Errorf("%w: unknown court '%v'", ErrInvalidBooking, b.CourtID)
	}

	if b.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidBooking)
	}

	if _, err := time.Parse(time.DateOnly, b.Date); err != nil {
		return fmt.Errorf("%w: malformed date '%v'", ErrInvalidBooking, b.Date)
	}

	if _, _, err := parseInterval(b.Start, b.End); err != nil {
		return err
	}

	if !b.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method '%v'", ErrInvalidBooking, b.Method)
	}

	switch b.Status {
	case "":
		b.Status = StatusActive
	case StatusActive, StatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status '%v'", ErrInvalidBooking, b.Status)
	}

	if b.DepositMethod == "" {
		b.DepositMethod = cash.MethodCash
	}

	if b.DepositMethod != cash.MethodCash && b.DepositMethod != cash.MethodTransfer {
		return fmt.Errorf("%w: deposit method must be cash or transfer", ErrInvalidBooking)
	}

	if b.BasePrice.IsNegative() || b.Deposit.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", ErrInvalidBooking)
	}

	for _, addon := range b.Addons {
		if addon.Quantity <= 0 || addon.Price.IsNegative() {
			return fmt.Errorf("%w: invalid addon '%v'", ErrInvalidBooking, addon.Name)
		}
	}

	for _, item := range b.Items {
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: invalid item '%v'", ErrInvalidBooking, item.Description)
		}
	}

	if b.Addons == nil {
		b.Addons = []Addon{}
	}

	if b.Items == nil {
		b.Items = []Item{}
	}

	return nil
}

// Cancel frees the slot. Ledger entries already posted stay in the drawer.
func (s *Service) Cancel(ctx context.Context, id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.IsCancelled() {
		return booking, nil
	}

	booking.Status = StatusCancelled

	if err := s.repo.UpsertBooking(ctx, booking); err != nil {
		return Booking{}, err
	}

	s.events.Publish(events.Event{Type: events.BookingSaved, At: s.clock.Now(), Payload: booking})

	return booking, nil
}

// Delete removes the booking and every ledger entry that references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	removed, err := s.ledger.DeleteByBooking(ctx, booking.ID)

	if err != nil {
		return fmt.Errorf("failed to delete booking payments: %w", err)
	}

	if err := s.repo.DeleteBooking(ctx, booking.ID); err != nil {
		return err
	}

	s.logger.Info("booking deleted", "bookingId", booking.ID, "ledgerEntries", removed)
	s.events.Publish(events.Event{Type: events.BookingDeleted, At: s.clock.Now(), Payload: booking})

	return nil
}

func (s *Service) GetBookingCountPerCourt(ctx context.Context, from, to string) ([]CourtBookingCount, error) {
	return s.repo.GetBookingCountPerCourt(ctx, from, to)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context, from, to string) ([]WeekDayBookingCount, error) {
	return s.repo.GetBookingCountPerWeekDay(ctx, from, to)
}

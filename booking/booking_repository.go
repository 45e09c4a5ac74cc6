package booking

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/circulo-sport/courtdesk/store"
)

type Repository struct{ bookings *store.Collection[Booking] }

func NewRepository(bookings *store.Collection[Booking]) *Repository {
	return &Repository{bookings: bookings}
}

func (r *Repository) GetBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := r.bookings.All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingsByDate(ctx context.Context, date string) ([]Booking, error) {
	bookings, err := r.bookings.Filter(ctx, func(b Booking) bool { return b.Date == date })

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for date '%v': %w", date, err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	booking, ok, err := r.bookings.Find(ctx, id)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	if !ok {
		return Booking{}, ErrBookingNotFound
	}

	return booking, nil
}

func (r *Repository) UpsertBooking(ctx context.Context, booking Booking) error {
	if err := r.bookings.Upsert(ctx, booking); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	n, err := r.bookings.Delete(ctx, id)

	if err != nil {
		return fmt.Errorf("failed to delete booking '%v': %w", id, err)
	}

	if n == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetBookingCountPerCourt counts active bookings with from <= date <= to.
// Empty bounds are open.
func (r *Repository) GetBookingCountPerCourt(ctx context.Context, from, to string) ([]CourtBookingCount, error) {
	bookings, err := r.bookings.Filter(ctx, inPeriod(from, to))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per court: %w", err)
	}

	counts := map[string]int{}

	for _, booking := range bookings {
		counts[booking.CourtID]++
	}

	stats := []CourtBookingCount{}

	for court, count := range counts {
		stats = append(stats, CourtBookingCount{CourtID: court, Count: count})
	}

	slices.SortFunc(stats, func(a, b CourtBookingCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.CourtID, b.CourtID))
	})

	return stats, nil
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context, from, to string) ([]WeekDayBookingCount, error) {
	bookings, err := r.bookings.Filter(ctx, inPeriod(from, to))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per week day: %w", err)
	}

	counts := map[time.Weekday]int{}

	for _, booking := range bookings {
		day, err := time.Parse(time.DateOnly, booking.Date)

		if err != nil {
			continue
		}

		counts[day.Weekday()]++
	}

	stats := []WeekDayBookingCount{}

	for day, count := range counts {
		stats = append(stats, WeekDayBookingCount{WeekDay: day.String(), Count: count})
	}

	slices.SortFunc(stats, func(a, b WeekDayBookingCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.WeekDay, b.WeekDay))
	})

	return stats, nil
}

func inPeriod(from, to string) func(Booking) bool {
	return func(b Booking) bool {
		if b.IsCancelled() {
			return false
		}

		if from != "" && b.Date < from {
			return false
		}

		if to != "" && b.Date > to {
			return false
		}

		return true
	}
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/circulo-sport/courtdesk/cash"
	"github.com/google/uuid"
)

const maxSeriesWeeks = 52

type Series struct {
	SeriesID  string       `json:"seriesId"`
	Bookings  []Booking    `json:"bookings"`
	Entries   []cash.Entry `json:"entries"`
	Conflicts []string     `json:"conflicts"`
}

// SeriesDates returns the sibling dates following base, one per week. With
// weeks > 0 the series has that many occurrences including base; otherwise
// it runs to the end of base's month.
func SeriesDates(base string, weeks int) ([]string, error) {
	day, err := time.Parse(time.DateOnly, base)

	if err != nil {
		return nil, fmt.Errorf("%w: malformed date '%v'", ErrInvalidBooking, base)
	}

	if weeks > maxSeriesWeeks {
		return nil, fmt.Errorf("%w: a series cannot exceed %v weeks", ErrInvalidBooking, maxSeriesWeeks)
	}

	dates := []string{}

	for next := day.AddDate(0, 0, 7); ; next = next.AddDate(0, 0, 7) {
		if weeks > 0 && len(dates) >= weeks-1 {
			break
		}

		if weeks <= 0 && next.Month() != day.Month() {
			break
		}

		dates = append(dates, next.Format(time.DateOnly))
	}

	return dates, nil
}

// SaveWeekly saves a new base booking and its weekly siblings. A conflict on
// the base rejects the whole series; sibling conflicts are skipped and listed.
// Siblings display the base deposit but never post it.
func (s *Service) SaveWeekly(ctx context.Context, base Booking, weeks int) (Series, error) {
	dates, err := SeriesDates(base.Date, weeks)

	if err != nil {
		return Series{}, err
	}

	if base.ID != "" {
		if _, err := s.repo.GetBookingByID(ctx, base.ID); err == nil {
			return Series{}, fmt.Errorf("%w: a series starts from a new booking", ErrInvalidBooking)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base.SeriesID = uuid.NewString()
	first, err := s.save(ctx, base)

	if err != nil {
		return Series{}, err
	}

	series := Series{
		SeriesID:  first.Booking.SeriesID,
		Bookings:  []Booking{first.Booking},
		Entries:   first.Entries,
		Conflicts: []string{},
	}

	for _, date := range dates {
		sibling := first.Booking
		sibling.ID = ""
		sibling.Date = date
		sibling.CreatedAt = time.Time{}
		sibling.DepositPostsToLedger = boolPtr(false)

		saved, err := s.save(ctx, sibling)

		if errors.Is(err, ErrSlotUnavailable) {
			series.Conflicts = append(series.Conflicts, date)
			continue
		}

		if err != nil {
			return series, fmt.Errorf("failed to save series occurrence on %v: %w", date, err)
		}

		series.Bookings = append(series.Bookings, saved.Booking)
		series.Entries = append(series.Entries, saved.Entries...)
	}

	if len(series.Conflicts) > 0 {
		s.logger.Info("weekly series saved with conflicts", "seriesId", series.SeriesID, "conflicts", series.Conflicts)
	}

	return series, nil
}

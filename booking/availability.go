package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseMinutes converts "HH:MM" to minutes since midnight. "24:00" is accepted
// as an end of day.
func ParseMinutes(hhmm string) (int, error) {
	hours, minutes, ok := strings.Cut(strings.TrimSpace(hhmm), ":")

	if !ok || len(hours) == 0 || len(hours) > 2 || len(minutes) != 2 {
		return 0, fmt.Errorf("%w: malformed time '%v'", ErrInvalidBooking, hhmm)
	}

	h, errH := strconv.ParseUint(hours, 10, 8)
	m, errM := strconv.ParseUint(minutes, 10, 8)

	if errH != nil || errM != nil || m > 59 {
		return 0, fmt.Errorf("%w: malformed time '%v'", ErrInvalidBooking, hhmm)
	}

	total := int(h)*60 + int(m)

	if total > minutesPerDay {
		return 0, fmt.Errorf("%w: time out of range '%v'", ErrInvalidBooking, hhmm)
	}

	return total, nil
}

func parseInterval(start, end string) (int, int, error) {
	s, err := ParseMinutes(start)

	if err != nil {
		return 0, 0, err
	}

	e, err := ParseMinutes(end)

	if err != nil {
		return 0, 0, err
	}

	if e <= s {
		return 0, 0, fmt.Errorf("%w: end '%v' must be after start '%v'", ErrInvalidBooking, end, start)
	}

	return s, e, nil
}

// Overlaps applies the half-open rule: touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// IsAvailable reports whether no active booking on the same court and date
// overlaps the requested interval. excludeID skips the booking being edited.
func (s *Service) IsAvailable(ctx context.Context, courtID, date, start, end, excludeID string) (bool, error) {
	reqStart, reqEnd, err := parseInterval(start, end)

	if err != nil {
		return false, err
	}

	conflicts, err := s.conflicts(ctx, courtID, date, reqStart, reqEnd, excludeID)

	if err != nil {
		return false, err
	}

	return len(conflicts) == 0, nil
}

func (s *Service) conflicts(ctx context.Context, courtID, date string, reqStart, reqEnd int, excludeID string) ([]Booking, error) {
	bookings, err := s.repo.GetBookingsByDate(ctx, date)

	if err != nil {
		return nil, err
	}

	blocking := []Booking{}

	for _, existing := range bookings {
		if existing.CourtID != courtID || existing.IsCancelled() {
			continue
		}

		if excludeID != "" && existing.ID == excludeID {
			continue
		}

		exStart, exEnd, err := parseInterval(existing.Start, existing.End)

		if err != nil {
			s.logger.Warn("ignoring booking with malformed interval", "bookingId", existing.ID, "err", err)
			continue
		}

		if Overlaps(reqStart, reqEnd, exStart, exEnd) {
			blocking = append(blocking, existing)
		}
	}

	return blocking, nil
}

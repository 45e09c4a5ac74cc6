package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrSlotUnavailable = errors.New("the selected slot is already taken")

var ErrConfirmedToPending = errors.New("a confirmed booking cannot go back to pending")

var ErrInvalidBooking = errors.New("invalid booking")

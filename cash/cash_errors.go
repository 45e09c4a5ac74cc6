package cash

import "errors"

var ErrEntryNotFound = errors.New("ledger entry not found")

var ErrInvalidAmount = errors.New("amount must be greater than zero")

var ErrInsufficientCash = errors.New("amount exceeds available cash")

var ErrInvalidMethod = errors.New("invalid payment method")

var ErrMissingConcept = errors.New("concept is required")

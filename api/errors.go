package api

import (
	"errors"
	"net/http"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/catalog"
	"github.com/circulo-sport/courtdesk/customer"
	"github.com/circulo-sport/courtdesk/export"
	"github.com/circulo-sport/courtdesk/shiftclose"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, cash.ErrEntryNotFound),
		errors.Is(err, catalog.ErrExtraNotFound),
		errors.Is(err, shiftclose.ErrCloseNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrConfirmedToPending):
		return http.StatusConflict
	case errors.Is(err, cash.ErrInsufficientCash):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrInvalidBooking),
		errors.Is(err, cash.ErrInvalidAmount),
		errors.Is(err, cash.ErrInvalidMethod),
		errors.Is(err, cash.ErrMissingConcept),
		errors.Is(err, customer.ErrInvalidCustomer),
		errors.Is(err, catalog.ErrInvalidExtra),
		errors.Is(err, shiftclose.ErrMissingOperator),
		errors.Is(err, export.ErrUnrecognizedBackup),
		errors.Is(err, export.ErrUnsupportedVersion),
		errors.Is(err, export.ErrInvalidRange),
		errors.Is(err, export.ErrInvalidMode),
		errors.Is(err, export.ErrInvalidSettings):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError records err on the context and answers with its mapped status.
// Unknown errors get the fallback message instead of their own text.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	status := statusFor(err)

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error, message string) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

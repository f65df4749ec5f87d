// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotify/services/booking"
	"quotify/services/catalog"
	"quotify/services/quote"
	"quotify/utils"
)

// respondError maps service errors onto HTTP statuses. Conflicts carry
// the colliding intervals so clients can offer alternatives.
func respondError(c *gin.Context, err error) {
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var validation *catalog.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}
	var inactive *catalog.InactiveEntityError
	if errors.As(err, &inactive) {
		c.JSON(http.StatusConflict, gin.H{"error": inactive.Error()})
		return
	}
	var selection *quote.SelectionViolationError
	if errors.As(err, &selection) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": selection.Error()})
		return
	}
	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error(), "conflicts": conflictPayload(conflict)})
		return
	}
	var availability *booking.AvailabilityError
	if errors.As(err, &availability) {
		c.JSON(http.StatusConflict, gin.H{"error": availability.Error()})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}

func conflictPayload(conflict *booking.ConflictError) []gin.H {
	out := make([]gin.H, len(conflict.Bookings))
	for i, b := range conflict.Bookings {
		out[i] = gin.H{
			"bookingId": b.BookingID,
			"start":     clockOf(b.Start),
			"end":       clockOf(b.End),
			"status":    b.Status,
		}
	}
	return out
}

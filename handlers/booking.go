// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotify/models"
	"quotify/services/booking"
	"quotify/utils"
)

// BookingHandler exposes the reservation lifecycle and availability
// queries. Times cross the wire as "HH:MM" strings and are converted to
// minutes at this boundary.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func clockOf(mins int) string {
	return utils.FormatClock(mins)
}

type createBookingRequest struct {
	ItemID   string                  `json:"itemId" binding:"required"`
	Date     string                  `json:"date" binding:"required"`
	Start    string                  `json:"start" binding:"required"`
	End      string                  `json:"end"` // empty means default duration
	Quantity int                     `json:"quantity"`
	Addons   []models.AddonSelection `json:"addons"`
}

type updateBookingRequest struct {
	Date     *string                  `json:"date"`
	Start    *string                  `json:"start"`
	End      *string                  `json:"end"`
	Quantity *int                     `json:"quantity"`
	Addons   *[]models.AddonSelection `json:"addons"`
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	start, err := utils.ParseClock(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start: " + err.Error()})
		return
	}
	end := 0
	if req.End != "" {
		if end, err = utils.ParseClock(req.End); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end: " + err.Error()})
			return
		}
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		ItemID:   req.ItemID,
		Date:     req.Date,
		Start:    start,
		End:      end,
		Quantity: req.Quantity,
		Addons:   req.Addons,
	})
	if err != nil {
		logger.Warn("Booking rejected", zap.String("itemID", req.ItemID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler handles GET /bookings?itemId=...&date=...
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	itemID := c.Query("itemId")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId query parameter is required"})
		return
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), itemID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler handles PUT /bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	update := booking.UpdateBookingRequest{
		Date:     req.Date,
		Quantity: req.Quantity,
		Addons:   req.Addons,
	}
	if req.Start != nil {
		start, err := utils.ParseClock(*req.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start: " + err.Error()})
			return
		}
		update.Start = &start
	}
	if req.End != nil {
		end, err := utils.ParseClock(*req.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end: " + err.Error()})
			return
		}
		update.End = &end
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ConfirmBookingHandler handles PUT /bookings/:id/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	b, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AvailabilityHandler handles GET /items/:id/availability?date=...,
// listing each declared slot with its remaining capacity. With start and
// end query params it instead answers whether that interval could be
// booked right now.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	if c.Query("start") != "" || c.Query("end") != "" {
		h.checkInterval(c, date)
		return
	}
	slots, err := h.Service.AvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// checkInterval is the pre-flight form of the availability query: within
// declared hours and free of overlapping bookings. Advisory only; the
// booking transaction re-checks on write.
func (h *BookingHandler) checkInterval(c *gin.Context, date string) {
	itemID := c.Param("id")
	start, err := utils.ParseClock(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start: " + err.Error()})
		return
	}
	end, err := utils.ParseClock(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.CheckAvailability(ctx, itemID, date, start, end); err != nil {
		var availability *booking.AvailabilityError
		if errors.As(err, &availability) {
			c.JSON(http.StatusOK, gin.H{"date": date, "available": false, "reason": availability.Reason})
			return
		}
		respondError(c, err)
		return
	}

	conflicts, err := h.Service.FindConflicts(ctx, itemID, date, start, end, "")
	if err != nil {
		respondError(c, err)
		return
	}
	if len(conflicts) > 0 {
		c.JSON(http.StatusOK, gin.H{"date": date, "available": false, "reason": "interval already booked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "available": true})
}

package ginserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	bookingapp "stayfront/internal/app/handlers/booking"
)

type BookingHandler struct {
	CheckRange        *bookingapp.CheckRangeHandler
	QuoteStay         *bookingapp.QuoteHandler
	ProposeBooking    *bookingapp.ProposeBookingHandler
	ListGuestBookings *bookingapp.ListGuestBookingsHandler
}

type checkRangeRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
}

func (h BookingHandler) Check(c *gin.Context) {
	var req checkRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.CheckRange.Handle(c.Request.Context(), bookingapp.CheckRangeQuery{
		ListingID: req.ListingID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) Quote(c *gin.Context) {
	nights, _ := strconv.Atoi(c.Query("nights"))
	guests, _ := strconv.Atoi(c.Query("guests"))
	result, err := h.QuoteStay.Handle(c.Request.Context(), bookingapp.QuoteQuery{
		ListingID: c.Param("id"),
		Nights:    nights,
		Guests:    guests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type createBookingRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	GuestID   string `json:"guest_id" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	Guests    int    `json:"guests"`
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.ProposeBooking.Handle(c.Request.Context(), bookingapp.ProposeBookingCommand{
		ListingID: req.ListingID,
		GuestID:   req.GuestID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Check.Valid {
		c.JSON(http.StatusUnprocessableEntity, result.Check)
		return
	}
	c.JSON(http.StatusCreated, result.Booking)
}

func (h BookingHandler) GuestBookings(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}
	result, err := h.ListGuestBookings.Handle(c.Request.Context(), bookingapp.ListGuestBookingsQuery{GuestID: guestID})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ BookingHTTP = BookingHandler{}

package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	domainlistings "stayfront/internal/domain/listings"
	domainreservation "stayfront/internal/domain/reservation"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainlistings.ErrListingNotFound),
		errors.Is(err, domainreservation.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainreservation.ErrInvalidGuests),
		errors.Is(err, domainreservation.ErrGuestRequired),
		errors.Is(err, domainreservation.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

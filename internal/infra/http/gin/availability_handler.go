package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	availabilityapp "stayfront/internal/app/handlers/availability"
)

type AvailabilityHandler struct {
	GetCalendar *availabilityapp.GetCalendarHandler
}

func (h AvailabilityHandler) Calendar(c *gin.Context) {
	query := availabilityapp.GetCalendarQuery{ListingID: c.Param("id")}
	result, err := h.GetCalendar.Handle(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ AvailabilityHTTP = AvailabilityHandler{}

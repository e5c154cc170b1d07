package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	listingapp "stayfront/internal/app/handlers/listings"
)

type ListingHandler struct {
	GetOverview *listingapp.GetOverviewHandler
}

func (h ListingHandler) Overview(c *gin.Context) {
	result, err := h.GetOverview.Handle(c.Request.Context(), listingapp.GetOverviewQuery{ListingID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ ListingHTTP = ListingHandler{}

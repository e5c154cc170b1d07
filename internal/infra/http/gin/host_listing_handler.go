package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	listingapp "stayfront/internal/app/handlers/listings"
)

type HostListingHandler struct {
	UpdateBlackoutDates *listingapp.UpdateBlackoutsHandler
	UploadListingPhoto  *listingapp.UploadPhotoHandler
}

type updateBlackoutsRequest struct {
	Dates []string `json:"dates"`
}

func (h HostListingHandler) UpdateBlackouts(c *gin.Context) {
	var req updateBlackoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.UpdateBlackoutDates.Handle(c.Request.Context(), listingapp.UpdateBlackoutsCommand{
		ListingID: c.Param("id"),
		Dates:     req.Dates,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h HostListingHandler) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	result, err := h.UploadListingPhoto.Handle(c.Request.Context(), listingapp.UploadPhotoCommand{
		ListingID:   c.Param("id"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

var _ HostListingHTTP = HostListingHandler{}

package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayfront/internal/infra/config"
	"stayfront/internal/infra/obs"
)

type AvailabilityHTTP interface {
	Calendar(c *gin.Context)
}

type BookingHTTP interface {
	Check(c *gin.Context)
	Create(c *gin.Context)
	Quote(c *gin.Context)
	GuestBookings(c *gin.Context)
}

type ListingHTTP interface {
	Overview(c *gin.Context)
}

type HostListingHTTP interface {
	UpdateBlackouts(c *gin.Context)
	UploadPhoto(c *gin.Context)
}

type Handlers struct {
	Availability AvailabilityHTTP
	Booking      BookingHTTP
	Listing      ListingHTTP
	HostListing  HostListingHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Listing != nil {
		api.GET("/listings/:id/overview", h.Listing.Overview)
	}
	if h.Availability != nil {
		api.GET("/listings/:id/calendar", h.Availability.Calendar)
	}
	if h.Booking != nil {
		api.GET("/listings/:id/quote", h.Booking.Quote)
		api.POST("/bookings/check", h.Booking.Check)
		api.POST("/bookings", h.Booking.Create)
		api.GET("/me/bookings", h.Booking.GuestBookings)
	}
	if h.HostListing != nil {
		hostGroup := api.Group("/host/listings")
		hostGroup.PUT("/:id/blackouts", h.HostListing.UpdateBlackouts)
		hostGroup.POST("/:id/photos", h.HostListing.UploadPhoto)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}

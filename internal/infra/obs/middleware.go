package obs

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Middleware struct {
	Logger *slog.Logger
}

// RequestID tags every request, reusing an incoming X-Request-ID so a
// booking flow can be traced across the front end and this service.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// LoggerMiddleware logs one line per request. Listing routes carry the
// listing id so calendar and booking traffic can be filtered per listing;
// server-side failures log at error level.
func (m Middleware) LoggerMiddleware() gin.HandlerFunc {
	log := m.Logger
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if log == nil {
			return
		}
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, "listing_id", id)
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("http", attrs...)
			return
		}
		log.Info("http", attrs...)
	}
}

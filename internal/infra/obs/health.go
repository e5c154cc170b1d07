package obs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandlers reports process liveness and storage readiness. Backend
// names the repository wiring in use (mongo or memory) so an operator can
// tell a degraded dev deployment from a broken production one.
type HealthHandlers struct {
	Ready   func() error
	Backend string
}

func (h HealthHandlers) Livez(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h HealthHandlers) Readyz(c *gin.Context) {
	if h.Ready != nil {
		if err := h.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"backend": h.Backend,
				"error":   err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "backend": h.Backend})
}

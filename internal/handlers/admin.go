package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Refresher re-runs the collection pass. Satisfied by collector.Collector.
type Refresher interface {
	Refresh(ctx context.Context, season int) error
}

// RefreshHandler re-collects the artifacts on demand. The pass is synchronous
// and can take a while against the real upstreams, hence the long timeout.
func RefreshHandler(r Refresher, season int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Minute)
		defer cancel()

		start := time.Now()
		if err := r.Refresh(ctx, season); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "collection refreshed",
			"season":   season,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		})
	}
}

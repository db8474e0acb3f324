package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-history/internal/storage"
)

const healthPingTimeout = 2 * time.Second

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	err := storage.Ping(ctx, h.db)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to ping database")
		abort(c, newStatusTextError(http.StatusServiceUnavailable))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

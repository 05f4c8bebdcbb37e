package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheckHandler(c *gin.Context) {
	s := h.Store.Get()
	if s == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "failure", "details": "record store not built"})
		return
	}

	resp := gin.H{
		"status":      "ok",
		"built_at":    s.BuiltAt,
		"connections": len(s.Connections),
		"posts":       len(s.Posts),
	}

	if h.DBConn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.DBConn.PingContext(ctx); err != nil {
			resp["archive"] = "down: " + err.Error()
		} else {
			resp["archive"] = "ok"
		}
	}

	c.JSON(http.StatusOK, resp)
}

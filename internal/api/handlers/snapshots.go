package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SnapshotsHandler lists archived pipeline runs. 404 when the archive is not
// configured.
func (h *Handler) SnapshotsHandler(c *gin.Context) {
	if h.Config.DBInitErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.Config.DBInitErr.Error()})
		return
	}
	if h.Archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	snapshots, err := h.Archive.ListSnapshots(c.Request.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("listing snapshots")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// ReloadHandler triggers an immediate pipeline rebuild.
func (h *Handler) ReloadHandler(c *gin.Context) {
	if h.Worker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reload worker not configured"})
		return
	}
	h.Worker.ReloadOnce()
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"status":      "reloaded",
		"built_at":    s.BuiltAt,
		"connections": len(s.Connections),
		"posts":       len(s.Posts),
	})
}

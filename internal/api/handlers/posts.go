package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pavelaverin/linksight/internal/query"
)

// PostsHandler answers filtered post queries. Supported params: type, year,
// days, q, limit, sort.
func (h *Handler) PostsHandler(c *gin.Context) {
	params, err := query.FromValues(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := h.Store.Get()
	res, err := query.Posts(s.Posts, params, h.Config.DefaultLimit, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records":   res.Records,
		"total":     res.Total,
		"truncated": res.Truncated(),
	})
}

// ConversationsHandler lists message threads, most recently active first.
func (h *Handler) ConversationsHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"records": s.Conversations,
		"total":   len(s.Conversations),
	})
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pavelaverin/linksight/internal/aggregate"
)

func (h *Handler) OverviewHandler(c *gin.Context) {
	s := h.Store.Get()
	ov := aggregate.Summarize(s.Connections, s.Posts, s.Comments, s.Reactions,
		time.Now(), h.Config.DormancyDays, h.Config.ClusterThreshold)
	c.JSON(http.StatusOK, gin.H{
		"stats":    ov,
		"profile":  s.Profile,
		"built_at": s.BuiltAt,
	})
}

func (h *Handler) GrowthHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"monthly": aggregate.Growth(s.Connections),
		"yearly":  aggregate.ByYear(s.Connections),
	})
}

func (h *Handler) CompaniesHandler(c *gin.Context) {
	n := h.Config.TopCompaniesAPI
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{"companies": aggregate.TopCompanies(s.Connections, n)})
}

func (h *Handler) SeniorityHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{"distribution": aggregate.SeniorityDistribution(s.Connections)})
}

func (h *Handler) PositionsHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{"positions": aggregate.TopPositions(s.Connections, 20)})
}

func (h *Handler) ClustersHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"threshold": h.Config.ClusterThreshold,
		"clusters":  aggregate.Clusters(s.Connections, h.Config.ClusterThreshold),
	})
}

func (h *Handler) DormantHandler(c *gin.Context) {
	s := h.Store.Get()
	dormant := aggregate.Dormant(s.Connections, time.Now(), h.Config.DormancyDays)
	total := len(dormant)
	if len(dormant) > h.Config.DefaultLimit {
		dormant = dormant[:h.Config.DefaultLimit]
	}
	c.JSON(http.StatusOK, gin.H{
		"records":     dormant,
		"total":       total,
		"truncated":   total > len(dormant),
		"window_days": h.Config.DormancyDays,
	})
}

func (h *Handler) ActivityHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"monthly": aggregate.Activity(s.Posts, s.Comments, s.Reactions),
		"by_day":  aggregate.PostsByWeekday(s.Posts),
		"by_hour": aggregate.PostsByHour(s.Posts),
	})
}

func (h *Handler) PostStatsHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{
		"types":       aggregate.PostTypes(s.Posts),
		"monthly":     aggregate.PostsPerMonth(s.Posts),
		"word_counts": aggregate.WordCounts(s.Posts),
		"avg_words":   aggregate.AverageWordCount(s.Posts),
	})
}

func (h *Handler) ReactionsHandler(c *gin.Context) {
	s := h.Store.Get()
	c.JSON(http.StatusOK, gin.H{"types": aggregate.ReactionTypes(s.Reactions)})
}

package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pavelaverin/linksight/internal/archive"
	"github.com/pavelaverin/linksight/internal/config"
	"github.com/pavelaverin/linksight/internal/middleware"
	"github.com/pavelaverin/linksight/internal/store"
	"github.com/pavelaverin/linksight/internal/worker"
)

type Handler struct {
	Store   *store.Holder
	Config  *config.AppConfig
	DBConn  *sql.DB
	Archive *archive.DB
	Worker  *worker.Worker
}

func NewHandler(holder *store.Holder, cfg *config.AppConfig, dbConn *sql.DB, arch *archive.DB, w *worker.Worker) *Handler {
	return &Handler{
		Store:   holder,
		Config:  cfg,
		DBConn:  dbConn,
		Archive: arch,
		Worker:  w,
	}
}

// Router wires every route. The API serves plain structured data; rendering
// is the consumer's job.
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheckHandler)
		api.GET("/overview", h.OverviewHandler)
		api.GET("/connections", h.ConnectionsHandler)
		api.GET("/connections/filters", h.ConnectionFiltersHandler)
		api.GET("/posts", h.PostsHandler)
		api.GET("/conversations", h.ConversationsHandler)

		api.GET("/stats/growth", h.GrowthHandler)
		api.GET("/stats/companies", h.CompaniesHandler)
		api.GET("/stats/seniority", h.SeniorityHandler)
		api.GET("/stats/positions", h.PositionsHandler)
		api.GET("/stats/clusters", h.ClustersHandler)
		api.GET("/stats/dormant", h.DormantHandler)
		api.GET("/stats/activity", h.ActivityHandler)
		api.GET("/stats/posts", h.PostStatsHandler)
		api.GET("/stats/reactions", h.ReactionsHandler)

		api.GET("/snapshots", h.SnapshotsHandler)
		api.POST("/reload", h.ReloadHandler)
	}

	return r
}

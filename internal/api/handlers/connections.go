package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/aggregate"
	"github.com/pavelaverin/linksight/internal/models"
	"github.com/pavelaverin/linksight/internal/query"
)

// ConnectionsHandler answers filtered connection queries. Supported params:
// seniority, company, position, year, days, q, limit, sort.
func (h *Handler) ConnectionsHandler(c *gin.Context) {
	params, err := query.FromValues(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := h.Store.Get()
	res, err := query.Connections(s.Connections, params, h.Config.DefaultLimit, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"total":    res.Total,
		"returned": len(res.Records),
	}).Debug("connections query")

	c.JSON(http.StatusOK, gin.H{
		"records":   res.Records,
		"total":     res.Total,
		"truncated": res.Truncated(),
	})
}

// ConnectionFiltersHandler supplies the filter dropdown options: the closed
// seniority set, the most connected companies, and the connection years.
func (h *Handler) ConnectionFiltersHandler(c *gin.Context) {
	s := h.Store.Get()

	companies := aggregate.TopCompanies(s.Connections, h.Config.TopCompaniesMax)
	companyNames := make([]string, len(companies))
	for i, cc := range companies {
		companyNames[i] = cc.Company
	}

	years := aggregate.ByYear(s.Connections)
	yearValues := make([]int, len(years))
	for i, y := range years {
		yearValues[i] = y.Year
	}

	c.JSON(http.StatusOK, gin.H{
		"seniorities": models.SeniorityOrder,
		"companies":   companyNames,
		"years":       yearValues,
	})
}

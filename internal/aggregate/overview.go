package aggregate

import (
	"strings"
	"time"

	"github.com/pavelaverin/linksight/internal/models"
)

// Overview is the headline stats block of the dashboard.
type Overview struct {
	TotalConnections  int    `json:"total_connections"`
	UniqueCompanies   int    `json:"unique_companies"`
	UniquePositions   int    `json:"unique_positions"`
	TotalPosts        int    `json:"total_posts"`
	TotalComments     int    `json:"total_comments"`
	TotalReactions    int    `json:"total_reactions"`
	SeniorConnections int    `json:"senior_connections"`
	DormantCount      int    `json:"dormant_connections"`
	ClusterCount      int    `json:"clusters_count"`
	Earliest          string `json:"earliest"`
	Latest            string `json:"latest"`
}

// seniorLevels are the levels counted as "senior network" on the overview.
var seniorLevels = map[models.Seniority]bool{
	models.SeniorityCLevel:   true,
	models.SeniorityVP:       true,
	models.SeniorityDirector: true,
	models.SeniorityHeadOf:   true,
}

// Summarize computes the overview block. Dormancy and clusters are
// recomputed against now on every call, never cached.
func Summarize(conns []models.Connection, posts []models.Post, comments []models.Comment,
	reactions []models.Reaction, now time.Time, dormancyDays, clusterThreshold int) Overview {

	ov := Overview{
		TotalConnections: len(conns),
		TotalPosts:       len(posts),
		TotalComments:    len(comments),
		TotalReactions:   len(reactions),
		Earliest:         "N/A",
		Latest:           "N/A",
	}

	companies := make(map[string]bool)
	positions := make(map[string]bool)
	cutoff := DormantCutoff(now, dormancyDays)
	var earliest, latest time.Time
	for i := range conns {
		c := &conns[i]
		if name := strings.TrimSpace(c.Company); name != "" {
			companies[strings.ToLower(name)] = true
		}
		if pos := strings.TrimSpace(c.Position); pos != "" {
			positions[pos] = true
		}
		if seniorLevels[c.Seniority] {
			ov.SeniorConnections++
		}
		if !c.HasDate() {
			continue
		}
		if c.ConnectedOn.Before(cutoff) {
			ov.DormantCount++
		}
		if earliest.IsZero() || c.ConnectedOn.Before(earliest) {
			earliest = c.ConnectedOn
		}
		if latest.IsZero() || c.ConnectedOn.After(latest) {
			latest = c.ConnectedOn
		}
	}
	ov.UniqueCompanies = len(companies)
	ov.UniquePositions = len(positions)
	ov.ClusterCount = len(Clusters(conns, clusterThreshold))

	if !earliest.IsZero() {
		ov.Earliest = earliest.Format("Jan 2006")
		ov.Latest = latest.Format("Jan 2006")
	}
	return ov
}

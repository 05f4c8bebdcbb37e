package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/pavelaverin/linksight/internal/models"
	"github.com/pavelaverin/linksight/internal/temporal"
)

// GrowthSeries is the monthly and cumulative connection count, gap-free from
// the first to the last connection month.
type GrowthSeries struct {
	Labels     []string `json:"labels"`
	New        []int    `json:"new"`
	Cumulative []int    `json:"cumulative"`
}

// Growth computes the network growth series. Connections without a date are
// skipped. An empty input yields empty slices, not nil (keeps JSON stable).
func Growth(conns []models.Connection) GrowthSeries {
	series := GrowthSeries{Labels: []string{}, New: []int{}, Cumulative: []int{}}

	perMonth := make(map[string]int)
	var first, last time.Time
	for i := range conns {
		c := &conns[i]
		if !c.HasDate() {
			continue
		}
		perMonth[temporal.MonthKey(c.ConnectedOn)]++
		if first.IsZero() || c.ConnectedOn.Before(first) {
			first = c.ConnectedOn
		}
		if last.IsZero() || c.ConnectedOn.After(last) {
			last = c.ConnectedOn
		}
	}

	running := 0
	for _, month := range temporal.MonthRange(first, last) {
		running += perMonth[month]
		series.Labels = append(series.Labels, month)
		series.New = append(series.New, perMonth[month])
		series.Cumulative = append(series.Cumulative, running)
	}
	return series
}

// CompanyCount is one row of the top-companies ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// TopCompanies groups connections by case-normalized company name, excluding
// empty companies, and returns the top n by count (ties alphabetical).
// Display casing is the first variant seen in the input.
func TopCompanies(conns []models.Connection, n int) []CompanyCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for i := range conns {
		name := strings.TrimSpace(conns[i].Company)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, seen := display[key]; !seen {
			display[key] = name
		}
		counts[key]++
	}

	ranked := make([]CompanyCount, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, CompanyCount{Company: display[key], Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Company < ranked[j].Company
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SeniorityCount is one row of the seniority distribution.
type SeniorityCount struct {
	Level models.Seniority `json:"level"`
	Count int              `json:"count"`
}

// SeniorityDistribution counts connections per seniority level across the
// full closed set; zero-count levels are present.
func SeniorityDistribution(conns []models.Connection) []SeniorityCount {
	counts := make(map[models.Seniority]int)
	for i := range conns {
		counts[conns[i].Seniority]++
	}
	dist := make([]SeniorityCount, 0, len(models.SeniorityOrder))
	for _, level := range models.SeniorityOrder {
		dist = append(dist, SeniorityCount{Level: level, Count: counts[level]})
	}
	return dist
}

// Clusters returns companies with at least threshold connections, count
// descending (ties alphabetical), each with its member names.
func Clusters(conns []models.Connection, threshold int) []models.Cluster {
	if threshold <= 0 {
		threshold = 5
	}
	members := make(map[string][]string)
	display := make(map[string]string)
	for i := range conns {
		name := strings.TrimSpace(conns[i].Company)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, seen := display[key]; !seen {
			display[key] = name
		}
		members[key] = append(members[key], conns[i].FullName)
	}

	clusters := make([]models.Cluster, 0)
	for key, names := range members {
		if len(names) < threshold {
			continue
		}
		clusters = append(clusters, models.Cluster{
			Company: display[key],
			Count:   len(names),
			Members: names,
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Company < clusters[j].Company
	})
	return clusters
}

// DormantCutoff converts the dormancy window into the point-in-time cutoff
// for this run.
func DormantCutoff(now time.Time, windowDays int) time.Time {
	if windowDays <= 0 {
		windowDays = 730
	}
	return now.AddDate(0, 0, -windowDays)
}

// Dormant returns connections whose connected-on date is older than the
// window, oldest first. Dateless connections are never dormant; absence of
// a date is not evidence of inactivity.
func Dormant(conns []models.Connection, now time.Time, windowDays int) []models.Connection {
	cutoff := DormantCutoff(now, windowDays)
	dormant := make([]models.Connection, 0)
	for i := range conns {
		if conns[i].HasDate() && conns[i].ConnectedOn.Before(cutoff) {
			dormant = append(dormant, conns[i])
		}
	}
	sort.SliceStable(dormant, func(i, j int) bool {
		return dormant[i].ConnectedOn.Before(dormant[j].ConnectedOn)
	})
	return dormant
}

// YearCount is one bar of the connections-by-year chart.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// ByYear counts dated connections per calendar year, ascending.
func ByYear(conns []models.Connection) []YearCount {
	counts := make(map[int]int)
	for i := range conns {
		if conns[i].HasDate() {
			counts[conns[i].Year]++
		}
	}
	years := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		years = append(years, YearCount{Year: year, Count: count})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })
	return years
}

// PositionCount is one row of the top position titles table.
type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// TopPositions ranks the literal position titles, count descending with
// alphabetical ties, excluding empty titles.
func TopPositions(conns []models.Connection, n int) []PositionCount {
	counts := make(map[string]int)
	for i := range conns {
		if p := strings.TrimSpace(conns[i].Position); p != "" {
			counts[p]++
		}
	}
	ranked := make([]PositionCount, 0, len(counts))
	for pos, count := range counts {
		ranked = append(ranked, PositionCount{Position: pos, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Position < ranked[j].Position
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

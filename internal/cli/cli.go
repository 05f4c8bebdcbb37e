package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/aggregate"
	"github.com/pavelaverin/linksight/internal/config"
	"github.com/pavelaverin/linksight/internal/export"
	"github.com/pavelaverin/linksight/internal/query"
	"github.com/pavelaverin/linksight/internal/store"
)

// HandleQuery runs a one-shot filtered query and prints JSON to stdout.
// args are everything after the "query" subcommand.
func HandleQuery(s *store.Store, cfg *config.AppConfig, args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	entity := fs.String("entity", "connections", "connections or posts")
	seniority := fs.String("seniority", "", "comma-separated seniority levels")
	company := fs.String("company", "", "company substring")
	position := fs.String("position", "", "position substring")
	year := fs.String("year", "", "connection/post year")
	days := fs.String("days", "", "recency window in days")
	search := fs.String("q", "", "full-text search")
	postTypes := fs.String("type", "", "comma-separated post types")
	limit := fs.Int("limit", 0, "result cap (0 = config default)")
	sortBy := fs.String("sort", "", "sort directive")
	toCSV := fs.Bool("csv", false, "write results to outputs/ instead of stdout")
	fs.Parse(args)

	params := query.Params{
		Seniority: splitArg(*seniority),
		Company:   *company,
		Position:  *position,
		Year:      *year,
		Days:      *days,
		Search:    *search,
		PostTypes: splitArg(*postTypes),
		Limit:     *limit,
		Sort:      *sortBy,
	}

	switch *entity {
	case "connections":
		res, err := query.Connections(s.Connections, params, cfg.DefaultLimit, time.Now())
		if err != nil {
			logrus.Fatalf("query failed: %v", err)
		}
		if *toCSV {
			path, err := export.ConnectionsCSV("outputs", res.Records)
			if err != nil {
				logrus.Fatalf("export failed: %v", err)
			}
			fmt.Printf("Wrote %d of %d matching connections to %s\n", len(res.Records), res.Total, path)
			return
		}
		printJSON(res)
	case "posts":
		res, err := query.Posts(s.Posts, params, cfg.DefaultLimit, time.Now())
		if err != nil {
			logrus.Fatalf("query failed: %v", err)
		}
		if *toCSV {
			path, err := export.PostsCSV("outputs", res.Records)
			if err != nil {
				logrus.Fatalf("export failed: %v", err)
			}
			fmt.Printf("Wrote %d of %d matching posts to %s\n", len(res.Records), res.Total, path)
			return
		}
		printJSON(res)
	default:
		logrus.Fatalf("unknown entity %q: use connections or posts", *entity)
	}
}

// HandleStats prints the full aggregation report as JSON.
func HandleStats(s *store.Store, cfg *config.AppConfig) {
	now := time.Now()
	report := map[string]any{
		"overview": aggregate.Summarize(s.Connections, s.Posts, s.Comments, s.Reactions,
			now, cfg.DormancyDays, cfg.ClusterThreshold),
		"growth":      aggregate.Growth(s.Connections),
		"yearly":      aggregate.ByYear(s.Connections),
		"companies":   aggregate.TopCompanies(s.Connections, cfg.TopCompaniesAPI),
		"seniority":   aggregate.SeniorityDistribution(s.Connections),
		"clusters":    aggregate.Clusters(s.Connections, cfg.ClusterThreshold),
		"activity":    aggregate.Activity(s.Posts, s.Comments, s.Reactions),
		"post_types":  aggregate.PostTypes(s.Posts),
		"reactions":   aggregate.ReactionTypes(s.Reactions),
		"word_counts": aggregate.WordCounts(s.Posts),
	}
	printJSON(report)
}

func splitArg(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logrus.Fatalf("encoding output: %v", err)
	}
}

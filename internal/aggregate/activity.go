package aggregate

import (
	"sort"
	"time"

	"github.com/pavelaverin/linksight/internal/models"
	"github.com/pavelaverin/linksight/internal/temporal"
)

// ActivitySeries merges posts, comments and reactions into one gap-free
// monthly timeline.
type ActivitySeries struct {
	Labels    []string `json:"labels"`
	Posts     []int    `json:"posts"`
	Comments  []int    `json:"comments"`
	Reactions []int    `json:"reactions"`
}

// Activity buckets the three engagement kinds by month over their combined
// date span.
func Activity(posts []models.Post, comments []models.Comment, reactions []models.Reaction) ActivitySeries {
	series := ActivitySeries{Labels: []string{}, Posts: []int{}, Comments: []int{}, Reactions: []int{}}

	postsPerMonth := make(map[string]int)
	commentsPerMonth := make(map[string]int)
	reactionsPerMonth := make(map[string]int)
	var first, last time.Time

	span := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if last.IsZero() || t.After(last) {
			last = t
		}
	}

	for i := range posts {
		postsPerMonth[temporal.MonthKey(posts[i].Date)]++
		span(posts[i].Date)
	}
	for i := range comments {
		commentsPerMonth[temporal.MonthKey(comments[i].Date)]++
		span(comments[i].Date)
	}
	for i := range reactions {
		reactionsPerMonth[temporal.MonthKey(reactions[i].Date)]++
		span(reactions[i].Date)
	}

	for _, month := range temporal.MonthRange(first, last) {
		series.Labels = append(series.Labels, month)
		series.Posts = append(series.Posts, postsPerMonth[month])
		series.Comments = append(series.Comments, commentsPerMonth[month])
		series.Reactions = append(series.Reactions, reactionsPerMonth[month])
	}
	return series
}

// WeekdayCount is one bar of the posts-by-day chart.
type WeekdayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// PostsByWeekday counts posts per day of week, Monday first, all seven days
// present.
func PostsByWeekday(posts []models.Post) []WeekdayCount {
	counts := make(map[time.Weekday]int)
	for i := range posts {
		counts[temporal.Derive(posts[i].Date).Weekday]++
	}
	out := make([]WeekdayCount, 0, len(temporal.WeekdayOrder))
	for _, day := range temporal.WeekdayOrder {
		out = append(out, WeekdayCount{Day: day.String(), Count: counts[day]})
	}
	return out
}

// HourCount is one bar of the posts-by-hour chart.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// PostsByHour counts posts per hour of day, ascending, only hours that occur.
func PostsByHour(posts []models.Post) []HourCount {
	counts := make(map[int]int)
	for i := range posts {
		counts[temporal.Derive(posts[i].Date).Hour]++
	}
	out := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		out = append(out, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// ReactionCount is one row of the reaction-type distribution.
type ReactionCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ReactionTypes counts reactions per type, count descending with
// alphabetical ties.
func ReactionTypes(reactions []models.Reaction) []ReactionCount {
	counts := make(map[string]int)
	for i := range reactions {
		if reactions[i].Type != "" {
			counts[reactions[i].Type]++
		}
	}
	out := make([]ReactionCount, 0, len(counts))
	for typ, count := range counts {
		out = append(out, ReactionCount{Type: typ, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

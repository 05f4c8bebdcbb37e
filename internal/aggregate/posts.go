package aggregate

import (
	"time"

	"github.com/pavelaverin/linksight/internal/models"
	"github.com/pavelaverin/linksight/internal/temporal"
)

// PostTypeCount is one slice of the post-type distribution.
type PostTypeCount struct {
	Type  models.PostType `json:"type"`
	Count int             `json:"count"`
}

// PostTypes counts posts per type across the full closed set, zero counts
// included.
func PostTypes(posts []models.Post) []PostTypeCount {
	counts := make(map[models.PostType]int)
	for i := range posts {
		counts[posts[i].Type]++
	}
	out := make([]PostTypeCount, 0, len(models.PostTypeOrder))
	for _, typ := range models.PostTypeOrder {
		out = append(out, PostTypeCount{Type: typ, Count: counts[typ]})
	}
	return out
}

// MonthCount is one bar of the posts-per-month chart.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// PostsPerMonth counts posts per month, gap-free across the posting span.
func PostsPerMonth(posts []models.Post) []MonthCount {
	perMonth := make(map[string]int)
	var first, last time.Time
	for i := range posts {
		perMonth[temporal.MonthKey(posts[i].Date)]++
		if first.IsZero() || posts[i].Date.Before(first) {
			first = posts[i].Date
		}
		if last.IsZero() || posts[i].Date.After(last) {
			last = posts[i].Date
		}
	}
	out := make([]MonthCount, 0)
	for _, month := range temporal.MonthRange(first, last) {
		out = append(out, MonthCount{Month: month, Count: perMonth[month]})
	}
	return out
}

// BucketCount is one bar of the word-count histogram.
type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// wordCountBuckets mirrors the dashboard histogram; a zero-word post is a
// repost by definition.
var wordCountBuckets = []struct {
	label string
	max   int
}{
	{"0 (Repost)", 0},
	{"1-50", 50},
	{"51-100", 100},
	{"101-200", 200},
	{"201-300", 300},
	{"300+", -1},
}

// WordCounts buckets posts by commentary length.
func WordCounts(posts []models.Post) []BucketCount {
	counts := make([]int, len(wordCountBuckets))
	for i := range posts {
		wc := posts[i].WordCount
		for j, b := range wordCountBuckets {
			if b.max < 0 || wc <= b.max {
				counts[j]++
				break
			}
		}
	}
	out := make([]BucketCount, len(wordCountBuckets))
	for j, b := range wordCountBuckets {
		out[j] = BucketCount{Bucket: b.label, Count: counts[j]}
	}
	return out
}

// AverageWordCount is the mean commentary length across all posts, zero when
// there are none.
func AverageWordCount(posts []models.Post) int {
	if len(posts) == 0 {
		return 0
	}
	total := 0
	for i := range posts {
		total += posts[i].WordCount
	}
	return total / len(posts)
}

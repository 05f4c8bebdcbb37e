package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelaverin/linksight/internal/models"
)

func TestPostTypesIncludesZeroSlices(t *testing.T) {
	posts := []models.Post{
		{Type: models.PostMedia},
		{Type: models.PostMedia},
		{Type: models.PostShortText},
	}
	out := PostTypes(posts)
	require.Len(t, out, len(models.PostTypeOrder))
	assert.Equal(t, PostTypeCount{Type: models.PostRepost, Count: 0}, out[0])
	assert.Equal(t, PostTypeCount{Type: models.PostMedia, Count: 2}, out[1])
	assert.Equal(t, PostTypeCount{Type: models.PostShortText, Count: 1}, out[4])
}

func TestPostsPerMonthGapFree(t *testing.T) {
	posts := []models.Post{
		{Date: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)},
	}
	out := PostsPerMonth(posts)
	assert.Equal(t, []MonthCount{
		{Month: "2024-11", Count: 1},
		{Month: "2024-12", Count: 0},
		{Month: "2025-01", Count: 2},
	}, out)
}

func TestWordCountBuckets(t *testing.T) {
	posts := []models.Post{
		{WordCount: 0},
		{WordCount: 1},
		{WordCount: 50},
		{WordCount: 51},
		{WordCount: 100},
		{WordCount: 150},
		{WordCount: 250},
		{WordCount: 301},
	}
	out := WordCounts(posts)
	assert.Equal(t, []BucketCount{
		{Bucket: "0 (Repost)", Count: 1},
		{Bucket: "1-50", Count: 2},
		{Bucket: "51-100", Count: 2},
		{Bucket: "101-200", Count: 1},
		{Bucket: "201-300", Count: 1},
		{Bucket: "300+", Count: 1},
	}, out)
}

func TestAverageWordCount(t *testing.T) {
	assert.Equal(t, 0, AverageWordCount(nil))
	posts := []models.Post{{WordCount: 10}, {WordCount: 21}}
	assert.Equal(t, 15, AverageWordCount(posts))
}

package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelaverin/linksight/internal/models"
)

func TestActivityMergesKindsOverCombinedSpan(t *testing.T) {
	posts := []models.Post{
		{Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}
	comments := []models.Comment{
		{Date: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},
	}
	reactions := []models.Reaction{
		{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}

	a := Activity(posts, comments, reactions)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, a.Labels)
	assert.Equal(t, []int{1, 0, 0}, a.Posts)
	assert.Equal(t, []int{0, 0, 2}, a.Comments)
	assert.Equal(t, []int{0, 1, 0}, a.Reactions)
}

func TestActivityEmpty(t *testing.T) {
	a := Activity(nil, nil, nil)
	assert.NotNil(t, a.Labels)
	assert.Empty(t, a.Labels)
}

func TestPostsByWeekdayMondayFirstAllDays(t *testing.T) {
	posts := []models.Post{
		{Date: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)}, // Monday
		{Date: time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)}, // Monday
		{Date: time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC)},  // Wednesday
	}
	out := PostsByWeekday(posts)
	require.Len(t, out, 7)
	assert.Equal(t, WeekdayCount{Day: "Monday", Count: 2}, out[0])
	assert.Equal(t, WeekdayCount{Day: "Wednesday", Count: 1}, out[2])
	assert.Equal(t, WeekdayCount{Day: "Sunday", Count: 0}, out[6])
}

func TestPostsByHourOnlyOccurringHours(t *testing.T) {
	posts := []models.Post{
		{Date: time.Date(2024, time.March, 4, 9, 15, 0, 0, time.UTC)},
		{Date: time.Date(2024, time.March, 5, 9, 45, 0, 0, time.UTC)},
		{Date: time.Date(2024, time.March, 6, 17, 0, 0, 0, time.UTC)},
	}
	out := PostsByHour(posts)
	assert.Equal(t, []HourCount{{Hour: 9, Count: 2}, {Hour: 17, Count: 1}}, out)
}

func TestReactionTypes(t *testing.T) {
	reactions := []models.Reaction{
		{Type: "LIKE"}, {Type: "LIKE"}, {Type: "PRAISE"}, {Type: "EMPATHY"}, {Type: "EMPATHY"}, {Type: ""},
	}
	out := ReactionTypes(reactions)
	// Count descending, alphabetical ties, empty types dropped.
	assert.Equal(t, []ReactionCount{
		{Type: "EMPATHY", Count: 2},
		{Type: "LIKE", Count: 2},
		{Type: "PRAISE", Count: 1},
	}, out)
}

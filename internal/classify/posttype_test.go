package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavelaverin/linksight/internal/models"
)

func TestPostTypePrecedence(t *testing.T) {
	// Repost wins regardless of every other flag.
	assert.Equal(t, models.PostRepost, PostType(PostShape{IsRepost: true, HasMedia: true, HasLink: true, WordCount: 500}, 0))
	// Media beats link and text length.
	assert.Equal(t, models.PostMedia, PostType(PostShape{HasMedia: true, HasLink: true, WordCount: 500}, 0))
	// Link beats text length.
	assert.Equal(t, models.PostLinkShare, PostType(PostShape{HasLink: true, WordCount: 500}, 0))
}

func TestPostTypeWordCountSplit(t *testing.T) {
	assert.Equal(t, models.PostLongText, PostType(PostShape{WordCount: 150}, 0))
	assert.Equal(t, models.PostShortText, PostType(PostShape{WordCount: 20}, 0))
	// Threshold is inclusive.
	assert.Equal(t, models.PostLongText, PostType(PostShape{WordCount: 100}, 0))
	assert.Equal(t, models.PostShortText, PostType(PostShape{WordCount: 99}, 0))
}

func TestPostTypeCustomThreshold(t *testing.T) {
	assert.Equal(t, models.PostLongText, PostType(PostShape{WordCount: 50}, 50))
	assert.Equal(t, models.PostShortText, PostType(PostShape{WordCount: 49}, 50))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount("shipping the roadmap"))
	assert.Equal(t, 3, WordCount("  shipping\tthe\n roadmap "))
	// Export-style doubled quotes around commentary don't count as words.
	assert.Equal(t, 2, WordCount(`"hello world"`))
	assert.Equal(t, 3, WordCount(`"she said ""hi"""`))
}

package classify

import (
	"strings"

	"github.com/pavelaverin/linksight/internal/models"
)

// DefaultLongTextWordMin is the word count at which a plain text post counts
// as Long Text.
const DefaultLongTextWordMin = 100

// PostShape carries the structural facts PostType needs. The loader fills it
// from the export row; tests build it directly.
type PostShape struct {
	WordCount int
	HasMedia  bool
	HasLink   bool
	IsRepost  bool
}

// PostType picks exactly one type for a post. Precedence is fixed: repost
// beats media beats link beats the word-count split. longTextMin <= 0 falls
// back to the default threshold.
func PostType(shape PostShape, longTextMin int) models.PostType {
	if longTextMin <= 0 {
		longTextMin = DefaultLongTextWordMin
	}
	switch {
	case shape.IsRepost:
		return models.PostRepost
	case shape.HasMedia:
		return models.PostMedia
	case shape.HasLink:
		return models.PostLinkShare
	case shape.WordCount >= longTextMin:
		return models.PostLongText
	default:
		return models.PostShortText
	}
}

// WordCount tokenizes commentary on whitespace. LinkedIn doubles quotes
// inside the CSV field and wraps the whole commentary in quotes, so both are
// stripped before counting.
func WordCount(content string) int {
	return len(strings.Fields(CleanCommentary(content)))
}

// CleanCommentary undoes the export's quote escaping around share commentary.
func CleanCommentary(content string) string {
	content = strings.ReplaceAll(content, `""`, `"`)
	content = strings.TrimSpace(content)
	return strings.Trim(content, `"`)
}

package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pavelaverin/linksight/internal/classify"
	"github.com/pavelaverin/linksight/internal/loader"
	"github.com/pavelaverin/linksight/internal/models"
)

// Store is the normalized, classified record set one pipeline run produces.
// It is built once and read-only afterwards; consumers must not mutate the
// slices it hands out. Re-running Build re-derives everything from source.
type Store struct {
	Connections   []models.Connection
	Posts         []models.Post
	Comments      []models.Comment
	Reactions     []models.Reaction
	Conversations []models.Conversation
	Profile       models.Profile
	BuiltAt       time.Time
	SkippedRows   int
}

// Options tune the derivations that happen at build time.
type Options struct {
	LongTextWordMin int    // word count threshold for Long Text posts
	OwnerName       string // excluded from conversation participants; falls back to the profile name
}

// Build normalizes a parsed export into a Store: ids assigned, seniority and
// post types classified, comment counts matched by URN, records sorted
// reverse-chronological.
func Build(ex *loader.Export, opts Options) *Store {
	s := &Store{
		Comments:    ex.Comments,
		Reactions:   ex.Reactions,
		Profile:     ex.Profile,
		BuiltAt:     time.Now(),
		SkippedRows: ex.Skipped,
	}

	s.Connections = make([]models.Connection, len(ex.Connections))
	for i, c := range ex.Connections {
		c.ID = uuid.New()
		c.Seniority = classify.Seniority(c.Position)
		if c.HasDate() {
			c.Year = c.ConnectedOn.Year()
		}
		s.Connections[i] = c
	}
	// Reverse-chronological, dateless rows last. SliceStable keeps the
	// export's relative order inside equal dates so runs are reproducible.
	sort.SliceStable(s.Connections, func(i, j int) bool {
		a, b := s.Connections[i], s.Connections[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		return a.ConnectedOn.After(b.ConnectedOn)
	})

	commentsPerPost := make(map[string]int)
	for _, c := range ex.Comments {
		if c.URN != "" {
			commentsPerPost[c.URN]++
		}
	}

	s.Posts = make([]models.Post, len(ex.Posts))
	for i, p := range ex.Posts {
		p.ID = uuid.New()
		p.Content = classify.CleanCommentary(p.Content)
		p.WordCount = classify.WordCount(p.Content)
		p.Preview = preview(p.Content, 200)
		// A repost exports as a bare share: no commentary, no media, no link.
		p.IsRepost = p.WordCount == 0 && !p.HasMedia && !p.HasLink
		p.Type = classify.PostType(classify.PostShape{
			WordCount: p.WordCount,
			HasMedia:  p.HasMedia,
			HasLink:   p.HasLink,
			IsRepost:  p.IsRepost,
		}, opts.LongTextWordMin)
		if p.URN != "" {
			p.Comments = commentsPerPost[p.URN]
		}
		s.Posts[i] = p
	}
	sort.SliceStable(s.Posts, func(i, j int) bool {
		return s.Posts[i].Date.After(s.Posts[j].Date)
	})

	owner := opts.OwnerName
	if owner == "" {
		owner = ex.Profile.FullName()
	}
	s.Conversations = buildConversations(ex.Messages, owner)

	return s
}

func preview(content string, max int) string {
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}

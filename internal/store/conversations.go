package store

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pavelaverin/linksight/internal/models"
)

// buildConversations rolls messages up into one row per thread: who the
// thread is with, how many messages it holds, and whether the last word was
// theirs (awaiting the owner's reply).
func buildConversations(msgs []models.Message, owner string) []models.Conversation {
	if len(msgs) == 0 {
		return nil
	}

	byConv := make(map[string][]models.Message)
	var order []string
	for _, m := range msgs {
		if m.ConversationID == "" {
			continue
		}
		if _, seen := byConv[m.ConversationID]; !seen {
			order = append(order, m.ConversationID)
		}
		byConv[m.ConversationID] = append(byConv[m.ConversationID], m)
	}

	convos := make([]models.Conversation, 0, len(order))
	for _, id := range order {
		thread := byConv[id]
		sort.SliceStable(thread, func(i, j int) bool {
			return thread[i].Date.Before(thread[j].Date)
		})

		participants := make(map[string]bool)
		for _, m := range thread {
			if m.From != "" {
				participants[m.From] = true
			}
			if m.To != "" {
				participants[m.To] = true
			}
		}
		delete(participants, owner)
		names := make([]string, 0, len(participants))
		for n := range participants {
			names = append(names, n)
		}
		sort.Strings(names)
		other := strings.Join(names, ", ")
		if other == "" {
			other = "Unknown"
		}

		last := thread[len(thread)-1]
		convos = append(convos, models.Conversation{
			Other:         other,
			MessageCount:  len(thread),
			LastDate:      last.Date,
			LastFrom:      last.From,
			LastContent:   preview(stripHTML(last.Content), 500),
			AwaitingReply: last.From != "" && last.From != owner,
		})
	}

	sort.SliceStable(convos, func(i, j int) bool {
		return convos[i].LastDate.After(convos[j].LastDate)
	})
	return convos
}

// stripHTML flattens message markup to plain text with collapsed whitespace.
// LinkedIn message bodies arrive as HTML fragments.
func stripHTML(content string) string {
	if !strings.Contains(content, "<") {
		return strings.Join(strings.Fields(content), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

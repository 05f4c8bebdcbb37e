package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/models"
)

// Export holds every record kind parsed from a LinkedIn data export, before
// classification and indexing.
type Export struct {
	Connections []models.Connection
	Posts       []models.Post
	Comments    []models.Comment
	Reactions   []models.Reaction
	Messages    []models.Message
	Profile     models.Profile
	Skipped     int // rows dropped as malformed across all files
}

var exportDirPatterns = []string{
	"Complete_LinkedInDataExport_*",
	"Basic_LinkedInDataExport_*",
}

// FindExportDir locates the newest LinkedIn export directory under baseDir or
// its "data exports" subfolder.
func FindExportDir(baseDir string) (string, error) {
	searchDirs := []string{baseDir, filepath.Join(baseDir, "data exports")}
	var newest string
	var newestMod time.Time
	for _, dir := range searchDirs {
		for _, pattern := range exportDirPatterns {
			matches, _ := filepath.Glob(filepath.Join(dir, pattern))
			for _, m := range matches {
				info, err := os.Stat(m)
				if err != nil || !info.IsDir() {
					continue
				}
				if newest == "" || info.ModTime().After(newestMod) {
					newest = m
					newestMod = info.ModTime()
				}
			}
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no LinkedIn export found under %s: place the LinkedInDataExport folder there or in a 'data exports' subfolder", baseDir)
	}
	return newest, nil
}

// Load parses every known CSV in the export directory. Missing optional files
// (everything except Connections.csv) yield empty slices, not errors.
func Load(exportDir string) (*Export, error) {
	ex := &Export{}

	conns, skipped, err := loadConnections(filepath.Join(exportDir, "Connections.csv"))
	if err != nil {
		return nil, err
	}
	ex.Connections = conns
	ex.Skipped += skipped

	ex.Posts, skipped = loadShares(filepath.Join(exportDir, "Shares.csv"))
	ex.Skipped += skipped
	ex.Comments, skipped = loadComments(filepath.Join(exportDir, "Comments.csv"))
	ex.Skipped += skipped
	ex.Reactions, skipped = loadReactions(filepath.Join(exportDir, "Reactions.csv"))
	ex.Skipped += skipped
	ex.Messages, skipped = loadMessages(filepath.Join(exportDir, "messages.csv"))
	ex.Skipped += skipped
	ex.Profile = loadProfile(filepath.Join(exportDir, "Profile.csv"))

	logrus.WithFields(logrus.Fields{
		"connections": len(ex.Connections),
		"posts":       len(ex.Posts),
		"comments":    len(ex.Comments),
		"reactions":   len(ex.Reactions),
		"messages":    len(ex.Messages),
		"skipped":     ex.Skipped,
	}).Info("export loaded")

	return ex, nil
}

// table is a header-indexed view over one parsed CSV file.
type table struct {
	cols map[string]int
	rows [][]string
}

func (t *table) get(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// readTable parses a CSV file leniently: ragged and unparseable rows are
// skipped and counted, never fatal. skipLines drops the notice lines LinkedIn
// prepends to Connections.csv.
func readTable(path string, skipLines int) (*table, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	skipped := 0
	for i := 0; i < skipLines; i++ {
		if _, err := r.Read(); err != nil {
			return nil, 0, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		}
	}

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s header: %w", filepath.Base(path), err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	t := &table{cols: cols}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		t.rows = append(t.rows, row)
	}
	return t, skipped, nil
}

func loadConnections(path string) ([]models.Connection, int, error) {
	// Connections.csv starts with a two-line data-accuracy notice.
	t, skipped, err := readTable(path, 2)
	if err != nil {
		return nil, 0, fmt.Errorf("connections: %w", err)
	}

	conns := make([]models.Connection, 0, len(t.rows))
	for _, row := range t.rows {
		c := models.Connection{
			FirstName:   t.get(row, "First Name"),
			LastName:    t.get(row, "Last Name"),
			Company:     t.get(row, "Company"),
			Position:    t.get(row, "Position"),
			ProfileURL:  t.get(row, "URL"),
			ConnectedOn: parseDate(t.get(row, "Connected On")),
		}
		c.FullName = strings.TrimSpace(c.FirstName + " " + c.LastName)
		if c.FullName == "" && c.Company == "" && c.Position == "" {
			skipped++
			continue
		}
		conns = append(conns, c)
	}
	return conns, skipped, nil
}

func loadShares(path string) ([]models.Post, int) {
	t, skipped, err := readTable(path, 0)
	if err != nil {
		return nil, 0
	}

	posts := make([]models.Post, 0, len(t.rows))
	for _, row := range t.rows {
		date := parseDate(t.get(row, "Date"))
		if date.IsZero() {
			skipped++
			continue
		}
		link := t.get(row, "ShareLink")
		posts = append(posts, models.Post{
			Date:       date,
			Content:    t.get(row, "ShareCommentary"),
			Link:       link,
			URN:        ExtractURN(link),
			HasMedia:   t.get(row, "MediaUrl") != "",
			HasLink:    t.get(row, "SharedUrl") != "",
			Visibility: t.get(row, "Visibility"),
		})
	}
	return posts, skipped
}

func loadComments(path string) ([]models.Comment, int) {
	t, skipped, err := readTable(path, 0)
	if err != nil {
		return nil, 0
	}

	comments := make([]models.Comment, 0, len(t.rows))
	for _, row := range t.rows {
		date := parseDate(t.get(row, "Date"))
		if date.IsZero() {
			skipped++
			continue
		}
		comments = append(comments, models.Comment{
			Date:    date,
			Message: t.get(row, "Message"),
			URN:     ExtractURN(t.get(row, "Link")),
		})
	}
	return comments, skipped
}

func loadReactions(path string) ([]models.Reaction, int) {
	t, skipped, err := readTable(path, 0)
	if err != nil {
		return nil, 0
	}

	reactions := make([]models.Reaction, 0, len(t.rows))
	for _, row := range t.rows {
		date := parseDate(t.get(row, "Date"))
		if date.IsZero() {
			skipped++
			continue
		}
		reactions = append(reactions, models.Reaction{
			Date: date,
			Type: t.get(row, "Type"),
		})
	}
	return reactions, skipped
}

func loadMessages(path string) ([]models.Message, int) {
	t, skipped, err := readTable(path, 0)
	if err != nil {
		return nil, 0
	}

	msgs := make([]models.Message, 0, len(t.rows))
	for _, row := range t.rows {
		msgs = append(msgs, models.Message{
			ConversationID: t.get(row, "CONVERSATION ID"),
			From:           t.get(row, "FROM"),
			To:             t.get(row, "TO"),
			Date:           parseDate(t.get(row, "DATE")),
			Content:        t.get(row, "CONTENT"),
		})
	}
	return msgs, skipped
}

func loadProfile(path string) models.Profile {
	t, _, err := readTable(path, 0)
	if err != nil || len(t.rows) == 0 {
		return models.Profile{}
	}
	row := t.rows[0]
	return models.Profile{
		FirstName: t.get(row, "First Name"),
		LastName:  t.get(row, "Last Name"),
		Headline:  t.get(row, "Headline"),
	}
}

// dateLayouts covers the formats seen across export vintages: connections use
// "06 Mar 2021", shares/comments/reactions use ISO with time, messages append
// a UTC suffix, and very old exports are day-first numeric.
var dateLayouts = []string{
	"02 Jan 2006",
	"2006-01-02 15:04:05 UTC",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pavelaverin/linksight/internal/models"
)

// ConnectionsCSV writes connection query results to a timestamped CSV under
// dir and returns the file path.
func ConnectionsCSV(dir string, conns []models.Connection) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("connections_%s.csv", time.Now().Format("20060102_150405")))

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"name",
		"company",
		"position",
		"seniority",
		"connected_on",
		"url",
	}); err != nil {
		return "", err
	}

	for i := range conns {
		c := &conns[i]
		connected := ""
		if c.HasDate() {
			connected = c.ConnectedOn.Format("2006-01-02")
		}
		record := []string{
			c.FullName,
			c.Company,
			c.Position,
			string(c.Seniority),
			connected,
			c.ProfileURL,
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	return filename, writer.Error()
}

// PostsCSV writes post query results to a timestamped CSV under dir.
func PostsCSV(dir string, posts []models.Post) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("posts_%s.csv", time.Now().Format("20060102_150405")))

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"date",
		"type",
		"word_count",
		"comments",
		"visibility",
		"link",
		"content",
	}); err != nil {
		return "", err
	}

	for i := range posts {
		p := &posts[i]
		record := []string{
			p.Date.Format(time.RFC3339),
			string(p.Type),
			strconv.Itoa(p.WordCount),
			strconv.Itoa(p.Comments),
			p.Visibility,
			p.Link,
			p.Content,
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	return filename, writer.Error()
}

package export

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelaverin/linksight/internal/models"
)

func TestConnectionsCSV(t *testing.T) {
	dir := t.TempDir()
	conns := []models.Connection{
		{FullName: "Dana Reed", Company: "Acme", Position: "VP of Engineering",
			Seniority: models.SeniorityVP, ConnectedOn: time.Date(2021, time.March, 6, 0, 0, 0, 0, time.UTC),
			ProfileURL: "https://www.linkedin.com/in/dana-reed"},
		{FullName: "No Date", Company: "Globex", Position: "Engineer", Seniority: models.SeniorityIC},
	}

	path, err := ConnectionsCSV(dir, conns)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "company", "position", "seniority", "connected_on", "url"}, rows[0])
	assert.Equal(t, "Dana Reed", rows[1][0])
	assert.Equal(t, "2021-03-06", rows[1][4])
	// Dateless rows export an empty date cell, not a zero time.
	assert.Equal(t, "", rows[2][4])
}

func TestPostsCSV(t *testing.T) {
	dir := t.TempDir()
	posts := []models.Post{
		{Date: time.Date(2024, time.March, 6, 14, 30, 0, 0, time.UTC), Type: models.PostLongText,
			WordCount: 150, Comments: 3, Visibility: "MEMBER_NETWORK", Content: "a long one"},
	}

	path, err := PostsCSV(dir, posts)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Long Text", rows[1][1])
	assert.Equal(t, "150", rows[1][2])
	assert.Equal(t, "3", rows[1][3])
}

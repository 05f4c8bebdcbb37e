package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LINKSIGHT_ADDR", "LINKSIGHT_EXPORT_DIR", "LINKSIGHT_OWNER",
		"LINKSIGHT_DORMANCY_DAYS", "LINKSIGHT_CLUSTER_THRESHOLD",
		"LINKSIGHT_LONG_TEXT_WORDS", "LINKSIGHT_RESULT_LIMIT",
		"LINKSIGHT_RELOAD_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, ".", cfg.ExportBaseDir)
	assert.Equal(t, 730, cfg.DormancyDays)
	assert.Equal(t, 5, cfg.ClusterThreshold)
	assert.Equal(t, 100, cfg.LongTextWordMin)
	assert.Equal(t, 500, cfg.DefaultLimit)
	assert.Equal(t, time.Duration(0), cfg.ReloadInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LINKSIGHT_ADDR", ":9999")
	t.Setenv("LINKSIGHT_OWNER", "Pavel Averin")
	t.Setenv("LINKSIGHT_DORMANCY_DAYS", "365")
	t.Setenv("LINKSIGHT_RELOAD_INTERVAL", "30")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "Pavel Averin", cfg.OwnerName)
	assert.Equal(t, 365, cfg.DormancyDays)
	assert.Equal(t, 30*time.Minute, cfg.ReloadInterval)
}

func TestLoadIgnoresNonNumericInts(t *testing.T) {
	t.Setenv("LINKSIGHT_DORMANCY_DAYS", "two years")
	cfg := Load()
	assert.Equal(t, 730, cfg.DormancyDays)
}

func TestLoadDatabaseOptional(t *testing.T) {
	t.Setenv("POSTGRES_DB", "")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")

	db, err := LoadDatabase()
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestLoadDatabasePartialConfig(t *testing.T) {
	t.Setenv("POSTGRES_DB", "linksight")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")

	_, err := LoadDatabase()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete archive configuration")
}

package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

// AppConfig is the full configuration surface of the engine. Everything has
// a working default; env vars override.
type AppConfig struct {
	ListenAddr       string        // LINKSIGHT_ADDR
	ExportBaseDir    string        // LINKSIGHT_EXPORT_DIR, searched for the newest export folder
	OwnerName        string        // LINKSIGHT_OWNER, overrides the Profile.csv name
	DormancyDays     int           // LINKSIGHT_DORMANCY_DAYS
	ClusterThreshold int           // LINKSIGHT_CLUSTER_THRESHOLD
	LongTextWordMin  int           // LINKSIGHT_LONG_TEXT_WORDS
	DefaultLimit     int           // LINKSIGHT_RESULT_LIMIT
	TopCompaniesAPI  int           // top-N for the companies endpoint
	TopCompaniesMax  int           // top-N for filter dropdown options
	ReloadInterval   time.Duration // LINKSIGHT_RELOAD_INTERVAL, 0 disables the worker

	DBInitErr error // non-nil when the optional archive DB failed to come up
}

// Load reads .env if present and builds the config from the environment.
func Load() *AppConfig {
	// Missing .env is fine; env vars may come from the shell or compose.
	_ = godotenv.Load()

	return &AppConfig{
		ListenAddr:       envString("LINKSIGHT_ADDR", ":8080"),
		ExportBaseDir:    envString("LINKSIGHT_EXPORT_DIR", "."),
		OwnerName:        os.Getenv("LINKSIGHT_OWNER"),
		DormancyDays:     envInt("LINKSIGHT_DORMANCY_DAYS", 730),
		ClusterThreshold: envInt("LINKSIGHT_CLUSTER_THRESHOLD", 5),
		LongTextWordMin:  envInt("LINKSIGHT_LONG_TEXT_WORDS", 100),
		DefaultLimit:     envInt("LINKSIGHT_RESULT_LIMIT", 500),
		TopCompaniesAPI:  20,
		TopCompaniesMax:  100,
		ReloadInterval:   time.Duration(envInt("LINKSIGHT_RELOAD_INTERVAL", 0)) * time.Minute,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithField("var", key).Warnf("ignoring non-numeric value %q", raw)
		return fallback
	}
	return v
}

// LoadDatabase opens the optional archive database and runs migrations.
// Returns (nil, nil) when no POSTGRES_* env is set: the archive is opt-in and
// the in-memory store works without it.
func LoadDatabase() (*sql.DB, error) {
	dbName := os.Getenv("POSTGRES_DB")
	dbUser := os.Getenv("POSTGRES_USER")
	dbPassword := os.Getenv("POSTGRES_PASSWORD")
	if dbName == "" && dbUser == "" && dbPassword == "" {
		return nil, nil
	}
	if dbName == "" || dbUser == "" || dbPassword == "" {
		return nil, fmt.Errorf("incomplete archive configuration: POSTGRES_DB, POSTGRES_USER and POSTGRES_PASSWORD must all be set")
	}
	host := envString("POSTGRES_HOST", "localhost:5432")

	db, err := sql.Open("postgres", fmt.Sprintf("postgres://%v:%v@%v/%v?sslmode=disable", dbUser, dbPassword, host, dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the archive DB: %w", err)
	}

	if err := goose.Up(db, "./sql/schema"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := goose.EnsureDBVersion(db)
	if err != nil {
		return nil, fmt.Errorf("failed to get DB version: %w", err)
	}
	logrus.WithField("version", version).Info("archive migrations applied")

	return db, nil
}

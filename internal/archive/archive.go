package archive

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pavelaverin/linksight/internal/store"
)

// DB archives normalized pipeline runs to Postgres. The in-memory store
// remains the source of truth; the archive exists so past runs can be
// compared after the export folder changes.
type DB struct {
	Conn *sql.DB
}

func New(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// SaveSnapshot writes one pipeline run: a snapshot row plus every normalized
// connection and post, in a single transaction.
func (d *DB) SaveSnapshot(ctx context.Context, s *store.Store) (uuid.UUID, error) {
	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	snapshotID := uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, built_at, connection_count, post_count, comment_count, reaction_count, skipped_rows)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snapshotID, s.BuiltAt, len(s.Connections), len(s.Posts), len(s.Comments), len(s.Reactions), s.SkippedRows)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert snapshot: %w", err)
	}

	connStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO connections (id, snapshot_id, full_name, company, position, seniority, connected_on, profile_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare connections insert: %w", err)
	}
	defer connStmt.Close()
	for i := range s.Connections {
		c := &s.Connections[i]
		connectedOn := sql.NullTime{Time: c.ConnectedOn, Valid: c.HasDate()}
		if _, err := connStmt.ExecContext(ctx, c.ID, snapshotID, c.FullName, c.Company, c.Position, string(c.Seniority), connectedOn, c.ProfileURL); err != nil {
			return uuid.Nil, fmt.Errorf("insert connection %s: %w", c.ID, err)
		}
	}

	postStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO posts (id, snapshot_id, posted_at, post_type, word_count, comment_count, urn, visibility)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare posts insert: %w", err)
	}
	defer postStmt.Close()
	for i := range s.Posts {
		p := &s.Posts[i]
		if _, err := postStmt.ExecContext(ctx, p.ID, snapshotID, p.Date, string(p.Type), p.WordCount, p.Comments, p.URN, p.Visibility); err != nil {
			return uuid.Nil, fmt.Errorf("insert post %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"snapshot":    snapshotID,
		"connections": len(s.Connections),
		"posts":       len(s.Posts),
	}).Info("snapshot archived")
	return snapshotID, nil
}

// SnapshotInfo summarizes one archived run.
type SnapshotInfo struct {
	ID              uuid.UUID `json:"id"`
	BuiltAt         string    `json:"built_at"`
	ConnectionCount int       `json:"connection_count"`
	PostCount       int       `json:"post_count"`
}

// ListSnapshots returns archived runs, newest first.
func (d *DB) ListSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.Conn.QueryContext(ctx,
		`SELECT id, built_at, connection_count, post_count
		 FROM snapshots ORDER BY built_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.BuiltAt, &info.ConnectionCount, &info.PostCount); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

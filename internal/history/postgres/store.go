// Package postgres stores csvclean run history in a PostgreSQL table.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/csvclean/internal/history"
)

// Store records runs into a single table.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

var _ history.Store = (*Store)(nil)

// Open connects to the database at url, verifies the connection, and
// creates table if it does not already exist.
func Open(ctx context.Context, url, table string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing history database URL: %w", err)
	}

	// one run writes one row; a single connection is enough
	poolConfig.MaxConns = 1
	poolConfig.MinConns = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to history database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	s := &Store{pool: pool, table: table}
	if err := s.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) quotedTable() string {
	return pgx.Identifier{s.table}.Sanitize()
}

// EnsureTable creates the history table if it doesn't exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id                  UUID PRIMARY KEY,
  started_at          TIMESTAMPTZ NOT NULL,
  duration_ms         BIGINT NOT NULL,
  input_path          TEXT NOT NULL,
  output_path         TEXT NOT NULL,
  target_column       TEXT NOT NULL,
  deduplicate         BOOLEAN NOT NULL,
  outcome             TEXT NOT NULL,
  error_code          TEXT,
  rows_read           INTEGER NOT NULL,
  rows_written        INTEGER NOT NULL,
  duplicates_removed  INTEGER NOT NULL,
  message             TEXT NOT NULL
)`, s.quotedTable())

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating history table %s: %w", s.table, err)
	}
	return nil
}

// Record inserts run.
func (s *Store) Record(ctx context.Context, run history.Run) error {
	if run.ID == uuid.Nil {
		return history.ErrInvalidRun
	}

	query := fmt.Sprintf(`
INSERT INTO %s (
  id, started_at, duration_ms, input_path, output_path, target_column,
  deduplicate, outcome, error_code, rows_read, rows_written,
  duplicates_removed, message
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, s.quotedTable())

	if _, err := s.pool.Exec(ctx, query,
		pgtype.UUID{Bytes: run.ID, Valid: true},
		run.StartedAt,
		run.Duration.Milliseconds(),
		run.Input,
		run.Output,
		run.Column,
		run.Deduplicate,
		run.Outcome,
		toPgText(run.Code),
		run.RowsRead,
		run.RowsWritten,
		run.DuplicatesRemoved,
		run.Message,
	); err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

func (s *Store) Close() { s.pool.Close() }

func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the local state database. It remembers who the user is
// between runs and which survey votes already reached the backend, so
// a retried stage never re-sends a pair twice.
type Store struct {
	db *sql.DB
}

// Identity is the locally persisted user record.
type Identity struct {
	TelegramID     int64
	Group          string
	EnrollmentYear int
	InstallID      string
}

// ErrNoIdentity is returned by LoadIdentity when no user has been
// saved yet.
var ErrNoIdentity = errors.New("store: no saved identity")

// Open opens (creating if needed) the state database under dir and
// ensures the schema exists.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}

	path := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}
	// One connection avoids SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates all tables needed by the client.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Saved identity. A single row keyed by id=1.
CREATE TABLE IF NOT EXISTS identity (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    telegram_id INTEGER NOT NULL,
    group_name TEXT NOT NULL DEFAULT '',
    enrollment_year INTEGER NOT NULL DEFAULT 0,
    install_id TEXT NOT NULL DEFAULT ''
);

-- Pair votes acknowledged by the backend. Rows are keyed by the
-- ordered object-id pair within a stage.
CREATE TABLE IF NOT EXISTS sent_vote (
    telegram_id INTEGER NOT NULL,
    stage TEXT NOT NULL,
    object_a INTEGER NOT NULL,
    object_b INTEGER NOT NULL,
    PRIMARY KEY (telegram_id, stage, object_a, object_b)
);
`

// SaveIdentity upserts the single identity row.
func (s *Store) SaveIdentity(id Identity) error {
	_, err := s.db.Exec(`
		INSERT INTO identity (id, telegram_id, group_name, enrollment_year, install_id)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			telegram_id = excluded.telegram_id,
			group_name = excluded.group_name,
			enrollment_year = excluded.enrollment_year,
			install_id = excluded.install_id
	`, id.TelegramID, id.Group, id.EnrollmentYear, id.InstallID)
	if err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}

	return nil
}

// LoadIdentity returns the saved identity, or ErrNoIdentity.
func (s *Store) LoadIdentity() (Identity, error) {
	var id Identity
	err := s.db.QueryRow(`
		SELECT telegram_id, group_name, enrollment_year, install_id
		FROM identity WHERE id = 1
	`).Scan(&id.TelegramID, &id.Group, &id.EnrollmentYear, &id.InstallID)
	if err == sql.ErrNoRows {
		return Identity{}, ErrNoIdentity
	}
	if err != nil {
		return Identity{}, fmt.Errorf("failed to load identity: %w", err)
	}

	return id, nil
}

// MarkVoteSent records that the backend accepted the vote for the
// given pair. objectA must be the smaller id.
func (s *Store) MarkVoteSent(telegramID int64, stage string, objectA, objectB int64) error {
	_, err := s.db.Exec(`
		INSERT INTO sent_vote (telegram_id, stage, object_a, object_b)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, telegramID, stage, objectA, objectB)
	if err != nil {
		return fmt.Errorf("failed to mark vote sent: %w", err)
	}

	return nil
}

// SentVotes returns the set of pairs already accepted for a stage,
// keyed "a:b" with a < b.
func (s *Store) SentVotes(telegramID int64, stage string) (map[string]bool, error) {
	rows, err := s.db.Query(`
		SELECT object_a, object_b FROM sent_vote
		WHERE telegram_id = ? AND stage = ?
	`, telegramID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to query sent votes: %w", err)
	}
	defer rows.Close()

	sent := make(map[string]bool)
	for rows.Next() {
		var a, b int64
		if err := rows.Scan(&a, &b); err != nil {
			return nil, fmt.Errorf("failed to scan sent vote: %w", err)
		}
		sent[fmt.Sprintf("%d:%d", a, b)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sent votes: %w", err)
	}

	return sent, nil
}

// ClearSentVotes drops the sent set for a stage. Called after a stage
// completes so a future survey round starts clean.
func (s *Store) ClearSentVotes(telegramID int64, stage string) error {
	_, err := s.db.Exec(`
		DELETE FROM sent_vote WHERE telegram_id = ? AND stage = ?
	`, telegramID, stage)
	if err != nil {
		return fmt.Errorf("failed to clear sent votes: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

const (
	keyToken    = "auth_token"
	keyUserData = "user_data"
)

// SQLiteStore persists session state in a small local SQLite database, the
// durable equivalent of the mobile app's device storage.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the session database at path and
// runs the schema migration.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	// A single writer is expected; a second connection would only contend.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS session_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating session store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetToken returns the stored token, or "" when none is set.
func (s *SQLiteStore) GetToken(ctx context.Context) (string, error) {
	return s.get(ctx, keyToken)
}

// SetToken stores the token.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, keyToken, token)
}

// GetUserData returns the cached profile, or nil when none is set or the
// stored blob is unparsable (a corrupt cache reads as absent, it never
// errors the caller out).
func (s *SQLiteStore) GetUserData(ctx context.Context) (*models.User, error) {
	raw, err := s.get(ctx, keyUserData)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// SetUserData caches the profile as a JSON blob.
func (s *SQLiteStore) SetUserData(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.delete(ctx, keyUserData)
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user data: %w", err)
	}
	return s.set(ctx, keyUserData, string(payload))
}

// Clear removes the token and cached profile.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state`)
	if err != nil {
		return fmt.Errorf("clearing session store: %w", err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, now)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

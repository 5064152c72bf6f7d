// Package store persists menu history and learned dietary preferences.
//
// State lives in a SQLite key-value settings table and is mirrored in memory.
// Persistence is best-effort: when the database is unavailable the store keeps
// serving the in-memory copy for the rest of the session instead of failing
// the caller. History is bounded, newest-first; preferences are a single
// comma-separated string edited both by the user and by the constraint merge.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schema string

// settings keys
const (
	keyMenuHistory = "menu_history"
	keyPreferences = "preferences"
)

// Config represents database configuration
type Config struct {
	DSN             string
	HistoryDepth    int
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store owns durable menu history and preference state
type Store struct {
	db           *sqlx.DB // nil when running memory-only
	historyDepth int

	mu          sync.Mutex
	history     []string
	preferences string
}

// New opens the database, initializes the schema and loads persisted state.
// A database that cannot be opened or initialized degrades the store to
// memory-only operation rather than failing the caller.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:dailymenu.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = 5
	}

	s := &Store{historyDepth: cfg.HistoryDepth}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		log.Printf("[WARN] can't open database, running memory-only: %v", err)
		return s, nil
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			log.Printf("[WARN] can't execute %s, running memory-only: %v", pragma, err)
			_ = db.Close()
			return s, nil
		}
	}

	// initialize schema
	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Printf("[WARN] can't init schema, running memory-only: %v", err)
		_ = db.Close()
		return s, nil
	}

	s.db = db
	s.Load(ctx)
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load refreshes state from the database and returns menu history and the
// preference string. It never fails: missing keys yield empty defaults and
// malformed stored history degrades to empty instead of crashing the caller.
func (s *Store) Load(ctx context.Context) (history []string, preferences string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return append([]string{}, s.history...), s.preferences
	}

	if raw := s.getSetting(ctx, keyMenuHistory); raw != "" {
		var loaded []string
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			log.Printf("[WARN] malformed menu history, resetting to empty: %v", err)
			loaded = nil
		}
		s.history = loaded
	}
	if len(s.history) > s.historyDepth {
		s.history = s.history[:s.historyDepth]
	}
	s.preferences = s.getSetting(ctx, keyPreferences)

	return append([]string{}, s.history...), s.preferences
}

// History returns the in-memory menu history, most recent first
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.history...)
}

// Preferences returns the current preference string
func (s *Store) Preferences() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

// AppendMenu inserts a menu at the front of the history, truncates it to the
// configured depth and persists the full resulting sequence
func (s *Store) AppendMenu(ctx context.Context, menu string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]string{menu}, s.history...)
	if len(s.history) > s.historyDepth {
		s.history = s.history[:s.historyDepth]
	}
	s.persistHistory(ctx)
}

// ClearHistory resets menu history to empty and persists that state
func (s *Store) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.persistHistory(ctx)
}

// SetPreferences overwrites the preference string verbatim and persists it.
// The caller is responsible for formatting; this is called on every edit.
func (s *Store) SetPreferences(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences = text
	s.persistSetting(ctx, keyPreferences, text)
}

// MergeConstraints unions newly learned constraints into the preference
// string. Existing preferences are split on commas and trimmed, duplicates
// are dropped by exact string match, and the result is re-joined with ", ".
// Returns the merged string.
func (s *Store) MergeConstraints(ctx context.Context, items []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var merged []string
	for _, tok := range strings.Split(s.preferences, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		merged = append(merged, tok)
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		merged = append(merged, item)
	}

	s.preferences = strings.Join(merged, ", ")
	s.persistSetting(ctx, keyPreferences, s.preferences)
	return s.preferences
}

// persistHistory writes the bounded history list as JSON, caller holds the lock
func (s *Store) persistHistory(ctx context.Context) {
	data, err := json.Marshal(s.history)
	if err != nil {
		log.Printf("[WARN] can't marshal menu history: %v", err)
		return
	}
	s.persistSetting(ctx, keyMenuHistory, string(data))
}

// persistSetting writes a settings row, degrading to memory-only on failure
func (s *Store) persistSetting(ctx context.Context, key, value string) {
	if s.db == nil {
		return
	}
	if err := s.setSetting(ctx, key, value); err != nil {
		log.Printf("[WARN] can't persist %s, keeping in-memory value: %v", key, err)
	}
}

// getSetting retrieves a setting value, empty string when absent
func (s *Store) getSetting(ctx context.Context, key string) string {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		log.Printf("[WARN] can't read setting %s: %v", key, err)
		return ""
	}
	return value
}

// setSetting stores a setting value, retrying transient SQLite lock errors
func (s *Store) setSetting(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		_, err := s.db.ExecContext(ctx, query, key, value)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	})
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

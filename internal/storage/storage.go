// Package storage persists small key/value application state between
// runs.
package storage

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Store is application state handed to the hosted application at setup.
// Writes may be buffered until Flush.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Flush() error
	Close() error
}

// Memory is a Store that forgets everything on exit.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: map[string]string{}}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *Memory) Flush() error { return nil }
func (s *Memory) Close() error { return nil }

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite is a Store backed by a single-table SQLite database. All rows
// are cached in memory; Set only marks keys dirty.
type SQLite struct {
	db *sql.DB

	mu    sync.Mutex
	cache map[string]string
	dirty map[string]bool
}

// OpenSQLite opens or creates the database at path and loads its rows.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	s := &SQLite{db: db, cache: map[string]string{}, dirty: map[string]bool{}}
	rows, err := db.Query(`SELECT key, value FROM kv`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: load: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: load: %w", err)
		}
		s.cache[k] = v
	}
	if err := rows.Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: load: %w", err)
	}
	return s, nil
}

func (s *SQLite) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache[key]
	return v, ok
}

func (s *SQLite) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.cache[key]; ok && old == value {
		return
	}
	s.cache[key] = value
	s.dirty[key] = true
}

// Flush writes dirty keys in one transaction.
func (s *SQLite) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dirty) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: flush: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: flush: %w", err)
	}
	defer stmt.Close()
	for k := range s.dirty {
		if _, err := stmt.Exec(k, s.cache[k]); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: flush %q: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: flush: %w", err)
	}
	s.dirty = map[string]bool{}
	return nil
}

// Close flushes pending writes and closes the database.
func (s *SQLite) Close() error {
	ferr := s.Flush()
	if err := s.db.Close(); err != nil {
		return err
	}
	return ferr
}

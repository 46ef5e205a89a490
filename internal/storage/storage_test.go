package storage

import (
	"path/filepath"
	"testing"
)

func TestMemory(t *testing.T) {
	s := NewMemory()
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected missing key")
	}
	s.Set("a", "1")
	if v, ok := s.Get("a"); !ok || v != "1" {
		t.Fatalf("Get(a) = %q, %v, want 1, true", v, ok)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	s.Set("counter.count", "3")
	s.Set("counter.dark", "1")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	s.Set("counter.count", "4")
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite (reopen): %v", err)
	}
	defer s.Close()
	if v, ok := s.Get("counter.count"); !ok || v != "4" {
		t.Fatalf("Get(counter.count) = %q, %v, want 4, true", v, ok)
	}
	if v, ok := s.Get("counter.dark"); !ok || v != "1" {
		t.Fatalf("Get(counter.dark) = %q, %v, want 1, true", v, ok)
	}
}

func TestSQLiteUnchangedSetIsClean(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()
	s.Set("k", "v")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	s.Set("k", "v")
	if len(s.dirty) != 0 {
		t.Fatalf("dirty = %v, want none", s.dirty)
	}
}

package patternstore

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	s := New(path)

	rec := Record{
		ID:        "abc123",
		Name:      "teardrop",
		Request:   json.RawMessage(`{"profile":[]}`),
		Pattern:   json.RawMessage(`{"rows":[]}`),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := s.Get("abc123")
	if !ok {
		t.Fatal("expected record to exist")
	}
	if got.Name != "teardrop" {
		t.Fatalf("got name %q", got.Name)
	}

	// A fresh store over the same file sees the persisted record.
	s2 := New(path)
	got, ok = s2.Get("abc123")
	if !ok || got.Name != "teardrop" {
		t.Fatalf("reload failed: ok=%v name=%q", ok, got.Name)
	}

	if n := len(s2.List()); n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}
	if !s2.Delete("abc123") {
		t.Fatal("delete reported no record")
	}
	if _, ok := s2.Get("abc123"); ok {
		t.Fatal("record survived delete")
	}
}

func TestFileBackendDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	s := New(path)

	if err := s.Put(Record{ID: "x1", Request: json.RawMessage(`{}`), Pattern: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := s.Get("x1")
	if !ok {
		t.Fatal("expected record")
	}
	if got.Name != "Untitled pattern" {
		t.Fatalf("got name %q", got.Name)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

// Package patternstore persists compiled patterns together with the
// profile and config that produced them, in Postgres when a DSN is
// configured and in a local JSON file otherwise.
package patternstore

import (
	"encoding/json"
	"strings"
	"time"
)

// Record is one saved pattern. Request and Pattern hold the wire-form
// JSON payloads verbatim, so a saved pattern replays without
// recompilation.
type Record struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Request   json.RawMessage `json:"request"`
	Pattern   json.RawMessage `json:"pattern"`
	CreatedAt time.Time       `json:"createdAt"`
}

func normalizeRecord(r Record) Record {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = "Untitled pattern"
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}

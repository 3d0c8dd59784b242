package patternstore

import (
	"strings"
)

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS saved_patterns (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT 'Untitled pattern',
  request JSONB NOT NULL,
  pattern JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_saved_patterns_created_at ON saved_patterns (created_at DESC);
`)
	})
	return s.schemaErr
}

func (s *Store) getDB(id string) (Record, bool) {
	if err := s.ensureSchema(); err != nil {
		return Record{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	row := s.db.QueryRow(`SELECT id, name, request, pattern, created_at
FROM saved_patterns WHERE id = $1`, id)
	var rec Record
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Request, &rec.Pattern, &rec.CreatedAt); err != nil {
		return Record{}, false
	}
	return normalizeRecord(rec), true
}

func (s *Store) putDB(rec Record) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	n := normalizeRecord(rec)
	_, err := s.db.Exec(`
INSERT INTO saved_patterns (id, name, request, pattern, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id)
DO UPDATE SET name=EXCLUDED.name,
  request=EXCLUDED.request,
  pattern=EXCLUDED.pattern`,
		n.ID, n.Name, []byte(n.Request), []byte(n.Pattern), n.CreatedAt)
	return err
}

func (s *Store) listDB() []Record {
	if err := s.ensureSchema(); err != nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, name, request, pattern, created_at
FROM saved_patterns ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Request, &rec.Pattern, &rec.CreatedAt); err != nil {
			continue
		}
		out = append(out, normalizeRecord(rec))
	}
	return out
}

func (s *Store) deleteDB(id string) bool {
	if err := s.ensureSchema(); err != nil {
		return false
	}
	res, err := s.db.Exec(`DELETE FROM saved_patterns WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return false
	}
	n, err := res.RowsAffected()
	return err == nil && n > 0
}

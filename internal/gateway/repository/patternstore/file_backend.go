package patternstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var recs []Record
		if err := json.Unmarshal(b, &recs); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, rec := range recs {
			id := strings.TrimSpace(rec.ID)
			if id == "" {
				continue
			}
			s.byID[id] = normalizeRecord(rec)
		}
	})
}

func (s *Store) saveFile() {
	s.mu.RLock()
	recs := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) getFile(id string) (Record, bool) {
	s.ensureLoadedFile()
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	s.mu.RLock()
	rec, ok := s.byID[id]
	s.mu.RUnlock()
	return rec, ok
}

func (s *Store) putFile(rec Record) error {
	s.ensureLoadedFile()
	n := normalizeRecord(rec)
	if n.ID == "" {
		return nil
	}
	s.mu.Lock()
	s.byID[n.ID] = n
	s.mu.Unlock()
	s.saveFile()
	return nil
}

func (s *Store) listFile() []Record {
	s.ensureLoadedFile()
	s.mu.RLock()
	recs := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })
	return recs
}

func (s *Store) deleteFile(id string) bool {
	s.ensureLoadedFile()
	id = strings.TrimSpace(id)
	s.mu.Lock()
	_, ok := s.byID[id]
	if ok {
		delete(s.byID, id)
	}
	s.mu.Unlock()
	if ok {
		s.saveFile()
	}
	return ok
}

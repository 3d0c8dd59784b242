package patternstore

import (
	"database/sql"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Record

	schemaOnce sync.Once
	schemaErr  error

	recordCache *lru.Cache[string, Record]
}

// New returns a file-backed store at path.
func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]Record),
	}
}

// NewPostgres returns a Postgres-backed store, with a small LRU in
// front of record reads.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Record](256)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db:          db,
		recordCache: cache,
	}, nil
}

// NewFromConfig picks the Postgres backend when a DSN is set and falls
// back to the file backend when it is empty or unreachable.
func NewFromConfig(dsn, path string) *Store {
	if strings.TrimSpace(dsn) == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Get(id string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	if s.db != nil {
		if s.recordCache != nil {
			if rec, ok := s.recordCache.Get(id); ok {
				return rec, true
			}
		}
		rec, ok := s.getDB(id)
		if ok && s.recordCache != nil {
			s.recordCache.Add(id, rec)
		}
		return rec, ok
	}
	return s.getFile(id)
}

func (s *Store) Put(rec Record) error {
	if s == nil {
		return nil
	}
	if s.db != nil {
		err := s.putDB(rec)
		if err == nil && s.recordCache != nil {
			s.recordCache.Remove(rec.ID)
		}
		return err
	}
	return s.putFile(rec)
}

func (s *Store) List() []Record {
	if s == nil {
		return nil
	}
	if s.db != nil {
		return s.listDB()
	}
	return s.listFile()
}

func (s *Store) Delete(id string) bool {
	if s == nil {
		return false
	}
	if s.db != nil {
		ok := s.deleteDB(id)
		if ok && s.recordCache != nil {
			s.recordCache.Remove(id)
		}
		return ok
	}
	return s.deleteFile(id)
}

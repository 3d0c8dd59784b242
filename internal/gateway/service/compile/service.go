// Package compile is the gateway-side service around the compiler
// core: it validates and compiles wire payloads, memoizes results, and
// talks to the saved-pattern and export stores.
package compile

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"amigurumi/internal/export"
	"amigurumi/internal/gateway/repository/artifact"
	"amigurumi/internal/gateway/repository/patternstore"
	"amigurumi/internal/gateway/wire"
	"amigurumi/internal/pattern"
)

type Service struct {
	// Compilation is deterministic, so results can be cached by input
	// hash without invalidation concerns.
	cache     *lru.Cache[string, wire.Pattern]
	patterns  *patternstore.Store
	artifacts *artifact.S3Store
}

// New builds the service. artifacts may be nil when no object storage
// is configured; exports then skip the upload.
func New(cacheSize int, patterns *patternstore.Store, artifacts *artifact.S3Store) (*Service, error) {
	cache, err := lru.New[string, wire.Pattern](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("init compile cache: %w", err)
	}
	return &Service{
		cache:     cache,
		patterns:  patterns,
		artifacts: artifacts,
	}, nil
}

// Validate checks the request against the profile and config
// invariants and returns every violation.
func (s *Service) Validate(req wire.CompileRequest) wire.ValidateResponse {
	var vs []pattern.Violation
	vs = append(vs, pattern.ValidateAnchors(wire.ToAnchors(req.Profile))...)

	// Field checks run even when the decrease style fails to parse, so
	// the editor gets the full violation list in one round trip.
	vs = append(vs, pattern.ValidateConfig(pattern.Config{
		TotalHeightCM: req.Config.TotalHeightCM,
		Gauge: pattern.Gauge{
			StitchesPerCM: req.Config.Gauge.StitchesPerCM,
			RowsPerCM:     req.Config.Gauge.RowsPerCM,
			HookSizeMM:    req.Config.Gauge.HookSizeMM,
		},
	})...)
	if _, err := wire.ParseDecreaseStyle(req.Config.DecreaseStyle); err != nil {
		vs = append(vs, pattern.Violation{
			Field:   "decreaseStyle",
			Code:    "unknown_decrease_style",
			Message: err.Error(),
		})
	}

	return wire.ValidateResponse{
		Valid:      len(vs) == 0,
		Violations: wire.FromViolations(vs),
	}
}

// Compile runs the profile-to-pattern compiler, serving repeated
// requests from the result cache.
func (s *Service) Compile(req wire.CompileRequest) (wire.Pattern, error) {
	key, err := requestKey(req)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	p, compileErr := s.compileNative(req)
	if compileErr != nil {
		return wire.Pattern{}, compileErr
	}
	out := wire.FromPattern(p)
	if err == nil {
		s.cache.Add(key, out)
	}
	return out, nil
}

// Export compiles the request, renders it as plain text, and uploads
// the text to the artifact store when one is configured. It returns
// the rendered text and the object key ("" when uploads are off).
func (s *Service) Export(ctx context.Context, req wire.CompileRequest, name string) (string, string, error) {
	p, err := s.compileNative(req)
	if err != nil {
		return "", "", err
	}
	cfg, err := wire.ToConfig(req.Config)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", pattern.ErrInvalidConfig, err)
	}
	text := export.Text(p, cfg)

	if s.artifacts == nil {
		return text, "", nil
	}
	id, err := requestKey(req)
	if err != nil {
		return text, "", nil
	}
	key, err := s.artifacts.Put(ctx, id[:16], name, []byte(text))
	if err != nil {
		return "", "", fmt.Errorf("upload export: %w", err)
	}
	return text, key, nil
}

// Save persists a compiled pattern alongside its originating request.
func (s *Service) Save(name string, req wire.CompileRequest) (patternstore.Record, error) {
	compiled, err := s.Compile(req)
	if err != nil {
		return patternstore.Record{}, err
	}
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return patternstore.Record{}, err
	}
	patJSON, err := json.Marshal(compiled)
	if err != nil {
		return patternstore.Record{}, err
	}
	rec := patternstore.Record{
		ID:      newID(),
		Name:    name,
		Request: reqJSON,
		Pattern: patJSON,
	}
	if err := s.patterns.Put(rec); err != nil {
		return patternstore.Record{}, fmt.Errorf("save pattern: %w", err)
	}
	saved, _ := s.patterns.Get(rec.ID)
	return saved, nil
}

func (s *Service) Saved(id string) (patternstore.Record, bool) {
	return s.patterns.Get(id)
}

func (s *Service) ListSaved() []patternstore.Record {
	return s.patterns.List()
}

func (s *Service) DeleteSaved(id string) bool {
	return s.patterns.Delete(id)
}

func (s *Service) compileNative(req wire.CompileRequest) (*pattern.Pattern, error) {
	cfg, err := wire.ToConfig(req.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pattern.ErrInvalidConfig, err)
	}
	return pattern.Compile(wire.ToAnchors(req.Profile), cfg)
}

// requestKey hashes the canonical JSON form of a request.
func requestKey(req wire.CompileRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func newID() string {
	var b [9]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "pattern"
	}
	return hex.EncodeToString(b[:])
}

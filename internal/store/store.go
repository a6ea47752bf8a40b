// Package store persists the marketplace as one JSON document.
//
// Every operation loads the whole document from the Backend, works on it in
// memory and, for mutations, writes the whole document back. Nothing is cached
// between calls. Mutations on a single Store are serialized, so concurrent
// requests in one process never lose each other's writes; two processes
// sharing a backend location still race, and the last write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edinacircular/circular-server/internal/domain"
)

// Store wraps a Backend with document encoding and a single-writer lock.
type Store struct {
	backend Backend
	logger  *slog.Logger

	// mu serializes load-modify-save cycles.
	mu sync.Mutex
}

// New creates a Store on top of backend.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		backend: backend,
		logger:  logger,
	}
	logger.Info("document store ready", "backend", backend.Name())
	return s
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the backend.
func (s *Store) Close() error {
	s.logger.Info("closing document store", "backend", s.backend.Name())
	return s.backend.Close()
}

// Load reads the current document. A missing document, or one that cannot be
// parsed, yields an empty document; only backend I/O failures are returned.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	data, err := s.backend.Read(ctx)
	if errors.Is(err, ErrNoDocument) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		s.logger.Warn("stored document is unreadable, starting from empty",
			"backend", s.backend.Name(),
			"error", err,
		)
		return domain.NewDocument(), nil
	}
	doc.Normalize()
	return doc, nil
}

// Save overwrites the stored document with doc.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Update loads the document, applies fn and saves the result. If fn returns an
// error nothing is written. Calls on the same Store run one at a time.
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(ctx, doc)
}

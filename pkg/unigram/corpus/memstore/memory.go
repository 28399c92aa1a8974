// Package memstore is an in-memory corpus.Store for tests and examples.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cognicore/unigram/pkg/unigram/corpus"
	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

// Store is an in-memory implementation of corpus.Store.
type Store struct {
	mu    sync.RWMutex
	ids   *corpus.IDGenerator
	order []string
	docs  map[string]corpus.Document
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		ids:  corpus.NewIDGenerator(),
		docs: make(map[string]corpus.Document),
	}
}

// Close implements corpus.Store.
func (s *Store) Close() error { return nil }

// AddDocument stores a document, assigning an id when missing.
func (s *Store) AddDocument(ctx context.Context, d corpus.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = s.ids.Next()
	}
	if d.AddedAt.IsZero() {
		d.AddedAt = time.Now().UTC()
	}

	if _, ok := s.docs[d.ID]; !ok {
		s.order = append(s.order, d.ID)
	}
	s.docs[d.ID] = copyDoc(d)
	return d.ID, nil
}

// Document returns a stored document by id.
func (s *Store) Document(ctx context.Context, id string) (corpus.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[id]
	if !ok {
		return corpus.Document{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	return copyDoc(d), nil
}

// Documents returns all stored documents in insertion order.
func (s *Store) Documents(ctx context.Context) ([]corpus.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]corpus.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyDoc(s.docs[id]))
	}
	return out, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

func copyDoc(d corpus.Document) corpus.Document {
	tokens := make([]string, len(d.Tokens))
	copy(tokens, d.Tokens)
	d.Tokens = tokens
	return d
}

var _ corpus.Store = (*Store)(nil)

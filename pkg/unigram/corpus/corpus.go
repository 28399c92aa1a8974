// Package corpus stores training documents for the estimator. A document
// is a tokenized text with a source label; stores hand the token streams
// back for vocabulary construction and fitting.
package corpus

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Document is a single stored training text.
type Document struct {
	ID      string
	Source  string
	AddedAt time.Time
	Tokens  []string
}

// Store is the interface for persisting and reading training documents.
type Store interface {
	Close() error

	// AddDocument stores a document and returns its id. A missing id is
	// assigned; a missing AddedAt is set to the current time.
	AddDocument(ctx context.Context, d Document) (string, error)

	// Document returns a stored document by id.
	Document(ctx context.Context, id string) (Document, error)

	// Documents returns all stored documents in insertion order.
	Documents(ctx context.Context) ([]Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}

// IDGenerator issues sortable unique document ids.
type IDGenerator struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates a ULID-based id generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a fresh document id.
func (g *IDGenerator) Next() string {
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}

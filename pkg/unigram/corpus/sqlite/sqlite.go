// Package sqlite persists a training corpus in a SQLite database so it
// can be built up incrementally by the ingest tool and read back for
// training runs.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/unigram/pkg/unigram/corpus"
	"github.com/cognicore/unigram/pkg/unigram/internalerr"
)

// sqliteStore implements corpus.Store using SQLite.
type sqliteStore struct {
	db  *sql.DB
	ids *corpus.IDGenerator
}

// Open opens a SQLite corpus database with WAL mode enabled, creating
// the schema if needed.
func Open(ctx context.Context, path string) (corpus.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:  db,
		ids: corpus.NewIDGenerator(),
	}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	source TEXT,
	added_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS doc_tokens (
	doc_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	token TEXT NOT NULL,
	PRIMARY KEY(doc_id, pos),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_doc_tokens_token ON doc_tokens(token);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AddDocument stores a document and its token sequence in one
// transaction. Token order is preserved via the pos column.
func (s *sqliteStore) AddDocument(ctx context.Context, d corpus.Document) (string, error) {
	if d.ID == "" {
		d.ID = s.ids.Next()
	}
	if d.AddedAt.IsZero() {
		d.AddedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO docs (id, source, added_at) VALUES (?, ?, ?)`,
		d.ID, d.Source, d.AddedAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert doc: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO doc_tokens (doc_id, pos, token) VALUES (?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, tok := range d.Tokens {
		if _, err := stmt.ExecContext(ctx, d.ID, i, tok); err != nil {
			return "", fmt.Errorf("insert token %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return d.ID, nil
}

// Document returns a stored document by id.
func (s *sqliteStore) Document(ctx context.Context, id string) (corpus.Document, error) {
	var d corpus.Document
	var addedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, added_at FROM docs WHERE id = ?`, id).
		Scan(&d.ID, &d.Source, &addedAt)
	if err == sql.ErrNoRows {
		return corpus.Document{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return corpus.Document{}, err
	}

	d.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt)
	if err != nil {
		return corpus.Document{}, fmt.Errorf("parse added_at: %w", err)
	}

	d.Tokens, err = s.docTokens(ctx, id)
	if err != nil {
		return corpus.Document{}, err
	}
	return d, nil
}

// Documents returns all stored documents in insertion order. ULIDs sort
// lexicographically by creation time, so ordering by id is insertion
// order.
func (s *sqliteStore) Documents(ctx context.Context) ([]corpus.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, added_at FROM docs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []corpus.Document
	for rows.Next() {
		var d corpus.Document
		var addedAt string
		if err := rows.Scan(&d.ID, &d.Source, &addedAt); err != nil {
			return nil, err
		}
		d.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt)
		if err != nil {
			return nil, fmt.Errorf("parse added_at: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range docs {
		docs[i].Tokens, err = s.docTokens(ctx, docs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM docs`).Scan(&n)
	return n, err
}

// docTokens reads a document's tokens in position order.
func (s *sqliteStore) docTokens(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT token FROM doc_tokens WHERE doc_id = ? ORDER BY pos`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, rows.Err()
}

var _ corpus.Store = (*sqliteStore)(nil)

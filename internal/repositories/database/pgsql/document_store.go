// Package pgsql persists the document as a single JSONB row, for
// deployments that prefer Postgres over a state file. Semantics are
// identical to the file store: whole-document read and overwrite only.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
)

const documentKey = "default"

// DocumentStore stores the document in the wfbarn_document table keyed by a
// single well-known row.
type DocumentStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ portsrepo.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore creates the store and bootstraps its table.
func NewDocumentStore(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (*DocumentStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &DocumentStore{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DocumentStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS wfbarn_document (
			document_key TEXT PRIMARY KEY,
			doc JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure document table: %w", err)
	}
	return nil
}

// Load returns the persisted document. A missing or undecodable row recovers
// to the default empty document; the caller never sees an error.
func (s *DocumentStore) Load(ctx context.Context) domain.Document {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM wfbarn_document WHERE document_key = $1`, documentKey,
	).Scan(&raw)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("Failed to load document row, starting empty",
				slog.String("error", err.Error()))
		}
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("Stored document is malformed, starting empty",
			slog.String("error", err.Error()))
		return domain.NewDocument()
	}
	return doc.Normalize()
}

// Save overwrites the persisted document row.
func (s *DocumentStore) Save(ctx context.Context, doc domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO wfbarn_document (document_key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (document_key)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		documentKey, raw)
	if err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

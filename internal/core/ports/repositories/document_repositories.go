package repositories

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// DocumentStore persists the whole document locally. There is no partial
// update: Save overwrites the entire persisted representation.
type DocumentStore interface {
	// Load returns the persisted document, or the default empty document
	// when storage is missing or unreadable. It never fails: local storage
	// problems are recovered silently and must not surface to the user.
	Load(ctx context.Context) domain.Document

	// Save overwrites the persisted document.
	Save(ctx context.Context, doc domain.Document) error
}

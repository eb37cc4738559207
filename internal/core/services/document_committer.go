package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
)

// documentCommitter is the single write path shared by every command
// service: apply a mutation through the state container, then persist the
// resulting document to the local store before the container lock is
// released. Keeping the save inside the lock means documents reach storage
// in the order they were installed, even under concurrent requests.
// Synchronization is a reconciliation layer on top of this and never
// blocks it.
type documentCommitter struct {
	container *state.Container
	store     portsrepo.DocumentStore
}

// commit runs mutate and saves the result. A mutate error rejects the
// command outright: nothing is installed, no subscriber is notified and
// nothing is written to the store.
func (dc *documentCommitter) commit(ctx context.Context, mutate func(domain.Document) (domain.Document, error)) (domain.Document, error) {
	return dc.container.UpdateAndPersist(mutate, func(doc domain.Document) error {
		return dc.store.Save(ctx, doc)
	})
}

// snapshot returns the current document copy for read-only operations.
func (dc *documentCommitter) snapshot() domain.Document {
	return dc.container.Snapshot()
}

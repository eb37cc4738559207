package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// SyncSvcFacade drives the pull-merge-push reconciliation against the
// configured remote.
type SyncSvcFacade interface {
	// RequestSync starts a sync run on a background goroutine. At most one
	// run is in flight at a time; while one is running, further requests
	// are dropped (not queued) and RequestSync returns false.
	RequestSync() bool

	// Status returns the latest stage snapshot.
	Status() domain.SyncStatus

	// Subscribe registers a status observer; every state-machine
	// transition is delivered as a snapshot. The cancel function
	// unregisters the observer.
	Subscribe(buffer int) (<-chan domain.SyncStatus, func())

	// StartAutoSync launches the periodic trigger loop; it runs until ctx
	// is cancelled or Stop is called. Ticks are dropped while auto-sync is
	// disabled in the current configuration.
	StartAutoSync(ctx context.Context)
	Stop()

	SyncConfigListener
}

package repositories

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// RemoteStore is the transport to the configured remote document endpoint.
// Implementations are stateless with respect to the endpoint: the current
// sync configuration is passed on every call because it lives inside the
// synchronized document and may change between runs.
type RemoteStore interface {
	// Download fetches the remote document. A missing remote document
	// (not-found or conflict response) returns (nil, nil); that is the
	// bootstrap signal, not an error. Transport failures return
	// apperrors.ErrTransport, ErrAuthFailed or ErrRemoteConflict wrapped
	// with a human-readable reason.
	Download(ctx context.Context, cfg domain.SyncConfig) (*domain.Document, error)

	// Upload serializes and writes the document to the remote path,
	// creating every intermediate collection that does not exist yet.
	Upload(ctx context.Context, cfg domain.SyncConfig, doc domain.Document) error
}

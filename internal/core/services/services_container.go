package services

import (
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, container *state.Container, store portsrepo.DocumentStore, remote portsrepo.RemoteStore) *portssvc.ServiceContainer {
	svcs := &portssvc.ServiceContainer{}

	svcs.Portfolio = NewPortfolioService(container, store)
	svcs.Transaction = NewTransactionService(container, store)
	svcs.Macro = NewMacroService(container, store)
	svcs.Reporting = NewReportingService(container)

	svcs.Sync = NewSyncService(container, store, remote,
		WithSyncInterval(cfg.SyncInterval),
		WithResetDelay(cfg.SyncResetDelay),
	)

	// Settings must tell the sync scheduler about config changes, so wire the
	// listener after both services exist.
	settings := NewSettingsService(container, store)
	settings.SetSyncConfigListener(svcs.Sync)
	svcs.Settings = settings

	return svcs
}

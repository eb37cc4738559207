package services

import (
	"context"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// SettingsSvcFacade covers display preferences and the sync configuration.
type SettingsSvcFacade interface {
	// ToggleDarkMode flips the preference and returns the new value.
	ToggleDarkMode(ctx context.Context) (bool, error)
	IsDarkMode(ctx context.Context) bool

	GetSyncConfig(ctx context.Context) domain.SyncConfig
	// UpdateSyncConfig applies the update and notifies the sync scheduler
	// so a toggled auto-sync flag restarts the timer from zero.
	UpdateSyncConfig(ctx context.Context, update domain.SyncConfigUpdate) (domain.SyncConfig, error)
}

// SyncConfigListener is notified after the sync configuration changes.
// Implemented by the sync service to restart its scheduler.
type SyncConfigListener interface {
	SyncConfigUpdated(previous, current domain.SyncConfig)
}

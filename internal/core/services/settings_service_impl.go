package services

import (
	"context"
	"log/slog"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
)

// settingsServiceImpl implements the SettingsSvcFacade interface
type settingsServiceImpl struct {
	BaseService
	documentCommitter
	syncListener portssvc.SyncConfigListener
}

// NewSettingsService creates the settings service over the shared state
// container and local store.
func NewSettingsService(container *state.Container, store portsrepo.DocumentStore) *SettingsService {
	return &SettingsService{settingsServiceImpl{
		documentCommitter: documentCommitter{container: container, store: store},
	}}
}

// SettingsService is the exported concrete type so the container can wire
// the sync listener after both services exist.
type SettingsService struct {
	settingsServiceImpl
}

// SetSyncConfigListener wires the sync service that must be told about
// configuration changes. Called once during container assembly.
func (s *SettingsService) SetSyncConfigListener(l portssvc.SyncConfigListener) {
	s.syncListener = l
}

var _ portssvc.SettingsSvcFacade = (*SettingsService)(nil)

// ToggleDarkMode flips the display preference and returns the new value.
func (s *settingsServiceImpl) ToggleDarkMode(ctx context.Context) (bool, error) {
	var dark bool
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		doc.IsDarkMode = !doc.IsDarkMode
		dark = doc.IsDarkMode
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist dark mode toggle")
		return false, err
	}
	return dark, nil
}

func (s *settingsServiceImpl) IsDarkMode(ctx context.Context) bool {
	return s.snapshot().IsDarkMode
}

func (s *settingsServiceImpl) GetSyncConfig(ctx context.Context) domain.SyncConfig {
	return s.snapshot().SyncConfig
}

// UpdateSyncConfig applies the update-builder to the stored configuration
// and notifies the sync service so a flipped auto-sync flag restarts the
// timer from zero.
func (s *settingsServiceImpl) UpdateSyncConfig(ctx context.Context, update domain.SyncConfigUpdate) (domain.SyncConfig, error) {
	var previous, current domain.SyncConfig
	_, err := s.commit(ctx, func(doc domain.Document) (domain.Document, error) {
		previous = doc.SyncConfig
		doc.SyncConfig = doc.SyncConfig.With(update)
		current = doc.SyncConfig
		return doc, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist sync config update")
		return domain.SyncConfig{}, err
	}

	if s.syncListener != nil {
		s.syncListener.SyncConfigUpdated(previous, current)
	}

	s.LogInfo(ctx, "Sync config updated",
		slog.String("base_url", current.BaseURL),
		slog.Bool("auto_sync", current.AutoSyncEnabled))
	return current, nil
}

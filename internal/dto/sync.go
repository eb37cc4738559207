package dto

import (
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
)

// UpdateSyncConfigRequest updates the WebDAV remote configuration.
// Nil fields are left unchanged.
type UpdateSyncConfigRequest struct {
	BaseURL         *string `json:"baseUrl" binding:"omitempty,url"`
	SubPath         *string `json:"subPath"`
	Username        *string `json:"username"`
	Password        *string `json:"password"`
	AutoSyncEnabled *bool   `json:"autoSyncEnabled"`
}

// ToSyncConfigUpdate converts the request into the domain update-builder.
func (r UpdateSyncConfigRequest) ToSyncConfigUpdate() domain.SyncConfigUpdate {
	return domain.SyncConfigUpdate{
		BaseURL:         r.BaseURL,
		SubPath:         r.SubPath,
		Username:        r.Username,
		Password:        r.Password,
		AutoSyncEnabled: r.AutoSyncEnabled,
	}
}

// SyncConfigResponse is the sync configuration with the password redacted.
type SyncConfigResponse struct {
	BaseURL           string `json:"baseUrl"`
	SubPath           string `json:"subPath"`
	Username          string `json:"username"`
	HasPassword       bool   `json:"hasPassword"`
	AutoSyncEnabled   bool   `json:"autoSyncEnabled"`
	LastSyncTimestamp int64  `json:"lastSyncTimestamp"`
}

// ToSyncConfigResponse converts a domain.SyncConfig to its redacted DTO.
func ToSyncConfigResponse(c domain.SyncConfig) SyncConfigResponse {
	return SyncConfigResponse{
		BaseURL:           c.BaseURL,
		SubPath:           c.SubPath,
		Username:          c.Username,
		HasPassword:       c.Password != "",
		AutoSyncEnabled:   c.AutoSyncEnabled,
		LastSyncTimestamp: c.LastSyncTimestamp,
	}
}

// SyncStatusResponse is the status snapshot exposed to the UI.
type SyncStatusResponse struct {
	Stage             domain.SyncStage `json:"stage"`
	Message           string           `json:"message"`
	LastSyncTimestamp int64            `json:"lastSyncTimestamp"`
	IsError           bool             `json:"isError"`
}

// ToSyncStatusResponse converts a domain.SyncStatus to its response DTO.
func ToSyncStatusResponse(s domain.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		Stage:             s.Stage,
		Message:           s.Message,
		LastSyncTimestamp: s.LastSyncTimestamp,
		IsError:           s.IsError,
	}
}

// SettingsResponse bundles the display preference with the redacted sync
// configuration for the settings screen.
type SettingsResponse struct {
	IsDarkMode bool               `json:"isDarkMode"`
	SyncConfig SyncConfigResponse `json:"syncConfig"`
}

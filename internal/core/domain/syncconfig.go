package domain

import "strings"

// SyncConfig describes the WebDAV remote a document synchronizes against.
// It travels inside the synchronized document itself, so a remote copy can
// carry configuration back to the same device or to a different one.
// Treat values as immutable; derive changed copies via With.
type SyncConfig struct {
	BaseURL           string `json:"baseUrl"`
	SubPath           string `json:"subPath"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	AutoSyncEnabled   bool   `json:"autoSyncEnabled"`
	LastSyncTimestamp int64  `json:"lastSyncTimestamp"` // unix millis of the last successful sync
}

// SyncConfigUpdate is the explicit update-builder for SyncConfig. Nil fields
// are left unchanged.
type SyncConfigUpdate struct {
	BaseURL         *string
	SubPath         *string
	Username        *string
	Password        *string
	AutoSyncEnabled *bool
}

// With returns a copy of c with the non-nil fields of u applied.
func (c SyncConfig) With(u SyncConfigUpdate) SyncConfig {
	next := c
	if u.BaseURL != nil {
		next.BaseURL = *u.BaseURL
	}
	if u.SubPath != nil {
		next.SubPath = *u.SubPath
	}
	if u.Username != nil {
		next.Username = *u.Username
	}
	if u.Password != nil {
		next.Password = *u.Password
	}
	if u.AutoSyncEnabled != nil {
		next.AutoSyncEnabled = *u.AutoSyncEnabled
	}
	return next
}

// WithLastSync returns a copy of c stamped with a new last-sync timestamp.
func (c SyncConfig) WithLastSync(unixMillis int64) SyncConfig {
	next := c
	next.LastSyncTimestamp = unixMillis
	return next
}

// NormalizedSubPath returns the sub-path with exactly one leading slash.
func (c SyncConfig) NormalizedSubPath() string {
	p := strings.TrimLeft(c.SubPath, "/")
	return "/" + p
}

// IsConfigured reports whether a remote endpoint has been set at all.
func (c SyncConfig) IsConfigured() bool {
	return strings.TrimSpace(c.BaseURL) != ""
}

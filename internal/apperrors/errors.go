package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Sync transport taxonomy. The orchestrator translates these into the
// user-visible Failed stage message; none of them crash the application.

// ErrTransport indicates a network-level failure talking to the remote
// (timeout, DNS, connection refused, unexpected status).
var ErrTransport = errors.New("transport failure")

// ErrAuthFailed indicates the remote rejected the configured credentials.
var ErrAuthFailed = errors.New("authentication failed")

// ErrRemoteConflict indicates the remote path collides with a non-document
// resource (e.g. the document path is itself a collection).
var ErrRemoteConflict = errors.New("remote path conflict")

// ErrSyncNotConfigured indicates the remote URL is blank; no network I/O is
// attempted in that case.
var ErrSyncNotConfigured = errors.New("sync remote not configured")

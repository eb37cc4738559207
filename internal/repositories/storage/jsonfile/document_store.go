// Package jsonfile persists the document as a single pretty-printed JSON
// file at a well-known location, the default store for desktop use.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
)

const stateFileName = "state.json"

// DocumentStore reads and writes the whole document to <dir>/state.json.
type DocumentStore struct {
	dir    string
	logger *slog.Logger
}

var _ portsrepo.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore creates the store rooted at dataDir, creating the
// directory if needed. An empty dataDir defaults to ~/Documents/WFBarn.
func NewDocumentStore(dataDir string, logger *slog.Logger) (*DocumentStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, "Documents", "WFBarn")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &DocumentStore{dir: dataDir, logger: logger}, nil
}

// Path returns the full path of the state file.
func (s *DocumentStore) Path() string {
	return filepath.Join(s.dir, stateFileName)
}

// Load returns the persisted document. A missing or unreadable file recovers
// to the default empty document; the caller never sees an error.
func (s *DocumentStore) Load(_ context.Context) domain.Document {
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to read state file, starting empty",
				slog.String("path", s.Path()), slog.String("error", err.Error()))
		}
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("State file is malformed, starting empty",
			slog.String("path", s.Path()), slog.String("error", err.Error()))
		return domain.NewDocument()
	}
	return doc.Normalize()
}

// Save overwrites the state file with the given document. The write goes
// through a temp file and rename so a crash mid-write cannot corrupt the
// previous state.
func (s *DocumentStore) Save(_ context.Context, doc domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

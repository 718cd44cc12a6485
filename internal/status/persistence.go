// Package status persists the sync controller's connection status across runs.
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:generate mockgen -destination=mocks/mock_status_persistence.go -package=mocks -source=persistence.go StatusPersistence

const (
	// StatusFileName is the name of the status file
	StatusFileName = "status.json"
)

// StatusPersistence stores the connection status
//
//nolint:revive // This name is fine
type StatusPersistence interface {
	// SaveStatus saves the connection status
	SaveStatus(ctx context.Context, status *ConnectionStatus) error

	// LoadStatus loads the connection status.
	// Returns an empty ConnectionStatus if nothing was saved yet (first run)
	LoadStatus(ctx context.Context) (*ConnectionStatus, error)
}

type fileStatusPersistence struct {
	dir string
}

// NewFileStatusPersistence creates a status persistence writing status.json in dir
func NewFileStatusPersistence(dir string) StatusPersistence {
	return &fileStatusPersistence{
		dir: dir,
	}
}

// SaveStatus writes the status through a temporary file and an atomic rename
func (f *fileStatusPersistence) SaveStatus(_ context.Context, status *ConnectionStatus) error {
	if err := os.MkdirAll(f.dir, 0750); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	filePath := filepath.Join(f.dir, StatusFileName)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary status file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename status file: %w", err)
	}
	return nil
}

// LoadStatus reads status.json, returning an empty status when it does not exist
func (f *fileStatusPersistence) LoadStatus(_ context.Context) (*ConnectionStatus, error) {
	// #nosec G304 -- path is built from the configured data directory
	data, err := os.ReadFile(filepath.Join(f.dir, StatusFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &ConnectionStatus{}, nil
		}
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var status ConnectionStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status: %w", err)
	}
	return &status, nil
}

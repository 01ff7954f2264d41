package commands

import (
	"context"
	"fmt"
	"os"

	"filesense/internal/application"
	"filesense/internal/config"
)

// SelectFolderResult contains the chosen folder path
type SelectFolderResult struct {
	Path    string
	Message string
}

// SelectFolderCommand returns the configured default scan folder.
// A real folder-picker UI may override this choice; the command only
// guarantees the location exists.
type SelectFolderCommand struct{}

// NewSelectFolderCommand creates a new SelectFolderCommand
func NewSelectFolderCommand() *SelectFolderCommand {
	return &SelectFolderCommand{}
}

// Execute resolves and checks the default folder
func (c *SelectFolderCommand) Execute(ctx context.Context) (*SelectFolderResult, error) {
	path := config.ExpandHome(config.ScanFolder())

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("default folder %w: %s", application.ErrNotFound, path)
	}

	return &SelectFolderResult{
		Path:    path,
		Message: fmt.Sprintf("Using folder: %s", path),
	}, nil
}

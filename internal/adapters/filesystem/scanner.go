package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"filesense/internal/application"
	"filesense/internal/config"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// Scanner implements ports.FolderScanner over the local filesystem
type Scanner struct{}

// Ensure Scanner implements FolderScanner
var _ ports.FolderScanner = (*Scanner)(nil)

// NewScanner creates a new filesystem scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Analyze lists the immediate entries of folderPath and classifies each
// file. Subdirectories and dotfiles are skipped; entries that vanish
// mid-scan are recorded as diagnostics rather than failing the scan.
func (s *Scanner) Analyze(folderPath string) (*domain.FolderAnalysis, error) {
	folderPath = config.ExpandHome(folderPath)

	info, err := os.Stat(folderPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("folder %w: %s", application.ErrNotFound, folderPath)
		}
		return nil, &application.ScanError{Path: folderPath, Err: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", application.ErrNotADirectory, folderPath)
	}

	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, &application.ScanError{Path: folderPath, Err: err}
	}

	analysis := domain.NewFolderAnalysis()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		// Size falls back to 0 when metadata cannot be read; only an
		// entry that disappeared entirely is skipped.
		var size int64
		fi, err := entry.Info()
		switch {
		case err == nil:
			size = fi.Size()
		case errors.Is(err, fs.ErrNotExist):
			analysis.Skipped = append(analysis.Skipped,
				fmt.Sprintf("%s: entry disappeared during scan", name))
			continue
		}

		analysis.Add(domain.NewFileRecord(name, filepath.Join(folderPath, name), size))
	}

	return analysis, nil
}

package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filesense/internal/application"
	"filesense/internal/domain"
)

// stubScanner returns a canned analysis
type stubScanner struct {
	analysis *domain.FolderAnalysis
	err      error
}

func (s *stubScanner) Analyze(folderPath string) (*domain.FolderAnalysis, error) {
	return s.analysis, s.err
}

func TestAnalyzeCommand_Validate(t *testing.T) {
	cmd := NewAnalyzeCommand(&stubScanner{}, "")
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for empty folder path")
	}

	cmd = NewAnalyzeCommand(&stubScanner{}, "/tmp")
	if err := cmd.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAnalyzeCommand_Execute(t *testing.T) {
	analysis := domain.NewFolderAnalysis()
	analysis.Add(domain.NewFileRecord("notes.txt", "/tmp/notes.txt", 5))

	cmd := NewAnalyzeCommand(&stubScanner{analysis: analysis}, "/tmp")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Analysis.TotalFiles != 1 {
		t.Errorf("expected 1 file, got %d", result.Analysis.TotalFiles)
	}
	if result.Message != "Analyzed 1 files in /tmp" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestSelectFolderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FILESENSE_FOLDER", dir)

	result, err := NewSelectFolderCommand().Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != dir {
		t.Errorf("expected %s, got %s", dir, result.Path)
	}
}

func TestSelectFolderCommandMissingFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	t.Setenv("FILESENSE_FOLDER", missing)

	if _, err := os.Stat(missing); err == nil {
		t.Fatal("test folder unexpectedly exists")
	}
	_, err := NewSelectFolderCommand().Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

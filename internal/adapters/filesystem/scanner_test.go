package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filesense/internal/application"
	"filesense/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeEmptyFolder(t *testing.T) {
	dir := t.TempDir()

	analysis, err := NewScanner().Analyze(dir)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analysis.TotalFiles != 0 {
		t.Errorf("expected 0 files, got %d", analysis.TotalFiles)
	}
	if len(analysis.Categories) != 11 {
		t.Errorf("expected 11 category keys, got %d", len(analysis.Categories))
	}
	for _, c := range domain.Categories() {
		if records, ok := analysis.Categories[c]; !ok || len(records) != 0 {
			t.Errorf("category %s: present=%v len=%d", c, ok, len(records))
		}
	}
}

func TestAnalyzeClassifiesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "hello")
	writeFile(t, dir, "song.mp3", "audio")
	writeFile(t, dir, "tax_return.pdf", "secret")

	analysis, err := NewScanner().Analyze(dir)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analysis.TotalFiles != 3 {
		t.Errorf("expected 3 files, got %d", analysis.TotalFiles)
	}
	if n := len(analysis.Categories[domain.CategoryDocuments]); n != 1 {
		t.Errorf("expected 1 document, got %d", n)
	}
	if n := len(analysis.Categories[domain.CategoryAudio]); n != 1 {
		t.Errorf("expected 1 audio file, got %d", n)
	}
	if n := len(analysis.Categories[domain.CategorySensitive]); n != 1 {
		t.Errorf("expected 1 sensitive file, got %d", n)
	}

	doc := analysis.Categories[domain.CategoryDocuments][0]
	if doc.Name != "notes.txt" {
		t.Errorf("unexpected document name: %s", doc.Name)
	}
	if doc.Path != filepath.Join(dir, "notes.txt") {
		t.Errorf("unexpected document path: %s", doc.Path)
	}
	if doc.Size != int64(len("hello")) {
		t.Errorf("unexpected document size: %d", doc.Size)
	}
	if doc.Extension != "txt" {
		t.Errorf("unexpected extension: %s", doc.Extension)
	}
}

func TestAnalyzeSkipsDirectoriesAndHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.txt", "x")
	writeFile(t, dir, ".hidden", "x")
	if err := os.Mkdir(filepath.Join(dir, "subfolder"), 0755); err != nil {
		t.Fatalf("failed to create subfolder: %v", err)
	}

	analysis, err := NewScanner().Analyze(dir)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analysis.TotalFiles != 1 {
		t.Errorf("expected 1 file, got %d", analysis.TotalFiles)
	}
}

func TestAnalyzeNonexistentFolder(t *testing.T) {
	_, err := NewScanner().Analyze(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzeRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.txt", "x")

	_, err := NewScanner().Analyze(path)
	if !errors.Is(err, application.ErrNotADirectory) {
		t.Errorf("expected ErrNotADirectory, got %v", err)
	}
}

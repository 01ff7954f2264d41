package domain

import "testing"

func TestNewFolderAnalysisHasAllCategories(t *testing.T) {
	analysis := NewFolderAnalysis()

	if analysis.TotalFiles != 0 {
		t.Errorf("expected 0 total files, got %d", analysis.TotalFiles)
	}
	if len(analysis.Categories) != 11 {
		t.Errorf("expected 11 category keys, got %d", len(analysis.Categories))
	}
	for _, c := range Categories() {
		records, ok := analysis.Categories[c]
		if !ok {
			t.Errorf("category %s missing from empty analysis", c)
			continue
		}
		if len(records) != 0 {
			t.Errorf("category %s not empty: %d records", c, len(records))
		}
	}
}

func TestFolderAnalysisAdd(t *testing.T) {
	analysis := NewFolderAnalysis()

	got := analysis.Add(NewFileRecord("notes.txt", "/tmp/notes.txt", 10))
	if got != CategoryDocuments {
		t.Fatalf("expected Documents, got %s", got)
	}
	analysis.Add(NewFileRecord("song.mp3", "/tmp/song.mp3", 20))

	if analysis.TotalFiles != 2 {
		t.Errorf("expected 2 total files, got %d", analysis.TotalFiles)
	}
	if len(analysis.Categories[CategoryDocuments]) != 1 {
		t.Errorf("expected 1 document, got %d", len(analysis.Categories[CategoryDocuments]))
	}

	summary := analysis.Summary()
	if len(summary) != 2 {
		t.Fatalf("expected 2 non-empty categories in summary, got %d", len(summary))
	}
	// Summary follows display order: Documents before Audio
	if summary[0].Category != CategoryDocuments || summary[1].Category != CategoryAudio {
		t.Errorf("unexpected summary order: %v", summary)
	}
}

func TestBuildPlan(t *testing.T) {
	analysis := NewFolderAnalysis()
	analysis.Add(NewFileRecord("notes.txt", "/src/notes.txt", 0))
	analysis.Add(NewFileRecord("song.mp3", "/src/song.mp3", 0))
	analysis.Add(NewFileRecord("letter.odt", "/src/letter.odt", 0))

	plan := BuildPlan(analysis, "/dst")

	if plan.TargetRoot != "/dst" {
		t.Errorf("expected target root /dst, got %s", plan.TargetRoot)
	}
	if plan.FileCount() != 3 {
		t.Errorf("expected 3 planned files, got %d", plan.FileCount())
	}
	if len(plan.Categories) != 2 {
		t.Errorf("expected 2 plan categories, got %d", len(plan.Categories))
	}
	docs := plan.Categories["Documents"]
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents in plan, got %d", len(docs))
	}
	if docs[0].Path != "/src/notes.txt" {
		t.Errorf("unexpected first document path: %s", docs[0].Path)
	}
	if _, ok := plan.Categories["Images"]; ok {
		t.Error("empty category should not appear in plan")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, ok := ParseCategory(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseCategory("Stray"); ok {
		t.Error("expected unknown name to not parse")
	}
}

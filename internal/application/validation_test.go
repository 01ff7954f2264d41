package application

import (
	"errors"
	"testing"
)

func TestParsePlan(t *testing.T) {
	raw := map[string]any{
		"target_root": "/dst",
		"Documents": []any{
			map[string]any{"path": "/src/a.txt"},
			map[string]any{"path": "/src/b.txt"},
		},
		"Audio": []any{
			map[string]any{"path": "/src/song.mp3"},
		},
	}

	plan, warnings, err := ParsePlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if plan.TargetRoot != "/dst" {
		t.Errorf("expected target root /dst, got %s", plan.TargetRoot)
	}
	if len(plan.Categories["Documents"]) != 2 {
		t.Errorf("expected 2 documents, got %d", len(plan.Categories["Documents"]))
	}
	if plan.Categories["Documents"][0].Path != "/src/a.txt" {
		t.Errorf("entry order not preserved: %v", plan.Categories["Documents"])
	}
}

func TestParsePlanInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"nil plan", nil},
		{"missing target_root", map[string]any{"Documents": []any{}}},
		{"target_root not a string", map[string]any{"target_root": 7}},
		{"target_root empty", map[string]any{"target_root": "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePlan(tt.raw)
			if !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("expected ErrInvalidPlan, got %v", err)
			}
		})
	}
}

func TestParsePlanSkipsMalformedEntriesWithWarnings(t *testing.T) {
	raw := map[string]any{
		"target_root": "/dst",
		"Documents": []any{
			map[string]any{"path": "/src/a.txt"},
			"not an object",
			map[string]any{"size": 12},
		},
		"extra_field": "tolerated but flagged",
	}

	plan, warnings, err := ParsePlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Categories["Documents"]) != 1 {
		t.Errorf("expected 1 usable document, got %d", len(plan.Categories["Documents"]))
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("folder path", "  "); err == nil {
		t.Error("expected error for blank value")
	}
	if err := ValidateRequired("folder path", "/tmp"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

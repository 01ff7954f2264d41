package commands

import (
	"context"
	"errors"
	"testing"

	"filesense/internal/application"
	"filesense/internal/domain"
)

// stubOrganizer returns canned results for command-layer tests
type stubOrganizer struct {
	moves    []domain.MoveRecord
	restored int
	err      error
}

func (s *stubOrganizer) Organize(plan *domain.OrganizationPlan) ([]domain.MoveRecord, error) {
	return s.moves, s.err
}

func (s *stubOrganizer) Undo(log []domain.MoveRecord) (int, error) {
	return s.restored, s.err
}

func TestOrganizeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		plan    *domain.OrganizationPlan
		wantErr bool
	}{
		{
			name:    "valid plan",
			plan:    &domain.OrganizationPlan{TargetRoot: "/dst"},
			wantErr: false,
		},
		{
			name:    "nil plan",
			plan:    nil,
			wantErr: true,
		},
		{
			name:    "blank target root",
			plan:    &domain.OrganizationPlan{TargetRoot: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &OrganizeCommand{Plan: tt.plan}
			err := cmd.Validate()

			if tt.wantErr {
				if !errors.Is(err, application.ErrInvalidPlan) {
					t.Errorf("expected ErrInvalidPlan, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOrganizeCommand_ExecuteReturnsLogOnPartialFailure(t *testing.T) {
	moves := []domain.MoveRecord{{From: "/src/a.txt", To: "/dst/Documents/a.txt"}}
	aggErr := &application.AggregateError{
		Op: "organize", Verb: "Moved", Succeeded: 1,
		Failures: []string{"failed to move /src/b.txt: permission denied"},
	}
	mover := &stubOrganizer{moves: moves, err: aggErr}

	cmd := NewOrganizeCommand(mover, &domain.OrganizationPlan{TargetRoot: "/dst"})
	result, err := cmd.Execute(context.Background())

	if !errors.Is(err, error(aggErr)) {
		t.Fatalf("expected aggregate error, got %v", err)
	}
	if result == nil {
		t.Fatal("result must be returned alongside the aggregate error")
	}
	if len(result.Moves) != 1 {
		t.Errorf("expected the partial move log, got %v", result.Moves)
	}
}

func TestOrganizeCommand_ExecuteSuccess(t *testing.T) {
	moves := []domain.MoveRecord{
		{From: "/src/a.txt", To: "/dst/Documents/a.txt"},
		{From: "/src/b.mp3", To: "/dst/Audio/b.mp3"},
	}
	mover := &stubOrganizer{moves: moves}

	cmd := NewOrganizeCommand(mover, &domain.OrganizationPlan{TargetRoot: "/dst"})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Organized 2 files successfully" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestNewOrganizeCommandFromValue(t *testing.T) {
	raw := map[string]any{
		"target_root": "/dst",
		"Documents":   []any{map[string]any{"path": "/src/a.txt"}},
		"junk":        42,
	}

	cmd, err := NewOrganizeCommandFromValue(&stubOrganizer{}, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", cmd.Warnings)
	}
	if len(cmd.Plan.Categories["Documents"]) != 1 {
		t.Errorf("plan not parsed: %+v", cmd.Plan)
	}

	if _, err := NewOrganizeCommandFromValue(&stubOrganizer{}, map[string]any{}); !errors.Is(err, application.ErrInvalidPlan) {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
}

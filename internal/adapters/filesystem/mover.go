package filesystem

import (
	"os"
	"path/filepath"
	"sort"

	"filesense/internal/application"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// Mover implements ports.Organizer with plain filesystem renames.
// Renames are assumed atomic at the single-file level; cross-device
// moves are out of scope.
type Mover struct{}

// Ensure Mover implements Organizer
var _ ports.Organizer = (*Mover)(nil)

// NewMover creates a new filesystem mover
func NewMover() *Mover {
	return &Mover{}
}

// Organize moves every planned file into target_root/<category>.
// Per-item failures are accumulated, not fail-fast: a failed directory
// creation skips that category, a failed rename skips that file, and
// the rest of the batch proceeds. The returned move records cover every
// rename that succeeded, including on the error path.
//
// Collision policy: if the destination path already exists the move is
// rejected and reported; existing files are never overwritten.
func (m *Mover) Organize(plan *domain.OrganizationPlan) ([]domain.MoveRecord, error) {
	moves := []domain.MoveRecord{}
	var failures []string

	// Sorted for deterministic execution and error ordering.
	categories := make([]string, 0, len(plan.Categories))
	for category := range plan.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		categoryDir := filepath.Join(plan.TargetRoot, category)
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			dirErr := &application.DirCreateError{Path: categoryDir, Err: err}
			failures = append(failures, dirErr.Error())
			continue
		}

		for _, ref := range plan.Categories[category] {
			dest := filepath.Join(categoryDir, filepath.Base(ref.Path))

			if _, err := os.Lstat(dest); err == nil {
				moveErr := &application.MoveError{
					From:   ref.Path,
					To:     dest,
					Reason: "destination already exists: " + dest,
				}
				failures = append(failures, moveErr.Error())
				continue
			}

			if err := os.Rename(ref.Path, dest); err != nil {
				moveErr := &application.MoveError{
					From:   ref.Path,
					To:     dest,
					Reason: err.Error(),
				}
				failures = append(failures, moveErr.Error())
				continue
			}

			moves = append(moves, domain.MoveRecord{From: ref.Path, To: dest})
		}
	}

	if len(failures) > 0 {
		return moves, &application.AggregateError{
			Op:        "organize",
			Verb:      "Moved",
			Succeeded: len(moves),
			Failures:  failures,
		}
	}
	return moves, nil
}

// Undo reverses each recorded move, accumulating failures the same way
// Organize does, then removes category directories left empty by the
// restores. Directory cleanup is best-effort; removal failures are
// swallowed.
func (m *Mover) Undo(log []domain.MoveRecord) (int, error) {
	restored := 0
	var failures []string

	// Category directories created during organize, checked for
	// emptiness after all restores have been attempted.
	parents := make(map[string]struct{})
	for _, rec := range log {
		parents[filepath.Dir(rec.To)] = struct{}{}
	}

	for _, rec := range log {
		if _, err := os.Lstat(rec.From); err == nil {
			moveErr := &application.MoveError{
				From:   rec.To,
				To:     rec.From,
				Reason: "original path already occupied: " + rec.From,
			}
			failures = append(failures, moveErr.Error())
			continue
		}

		if err := os.Rename(rec.To, rec.From); err != nil {
			moveErr := &application.MoveError{
				From:   rec.To,
				To:     rec.From,
				Reason: err.Error(),
			}
			failures = append(failures, moveErr.Error())
			continue
		}
		restored++
	}

	for dir := range parents {
		if isEmptyDir(dir) {
			_ = os.Remove(dir)
		}
	}

	if len(failures) > 0 {
		return restored, &application.AggregateError{
			Op:        "undo",
			Verb:      "Restored",
			Succeeded: restored,
			Failures:  failures,
		}
	}
	return restored, nil
}

func isEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) == 0
}

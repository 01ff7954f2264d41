package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for precondition failures. These abort the whole
// operation; per-item failures during bulk move/undo are accumulated
// into an AggregateError instead.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrInvalidPlan   = errors.New("invalid organization plan")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanError wraps an I/O failure that prevented a directory listing.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// MoveError represents a single failed file move or restore.
type MoveError struct {
	From   string
	To     string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %s: %s", e.From, e.Reason)
}

// DirCreateError represents a failed category-directory creation.
// Non-fatal to other categories during organize.
type DirCreateError struct {
	Path string
	Err  error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e *DirCreateError) Unwrap() error {
	return e.Err
}

// AggregateError collects independent per-item failures from one bulk
// operation alongside the count that did succeed. Callers must not
// assume all-or-nothing semantics when they receive one.
type AggregateError struct {
	Op        string // "organize" or "undo"
	Verb      string // "Moved" or "Restored"
	Succeeded int
	Failures  []string
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s %d files, but some errors occurred:\n%s",
		e.Verb, e.Succeeded, strings.Join(e.Failures, "\n"))
}

package commands

import (
	"context"
	"fmt"

	"filesense/internal/application"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// UndoResult contains the result of reversing an organize run
type UndoResult struct {
	Restored int
	Message  string
}

// UndoCommand reverses the moves recorded in a move log
type UndoCommand struct {
	mover ports.Organizer
	Moves []domain.MoveRecord
}

// NewUndoCommand creates a new UndoCommand
func NewUndoCommand(mover ports.Organizer, moves []domain.MoveRecord) *UndoCommand {
	return &UndoCommand{mover: mover, Moves: moves}
}

// Validate checks if the undo operation is valid
func (c *UndoCommand) Validate() error {
	if len(c.Moves) == 0 {
		return &application.ValidationError{
			Field:   "moves",
			Message: "move log is empty",
		}
	}
	return nil
}

// Execute runs the undo command. On partial failure the returned result
// still reports how many files were restored.
func (c *UndoCommand) Execute(ctx context.Context) (*UndoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	restored, err := c.mover.Undo(c.Moves)
	result := &UndoResult{
		Restored: restored,
		Message:  fmt.Sprintf("Undo successful, restored %d files", restored),
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

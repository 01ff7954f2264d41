package commands

import (
	"context"
	"fmt"
	"strings"

	"filesense/internal/application"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// OrganizeResult contains the result of an organize operation. Moves is
// populated for every rename that succeeded, even when the operation as
// a whole returned an aggregate error, so callers can journal the log
// for a later partial undo.
type OrganizeResult struct {
	Message string              `json:"message"`
	Moves   []domain.MoveRecord `json:"moves"`
}

// OrganizeCommand moves the planned files into per-category folders
type OrganizeCommand struct {
	mover    ports.Organizer
	Plan     *domain.OrganizationPlan
	Warnings []application.PlanWarning
}

// NewOrganizeCommand creates an OrganizeCommand from an already-built plan
func NewOrganizeCommand(mover ports.Organizer, plan *domain.OrganizationPlan) *OrganizeCommand {
	return &OrganizeCommand{mover: mover, Plan: plan}
}

// NewOrganizeCommandFromValue creates an OrganizeCommand from a generic
// plan value (typically decoded JSON), recording any entries the
// validation pass had to skip.
func NewOrganizeCommandFromValue(mover ports.Organizer, raw map[string]any) (*OrganizeCommand, error) {
	plan, warnings, err := application.ParsePlan(raw)
	if err != nil {
		return nil, err
	}
	return &OrganizeCommand{mover: mover, Plan: plan, Warnings: warnings}, nil
}

// Validate checks if the organize operation is valid
func (c *OrganizeCommand) Validate() error {
	if c.Plan == nil {
		return fmt.Errorf("%w: no plan supplied", application.ErrInvalidPlan)
	}
	if strings.TrimSpace(c.Plan.TargetRoot) == "" {
		return fmt.Errorf("%w: missing target_root", application.ErrInvalidPlan)
	}
	return nil
}

// Execute runs the organize command. On partial failure the returned
// result still carries the move log alongside the aggregate error.
func (c *OrganizeCommand) Execute(ctx context.Context) (*OrganizeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	moves, err := c.mover.Organize(c.Plan)
	result := &OrganizeResult{
		Message: fmt.Sprintf("Organized %d files successfully", len(moves)),
		Moves:   moves,
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

package application

import (
	"fmt"
	"strings"

	"filesense/internal/domain"
)

// PlanWarning flags a plan entry that was skipped during parsing.
// Skipping is tolerated so callers may attach extra fields to the plan,
// but every skip is reported rather than silent.
type PlanWarning struct {
	Category string
	Message  string
}

func (w PlanWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Category, w.Message)
}

// ParsePlan validates a caller-supplied plan value, typically decoded
// from JSON. The value must be an object with a non-empty target_root
// string; every other key maps a category name to a list of {path}
// objects. Malformed category values are skipped with a warning; a
// missing or malformed target_root fails with ErrInvalidPlan.
func ParsePlan(raw map[string]any) (*domain.OrganizationPlan, []PlanWarning, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: plan is not an object", ErrInvalidPlan)
	}

	rootValue, ok := raw["target_root"]
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing target_root", ErrInvalidPlan)
	}
	targetRoot, ok := rootValue.(string)
	if !ok || strings.TrimSpace(targetRoot) == "" {
		return nil, nil, fmt.Errorf("%w: target_root must be a non-empty string", ErrInvalidPlan)
	}

	plan := &domain.OrganizationPlan{
		TargetRoot: targetRoot,
		Categories: make(map[string][]domain.FileRef),
	}
	var warnings []PlanWarning

	for category, value := range raw {
		if category == "target_root" {
			continue
		}

		entries, ok := value.([]any)
		if !ok {
			warnings = append(warnings, PlanWarning{
				Category: category,
				Message:  "not a file list, skipped",
			})
			continue
		}

		var refs []domain.FileRef
		for i, entry := range entries {
			obj, ok := entry.(map[string]any)
			if !ok {
				warnings = append(warnings, PlanWarning{
					Category: category,
					Message:  fmt.Sprintf("entry %d is not an object, skipped", i),
				})
				continue
			}
			path, ok := obj["path"].(string)
			if !ok || path == "" {
				warnings = append(warnings, PlanWarning{
					Category: category,
					Message:  fmt.Sprintf("entry %d has no path, skipped", i),
				})
				continue
			}
			refs = append(refs, domain.FileRef{Path: path})
		}
		if len(refs) > 0 {
			plan.Categories[category] = refs
		}
	}

	return plan, warnings, nil
}

// ValidateRequired checks if a string field is non-empty after trimming
// whitespace. Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

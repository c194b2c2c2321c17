package transform

import (
	"fmt"

	"github.com/rgehrsitz/fireplan/internal/domain"
)

// StateTransform defines the interface for all snapshot transformations.
// Transforms are composable what-if edits used by scenario comparison, the
// solvers and the interactive views. Apply never mutates its input.
type StateTransform interface {
	// Apply returns a modified deep copy of base.
	Apply(base *domain.AppState) (*domain.AppState, error)

	// Name returns a short identifier for this transform (e.g., "set_offset").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters against base without applying it.
	Validate(base *domain.AppState) error
}

// ApplyTransforms applies transforms in order, each receiving the output of
// the previous one. The base snapshot is left untouched.
func ApplyTransforms(base *domain.AppState, transforms []StateTransform) (*domain.AppState, error) {
	if base == nil {
		return nil, fmt.Errorf("base state cannot be nil")
	}

	current := base.DeepCopy()
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = next
	}

	return current, nil
}

// Describe joins the descriptions of a transform list
func Describe(transforms []StateTransform) []string {
	out := make([]string, 0, len(transforms))
	for _, t := range transforms {
		out = append(out, t.Description())
	}
	return out
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func requireBase(name string, base *domain.AppState) error {
	if base == nil {
		return NewTransformError(name, "validate", "base state cannot be nil", nil)
	}
	return nil
}

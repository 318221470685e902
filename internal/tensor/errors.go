package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrUnsupportedRank = errors.New("unsupported rank")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ShapeError describes an operation whose operand shapes are incompatible.
// It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op     string // Operation name (e.g., "add", "matmul")
	Left   Shape  // Shape of the receiver or first operand
	Right  Shape  // Requested or second-operand shape
	Detail string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v vs %v: %s", e.Op, e.Left, e.Right, e.Detail)
	}
	return fmt.Sprintf("%s: %v vs %v", e.Op, e.Left, e.Right)
}

// Unwrap allows errors.Is(err, ErrShapeMismatch).
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func rankError(op string, s Shape) error {
	return fmt.Errorf("%s: %w: need 2D tensor, got %dD %v", op, ErrUnsupportedRank, len(s), s)
}

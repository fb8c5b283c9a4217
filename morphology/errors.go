package morphology

import (
	"errors"
	"fmt"
)

// ErrValidation classifies every *ValidationError; branch on it with
// errors.Is, inspect the concrete *ValidationError for instruction/field
// detail.
var ErrValidation = errors.New("morphology: invalid instruction")

// ErrTooManyNodes indicates the generated node array would exceed the
// uint32 index space (spec §7: "Resource overflow ... node or instruction
// count exceeds 2^32-1").
var ErrTooManyNodes = errors.New("morphology: node count exceeds uint32 range")

// ErrTooManyInstructions is ErrTooManyNodes' counterpart for the
// instruction list itself.
var ErrTooManyInstructions = errors.New("morphology: instruction count exceeds uint32 range")

// ValidationError identifies the offending instruction and field for a
// fatal validation failure (spec §4.4: "surface a typed error identifying
// the offending instruction and field").
type ValidationError struct {
	InstructionIndex int
	Field            string
	Message          string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("morphology: instruction %d: field %q: %s", e.InstructionIndex, e.Field, e.Message)
}

// Is reports that every *ValidationError classifies as ErrValidation, so
// callers can write errors.Is(err, morphology.ErrValidation) without caring
// about the specific field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

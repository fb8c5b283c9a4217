package savefile

import (
	"errors"
	"fmt"
)

// ErrDuplicateInstructionName indicates two instructions share a name; the
// adapter's name->index map is first-occurrence-wins and treats a repeat
// as fatal (spec §4.5).
var ErrDuplicateInstructionName = errors.New("savefile: duplicate instruction name")

// ErrDuplicateRegionName is ErrDuplicateInstructionName's counterpart for
// carrier-point region names.
var ErrDuplicateRegionName = errors.New("savefile: duplicate carrier-point region name")

// ErrUnknownRegion indicates an instruction references a carrier-point
// region name with no matching definition. Unlike a dangling root
// reference, this is fatal: an instruction with no resolvable geometry is
// a malformed save file, not a stale edit.
var ErrUnknownRegion = errors.New("savefile: unknown carrier-point region name")

// ErrUnknownRegionType and ErrUnknownInstructionType classify an
// unrecognized "type" discriminant (spec §7, "Format error").
var (
	ErrUnknownRegionType      = errors.New("savefile: unknown carrier-point region type")
	ErrUnknownInstructionType = errors.New("savefile: unknown instruction type")
)

// nameError wraps one of the sentinels above with the offending name so
// callers see both the error class (via errors.Is) and the detail.
type nameError struct {
	sentinel error
	name     string
}

func (e *nameError) Error() string {
	return fmt.Sprintf("%s: %q", e.sentinel, e.name)
}

func (e *nameError) Unwrap() error { return e.sentinel }

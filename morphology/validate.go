package morphology

import "math"

// Validate checks every instruction against the domain table in spec §3
// before generation begins (spec §4.4). Validation is fatal: the first
// violation found is returned as a *ValidationError.
func Validate(instructions []Instruction) error {
	for idx, instr := range instructions {
		if instr.Morphology != nil {
			if err := validateNeurite(idx, &instr); err != nil {
				return err
			}
		} else if err := validateSoma(idx, &instr); err != nil {
			return err
		}
	}
	return nil
}

func validateNeurite(idx int, instr *Instruction) error {
	m := instr.Morphology
	if m.BalancingFactor < 0 {
		return fieldError(idx, "balancing_factor", "must be >= 0")
	}
	if m.ExtensionDistance <= 0 {
		return fieldError(idx, "extension_distance", "must be > 0")
	}
	if m.ExtensionAngle < 0 || m.ExtensionAngle > math.Pi {
		return fieldError(idx, "extension_angle", "must be in [0, pi]")
	}
	if m.BranchDistance <= 0 {
		return fieldError(idx, "branch_distance", "must be > 0")
	}
	if m.BranchAngle < 0 || m.BranchAngle > math.Pi {
		return fieldError(idx, "branch_angle", "must be in [0, pi]")
	}
	if m.MinimumDiameter <= 0 {
		return fieldError(idx, "minimum_diameter", "must be > 0")
	}
	if m.DendriteTaper < 0 {
		return fieldError(idx, "dendrite_taper", "must be >= 0")
	}
	if m.MaximumSegmentLength <= 0 {
		return fieldError(idx, "maximum_segment_length", "must be > 0")
	}
	for _, root := range instr.Roots {
		if root >= uint32(idx) {
			return fieldError(idx, "roots", "root instruction index must be strictly less than this instruction's index")
		}
	}
	if instr.SomaDiameter != 0 {
		return fieldError(idx, "soma_diameter", "neurite instructions must not carry a soma diameter")
	}
	return nil
}

func validateSoma(idx int, instr *Instruction) error {
	if len(instr.Roots) != 0 {
		return fieldError(idx, "roots", "soma instructions must not carry roots")
	}
	if instr.SomaDiameter <= 0 {
		return fieldError(idx, "soma_diameter", "must be > 0")
	}
	return nil
}

func fieldError(idx int, field, message string) error {
	return &ValidationError{InstructionIndex: idx, Field: field, Message: message}
}

package morphology

import "math"

// maxArrayLen is the largest node/instruction count representable by the
// uint32 indices this package uses throughout (spec §7, "Resource
// overflow").
const maxArrayLen = math.MaxUint32

// Generate runs the full control flow from spec §2: validate instructions,
// then for each instruction in order either spawn soma roots or run the
// growth engine with prior sections as starting roots, then run the
// diameter solver over the complete node array.
//
// Returns the flat node array and the per-instruction Section table
// needed to resolve `roots` references.
func Generate(instructions []Instruction) ([]Node, []Section, error) {
	if err := Validate(instructions); err != nil {
		return nil, nil, err
	}
	if len(instructions) >= maxArrayLen {
		return nil, nil, ErrTooManyInstructions
	}

	estimatedNodes := 0
	for _, instr := range instructions {
		estimatedNodes += len(instr.CarrierPoints)
	}
	nodes := make([]Node, 0, estimatedNodes)
	sections := make([]Section, 0, len(instructions))

	for instrIndex, instr := range instructions {
		sectionStart := uint32(len(nodes))

		if instr.IsSoma() {
			for _, coords := range instr.CarrierPoints {
				nodes = append(nodes, Node{
					Coordinates:      coords,
					Diameter:         instr.SomaDiameter,
					ParentIndex:      RootSentinel,
					InstructionIndex: uint32(instrIndex),
					CarrierPoint:     true,
				})
			}
			sections = append(sections, Section{Start: sectionStart, End: uint32(len(nodes))})
			continue
		}

		if len(instr.CarrierPoints) == 0 {
			sections = append(sections, Section{Start: sectionStart, End: sectionStart})
			continue
		}

		data, err := newWorkingData(&instr)
		if err != nil {
			return nil, nil, err
		}

		for _, rootInstr := range instr.Roots {
			section := sections[rootInstr]
			for idx := section.Start; idx < section.End; idx++ {
				if nodes[idx].CarrierPoint {
					data.considerAllPotentialSegments(idx, &nodes[idx])
				}
			}
		}

		runGrowth(data, &nodes, sections, &instr, uint32(instrIndex), sectionStart)

		sections = append(sections, Section{Start: sectionStart, End: uint32(len(nodes))})
		if len(nodes) >= maxArrayLen {
			return nil, nil, ErrTooManyNodes
		}
	}

	solveDendriteDiameters(instructions, nodes)
	return nodes, sections, nil
}

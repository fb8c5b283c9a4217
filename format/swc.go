package format

import (
	"fmt"
	"io"
	"time"

	"morphwizard/morphology"
)

// somaTypeCode, axonTypeCode, and dendriteTypeCode are the standard SWC
// node-type codes (http://www.neuronland.org/NLMorphologyConverter/
// MorphologyFormats/SWC/Spec.html).
const (
	somaTypeCode     = 1
	axonTypeCode     = 2
	dendriteTypeCode = 3
	// customTypeBase is the first custom type ID SWC+ readers reserve for
	// per-instruction tagging (spec §4.6: "a unique ID (>= 256)").
	customTypeBase = 256
)

// SWC writes instructions and their generated nodes as one SWC(+) text
// stream: a commented header (tool name, version, run ID, an RFC 2822
// timestamp, and a <customTypes> block naming every instruction) followed
// by one body record per emitted node (spec §4.6, "SWC (and SWC+
// header)").
//
// The synthetic soma-anchor node materializeSegment inserts directly under
// each root (morphology.Node.CarrierPoint == false, parented on a root) is
// skipped: SWC represents a frustum's base implicitly via its parent's
// coordinates, so the anchor carries no information a reader needs. Any
// node parented on a skipped anchor has its parent field remapped to the
// anchor's own parent (the root), per spec §4.6.
func SWC(w io.Writer, instructions []morphology.Instruction, nodes []morphology.Node, names []string, toolName, toolVersion, runID string, generatedAt time.Time) error {
	if len(names) != len(instructions) {
		return ErrNameCountMismatch
	}

	if err := writeSWCHeader(w, instructions, names, toolName, toolVersion, runID, generatedAt); err != nil {
		return err
	}

	skip := make([]bool, len(nodes))
	emittedIndex := make([]int, len(nodes)) // 1-based; 0 means "not emitted"
	for i := range nodes {
		n := &nodes[i]
		if n.IsSegment() {
			parent := &nodes[n.ParentIndex]
			if parent.IsRoot() && !n.CarrierPoint {
				skip[i] = true
			}
		}
	}

	next := 1
	for i := range nodes {
		if !skip[i] {
			emittedIndex[i] = next
			next++
		}
	}

	for i := range nodes {
		if skip[i] {
			continue
		}
		n := &nodes[i]
		instr := &instructions[n.InstructionIndex]

		parentField := 0
		if n.IsSegment() {
			parentIdx := n.ParentIndex
			if skip[parentIdx] {
				parentIdx = nodes[parentIdx].ParentIndex
			}
			parentField = emittedIndex[parentIdx]
		}

		_, err := fmt.Fprintf(w, "%d %d %g %g %g %g %d\n",
			emittedIndex[i], swcNodeType(instr),
			n.Coordinates[0], n.Coordinates[1], n.Coordinates[2],
			0.5*n.Diameter, parentField)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSWCHeader(w io.Writer, instructions []morphology.Instruction, names []string, toolName, toolVersion, runID string, generatedAt time.Time) error {
	lines := []string{
		fmt.Sprintf("# %s %s (run %s)", toolName, toolVersion, runID),
		fmt.Sprintf("# %s", generatedAt.Format(time.RFC1123Z)),
		"# <customTypes>",
	}
	for idx, instr := range instructions {
		lines = append(lines, fmt.Sprintf("#   <type id=\"%d\" kind=%q name=%q/>", customTypeBase+idx, swcKind(&instr), names[idx]))
	}
	lines = append(lines, "# </customTypes>")

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func swcKind(instr *morphology.Instruction) string {
	switch {
	case instr.IsSoma():
		return "soma"
	case instr.IsAxon():
		return "axon"
	default:
		return "dendrite"
	}
}

func swcNodeType(instr *morphology.Instruction) int {
	switch {
	case instr.IsSoma():
		return somaTypeCode
	case instr.IsAxon():
		return axonTypeCode
	default:
		return dendriteTypeCode
	}
}

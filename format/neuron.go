package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"morphwizard/morphology"
)

// neuronScriptTemplate is the static body of the emitted sections()
// function, translated from original_source/src/python.rs's export_nrn (a
// live PyO3/NEURON binding) into pure Python operating over the NODES
// literal this package bakes in ahead of it. %s is substituted with the
// NODES literal and %d with the instruction count.
const neuronScriptTemplate = `def sections():
    from neuron import h

    NODES = %s
    NUM_INSTRUCTIONS = %d

    sections_by_type = [[] for _ in range(NUM_INSTRUCTIONS)]
    secs = [None] * len(NODES)
    autoinc = [0] * NUM_INSTRUCTIONS

    for i, node in enumerate(NODES):
        x, y, z, d, parent_index, instr_index, num_children = node

        if parent_index is None:
            cell_num = autoinc[instr_index]
            autoinc[instr_index] += 1
            soma = h.Section(name="section[%%d][%%d]" %% (instr_index, cell_num))
            soma.pt3dadd(x - 0.5 * d, y, z, d)
            soma.pt3dadd(x + 0.5 * d, y, z, d)
            soma.nseg = 1
            sections_by_type[instr_index].append(soma)
            secs[i] = soma
            continue

        parent_node = NODES[parent_index]
        parent_x, parent_y, parent_z, parent_d = parent_node[0], parent_node[1], parent_node[2], parent_node[3]
        parent_is_root = parent_node[4] is None
        parent_num_children = parent_node[6]
        parent_instr_index = parent_node[5]
        parent_sec = secs[parent_index]

        if parent_num_children != 1 or instr_index != parent_instr_index:
            sec_num = autoinc[instr_index]
            autoinc[instr_index] += 1
            sec = h.Section(name="section[%%d][%%d]" %% (instr_index, sec_num))
            if parent_is_root:
                if num_children == 0:
                    sec.pt3dadd(parent_x, parent_y, parent_z, d)
                sec.pt3dadd(x, y, z, d)
                sec.connect(parent_sec(0.5))
            else:
                sec.pt3dadd(parent_x, parent_y, parent_z, parent_d)
                sec.pt3dadd(x, y, z, d)
                sec.connect(parent_sec)
            sections_by_type[instr_index].append(sec)
        else:
            sec = parent_sec
            sec.pt3dadd(x, y, z, d)

        if num_children == 0:
            sec.pt3dadd(x, y, z, 0.0)
        secs[i] = sec

    return sections_by_type
`

// NEURON writes a standalone Python source file defining sections(), which
// rebuilds the generated morphology as a list-of-lists of neuron.h.Section
// objects indexed by instruction (spec §4.6, "NEURON Python script"; §6,
// "a single function sections() returning a list-of-lists ... indexed by
// instruction"). The geometry is baked into the script as a literal NODES
// table; the function body mirrors original_source/src/python.rs's
// export_nrn, translated from a live binding into a batch emitter.
func NEURON(w io.Writer, instructions []morphology.Instruction, nodes []morphology.Node, toolName, toolVersion, runID string, generatedAt time.Time) error {
	if _, err := fmt.Fprintf(w, "# Generated by %s %s (run %s) at %s\n", toolName, toolVersion, runID, generatedAt.Format(time.RFC1123Z)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# Requires the `neuron` Python package: https://neuron.yale.edu/neuron/"); err != nil {
		return err
	}

	var nodesLiteral strings.Builder
	nodesLiteral.WriteString("[\n")
	for i := range nodes {
		n := &nodes[i]
		parentField := "None"
		if n.IsSegment() {
			parentField = fmt.Sprintf("%d", n.ParentIndex)
		}
		fmt.Fprintf(&nodesLiteral, "        (%g, %g, %g, %g, %s, %d, %d),\n",
			n.Coordinates[0], n.Coordinates[1], n.Coordinates[2], n.Diameter,
			parentField, n.InstructionIndex, n.NumChildren)
	}
	nodesLiteral.WriteString("    ]")

	_, err := fmt.Fprintf(w, neuronScriptTemplate, nodesLiteral.String(), len(instructions))
	return err
}

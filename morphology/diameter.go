package morphology

import "sort"

// pathAccumulator tracks the running average of all root-to-leaf path
// diameters passing through one node (spec §4.3 step 1).
type pathAccumulator struct {
	numPaths uint32
	sumDiams float64
}

// solveDendriteDiameters implements the dendrite-diameter solver (spec
// §4.3): for every terminal node belonging to a neurite instruction, look
// up (and interpolate) the tabulated quadratic polynomial for its path
// length, scale it by dendrite_taper/minimum_diameter, walk the path back
// to the root accumulating the polynomial's value at each node, then
// average. Axons and somas keep their earlier-assigned diameters.
func solveDendriteDiameters(instructions []Instruction, nodes []Node) {
	accum := make([]pathAccumulator, len(nodes))

	for terminalIndex := range nodes {
		terminal := &nodes[terminalIndex]
		if !terminal.IsTerminal() {
			continue
		}
		instr := &instructions[terminal.InstructionIndex]
		if instr.Morphology == nil {
			continue
		}
		morph := instr.Morphology

		poly := lookupPolynomial(terminal.PathLength)
		poly = [3]float64{
			poly[0]*morph.DendriteTaper + 0,
			poly[1]*morph.DendriteTaper + 0,
			poly[2]*morph.DendriteTaper + morph.MinimumDiameter,
		}

		normalization := 1.0
		if terminal.PathLength != 0 {
			normalization = 1.0 / terminal.PathLength
		}

		cursorIndex := uint32(terminalIndex)
		for {
			cursor := &nodes[cursorIndex]
			t := cursor.PathLength * normalization
			diameter := poly[0]*t*t + poly[1]*t + poly[2]

			accum[cursorIndex].numPaths++
			accum[cursorIndex].sumDiams += diameter

			if !cursor.IsSegment() {
				break
			}
			cursorIndex = cursor.ParentIndex
		}
	}

	for i := range nodes {
		instr := &instructions[nodes[i].InstructionIndex]
		if !instr.IsDendrite() {
			continue
		}
		paths := accum[i]
		if paths.numPaths == 0 {
			continue
		}
		mean := paths.sumDiams / float64(paths.numPaths)
		nodes[i].Diameter = maxFloat(instr.Morphology.MinimumDiameter, mean)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// lookupPolynomial resolves the tabulated polynomial for the given
// terminal path length per spec §4.3: exact hit uses that polynomial,
// before the first entry uses the first, past the last uses the last,
// and an interior position linearly interpolates the two bracketing
// polynomials.
func lookupPolynomial(pathLength float64) [3]float64 {
	lengths := dendriteLengths
	upper := sort.Search(len(lengths), func(i int) bool { return lengths[i] >= pathLength })

	if upper < len(lengths) && lengths[upper] == pathLength {
		return dendritePolynomials[upper]
	}
	if upper == 0 {
		return dendritePolynomials[0]
	}
	if upper == len(lengths) {
		return dendritePolynomials[len(lengths)-1]
	}

	lower := upper - 1
	lowerValue, upperValue := lengths[lower], lengths[upper]
	totalDist := upperValue - lowerValue
	lowerWeight := (upperValue - pathLength) / totalDist
	upperWeight := (pathLength - lowerValue) / totalDist

	var blended [3]float64
	for i := 0; i < 3; i++ {
		blended[i] = dendritePolynomials[lower][i]*lowerWeight + dendritePolynomials[upper][i]*upperWeight
	}
	return blended
}

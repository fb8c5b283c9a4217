package morphology

import "morphwizard/vector"

// relaxationCandidate implements spec §4.2.2's relaxation pass selection:
// collect a candidate from every carrier-point-anchored node in the
// instruction's root sections plus its own section-so-far, to every
// still-unoccupied carrier point, ignoring maximum_branches/distance/angle
// constraints entirely. Per the spec's own resolution of its stated
// ambiguity ("the lowest-cost relaxed candidate"), the candidate with the
// minimum priority is selected; branch_num is irrelevant here since every
// relaxed candidate is enqueued with branch_num = 0.
func relaxationCandidate(data *workingData, nodes []Node, sections []Section, roots []uint32, sectionStart uint32) (candidate, bool) {
	var best candidate
	found := false

	consider := func(parentIndex uint32) {
		parent := &nodes[parentIndex]
		if !parent.CarrierPoint {
			return
		}
		for carrierIndex := uint32(0); carrierIndex < uint32(len(data.carrierPoints)); carrierIndex++ {
			if data.occupied.Get(carrierIndex) {
				continue
			}
			segmentLength := vector.Distance(parent.Coordinates, data.carrierPoints[carrierIndex])
			cand := candidate{
				branchNum:    0,
				priority:     data.priority(parent, segmentLength),
				carrierIndex: carrierIndex,
				parentIndex:  parentIndex,
			}
			if !found || cand.priority < best.priority {
				best = cand
				found = true
			}
		}
	}

	for _, rootInstr := range roots {
		section := sections[rootInstr]
		for idx := section.Start; idx < section.End; idx++ {
			consider(idx)
		}
	}
	for idx := sectionStart; idx < uint32(len(nodes)); idx++ {
		consider(idx)
	}

	return best, found
}

package morphology

import (
	"container/heap"
	"math"

	"morphwizard/spatial"
	"morphwizard/vector"
)

// angleEpsilon guards the "no angle constraint in effect" fast path (spec
// §9: "angle tests should guard max_angle < pi - epsilon").
const angleEpsilon = 1e-9

// workingData holds everything consider_all_potential_segments and the
// main loop need for one neurite instruction (spec §4.2, "Per-instruction
// state").
type workingData struct {
	morph         *Morphology
	carrierPoints []vector.Vec3
	occupied      *occupiedSet
	tree          *spatial.Tree
	queue         candidateQueue
}

func newWorkingData(instr *Instruction) (*workingData, error) {
	tree, err := spatial.New(instr.CarrierPoints)
	if err != nil {
		return nil, err
	}
	return &workingData{
		morph:         instr.Morphology,
		carrierPoints: instr.CarrierPoints,
		occupied:      newOccupiedSet(uint32(len(instr.CarrierPoints))),
		tree:          tree,
	}, nil
}

// permissiveRadius computes R, the maximum distance consider_all_potential_segments
// and the main loop's recheck both use to decide which carrier points are
// reachable from parent (spec §4.2, "Expansion of a parent node").
func permissiveRadius(parent *Node, numChildren uint32, morph *Morphology) float64 {
	switch {
	case parent.IsRoot():
		return morph.ExtensionDistance
	case numChildren == 0:
		return math.Max(morph.ExtensionDistance, morph.BranchDistance)
	default:
		return morph.BranchDistance
	}
}

// priority computes the TREES edge cost: segment_length + balancing_factor
// * (parent.path_length + segment_length).
func (d *workingData) priority(parent *Node, segmentLength float64) float64 {
	pathLength := parent.PathLength + segmentLength
	return segmentLength + d.morph.BalancingFactor*pathLength
}

// considerAllPotentialSegments enqueues a candidate for every carrier point
// reachable from parent within the permissive radius, skipping points
// already occupied (spec §4.2, "consider_all_potential_segments").
func (d *workingData) considerAllPotentialSegments(parentIndex uint32, parent *Node) {
	if parent.IsSegment() && parent.NumChildren > d.morph.MaximumBranches {
		return
	}

	branchNum := uint32(0)
	if d.morph.ExtendBeforeBranch {
		branchNum = parent.NumChildren
	}

	radius := permissiveRadius(parent, parent.NumChildren, d.morph)
	if !math.IsInf(radius, 1) {
		neighbors := d.tree.WithinRadius(parent.Coordinates, radius*radius, nil)
		for _, n := range neighbors {
			if d.occupied.Get(n.Index) {
				continue
			}
			segmentLength := math.Sqrt(n.SquaredDistance)
			heap.Push(&d.queue, candidate{
				branchNum:    branchNum,
				priority:     d.priority(parent, segmentLength),
				carrierIndex: n.Index,
				parentIndex:  parentIndex,
			})
		}
		return
	}

	d.occupied.ForEachZero(func(carrierIndex uint32) {
		segmentLength := vector.Distance(parent.Coordinates, d.carrierPoints[carrierIndex])
		heap.Push(&d.queue, candidate{
			branchNum:    branchNum,
			priority:     d.priority(parent, segmentLength),
			carrierIndex: carrierIndex,
			parentIndex:  parentIndex,
		})
	})
}

// runGrowth drives the main Prim's-variant loop plus relaxation restarts
// for one neurite instruction (spec §4.2, "Main loop per instruction" and
// §4.2.2, "Relaxation pass").
func runGrowth(data *workingData, nodes *[]Node, sections []Section, instr *Instruction, instrIndex uint32, sectionStart uint32) {
	for {
		drainQueue(data, nodes, instrIndex)
		if !data.morph.ReachAllCarrierPoints || data.occupied.AllSet() {
			return
		}
		cand, ok := relaxationCandidate(data, *nodes, sections, instr.Roots, sectionStart)
		if !ok {
			return
		}
		target := data.carrierPoints[cand.carrierIndex]
		terminalIndex := materializeSegment(nodes, cand.parentIndex, target, data.morph, instrIndex, cand.carrierIndex, data.occupied)
		data.considerAllPotentialSegments(terminalIndex, &(*nodes)[terminalIndex])
	}
}

func drainQueue(data *workingData, nodes *[]Node, instrIndex uint32) {
	for data.queue.Len() > 0 {
		cand := heap.Pop(&data.queue).(candidate)
		if data.occupied.Get(cand.carrierIndex) {
			continue
		}
		parent := &(*nodes)[cand.parentIndex]
		numSiblings := parent.NumChildren
		if parent.IsSegment() && numSiblings > data.morph.MaximumBranches {
			continue
		}

		target := data.carrierPoints[cand.carrierIndex]
		segmentLength := vector.Distance(parent.Coordinates, target)
		radius := permissiveRadius(parent, numSiblings, data.morph)
		if segmentLength > radius {
			continue
		}

		maximumAngle := data.morph.ExtensionAngle
		if numSiblings != 0 {
			maximumAngle = data.morph.BranchAngle
		}
		if parent.IsSegment() && maximumAngle < math.Pi-angleEpsilon {
			grandparent := &(*nodes)[parent.ParentIndex]
			parentVector := vector.Sub(grandparent.Coordinates, parent.Coordinates)
			segmentVector := vector.Sub(parent.Coordinates, target)
			segmentAngle := vector.Angle(parentVector, segmentVector)
			if segmentAngle > maximumAngle {
				continue
			}
		}

		if data.morph.ExtendBeforeBranch && cand.branchNum < numSiblings {
			cand.branchNum = numSiblings
			heap.Push(&data.queue, cand)
			continue
		}

		terminalIndex := materializeSegment(nodes, cand.parentIndex, target, data.morph, instrIndex, cand.carrierIndex, data.occupied)
		data.considerAllPotentialSegments(terminalIndex, &(*nodes)[terminalIndex])
	}
}

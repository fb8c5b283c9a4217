package morphology

// candidate is one potential segment: a proposed edge from an existing node
// to an unoccupied carrier point (spec §4.2, "Candidate segment record").
type candidate struct {
	// branchNum is the parent's child count observed when this candidate
	// was enqueued; used to prefer extensions over branches for
	// axon-like morphology.
	branchNum uint32
	// priority is the segment's cost; lower wins.
	priority float64
	// carrierIndex is the target point's offset in this instruction's
	// carrier array.
	carrierIndex uint32
	// parentIndex is the node-array offset of the proposed parent.
	parentIndex uint32
}

// less orders candidates by (branchNum, priority) ascending, matching spec
// §4.2: "candidates compare by (branch_num, then priority); ... smaller
// values pop first."
func (c candidate) less(other candidate) bool {
	if c.branchNum != other.branchNum {
		return c.branchNum < other.branchNum
	}
	return c.priority < other.priority
}

// candidateQueue implements heap.Interface as a min-heap over candidate,
// ordered by candidate.less. Lazily tolerant of stale entries: the pop
// loop in engine.go re-validates occupied/constraint/branch_num state
// itself rather than decreasing keys or removing entries in place (spec
// §9: "do not attempt to remove or decrease-key").
type candidateQueue []candidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool { return q[i].less(q[j]) }

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x interface{}) {
	*q = append(*q, x.(candidate))
}

func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

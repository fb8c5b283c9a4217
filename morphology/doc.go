// Package morphology implements the neuron growth engine: the TREES
// algorithm (a modified Prim's minimum-spanning-tree over carrier points,
// weighted by segment_length + balancing_factor*path_length) combined with
// the ROOTS morphological constraints (per-segment distance/angle limits
// and a branch-count cap), plus the dendrite-diameter solver that assigns
// tapered diameters by path-length-indexed quadratic interpolation.
//
// The entire tree lives in one flat, append-only []Node; every
// cross-reference is a uint32 index, never a pointer (spec §9, "Graph by
// arena + indices"). Generate processes instructions strictly in order,
// growing one Section per instruction and handing prior sections' nodes to
// later instructions as potential roots.
//
// Grounded on original_source/src/lib.rs (WorkingData, PotentialSegment,
// the main Prim's-variant loop, DendriteDiameterQuadraticApprox) and styled
// after lvlath's prim_kruskal package (heap.Interface priority queue,
// sentinel errors, doc.go narrative).
package morphology

// Package spatial provides an immutable three-dimensional k-d tree with
// squared-radius neighbor queries.
//
// The growth engine (package morphology) rebuilds one of these per growth
// instruction, over that instruction's carrier points only, and queries it
// once per candidate parent node to find reachable unoccupied targets. The
// carrier-point sampler (package carrier) builds one transiently during
// rejection-thinning to find near-duplicate points.
//
// This is treated as commodity infrastructure (see spec §2, item 3: "adopt
// a library-quality KD-tree; treat as given") — no pack example ships a
// fetchable k-d tree module, so this package is a rewritten, 3-D-specialized
// version of the reference scan-based k-d tree found in the examples pack,
// upgraded to a real median-split binary tree since morphology growth can
// run the query thousands of times per instruction.
package spatial

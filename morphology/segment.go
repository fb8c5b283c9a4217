package morphology

import (
	"math"

	"morphwizard/vector"
)

// appendNode appends a new node with the given parent, incrementing the
// parent's child count, and returns the new node's index (spec §3
// invariant: "num_children equals the count of later nodes pointing at
// this one").
func appendNode(nodes *[]Node, parentIndex uint32, coords vector.Vec3, diameter float64, instrIndex uint32, pathLength float64, carrierPoint bool) uint32 {
	index := uint32(len(*nodes))
	*nodes = append(*nodes, Node{
		Coordinates:      coords,
		Diameter:         diameter,
		ParentIndex:      parentIndex,
		InstructionIndex: instrIndex,
		PathLength:       pathLength,
		CarrierPoint:     carrierPoint,
	})
	(*nodes)[parentIndex].NumChildren++
	return index
}

// lerp returns the point a fraction t of the way from a to b.
func lerp(a, b vector.Vec3, t float64) vector.Vec3 {
	return vector.Add(a, vector.Scale(vector.Sub(a, b), t))
}

// materializeSegment builds every node needed to grow from parentIndex to
// targetCoords (spec §4.2.1, "Segment materialization"): an optional
// soma-surface anchor, zero or more evenly-spaced subdivision nodes when
// the straight distance exceeds maximum_segment_length, and a terminal
// node sitting exactly on the carrier point. Returns the terminal node's
// index, which is the only node future candidates may expand from.
func materializeSegment(nodes *[]Node, parentIndex uint32, targetCoords vector.Vec3, morph *Morphology, instrIndex uint32, carrierIndex uint32, occupied *occupiedSet) uint32 {
	cursor := parentIndex
	segmentStart := (*nodes)[parentIndex].Coordinates

	if (*nodes)[parentIndex].IsRoot() {
		root := (*nodes)[parentIndex]
		somaRadius := 0.5 * root.Diameter
		distanceToTarget := vector.Distance(root.Coordinates, targetCoords)
		if distanceToTarget > somaRadius {
			direction := vector.Sub(root.Coordinates, targetCoords)
			vector.Normalize(&direction)
			anchorCoords := vector.Add(root.Coordinates, vector.Scale(direction, somaRadius))
			cursor = appendNode(nodes, parentIndex, anchorCoords, morph.MinimumDiameter, instrIndex, somaRadius, false)
			segmentStart = anchorCoords
		}
		// Else: target lies inside the soma radius; skip the anchor and
		// attach the terminal node directly to the root below.
	}

	remaining := vector.Distance(segmentStart, targetCoords)
	subdivisions := 1
	if !math.IsInf(morph.MaximumSegmentLength, 1) {
		subdivisions = ceilDiv(remaining, morph.MaximumSegmentLength)
		if subdivisions < 1 {
			subdivisions = 1
		}
	}

	for k := 1; k < subdivisions; k++ {
		t := float64(k) / float64(subdivisions)
		coords := lerp(segmentStart, targetCoords, t)
		parent := (*nodes)[cursor]
		pathLength := parent.PathLength + vector.Distance(parent.Coordinates, coords)
		cursor = appendNode(nodes, cursor, coords, morph.MinimumDiameter, instrIndex, pathLength, false)
	}

	parent := (*nodes)[cursor]
	terminalPathLength := parent.PathLength + vector.Distance(parent.Coordinates, targetCoords)
	terminalIndex := appendNode(nodes, cursor, targetCoords, morph.MinimumDiameter, instrIndex, terminalPathLength, true)
	occupied.Set(carrierIndex)
	return terminalIndex
}

func ceilDiv(remaining, maxLen float64) int {
	return int(math.Ceil(remaining / maxLen))
}

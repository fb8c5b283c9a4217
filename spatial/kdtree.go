package spatial

import (
	"errors"
	"sort"

	"morphwizard/vector"
)

// ErrEmptyPoints indicates that a tree was requested over zero points.
var ErrEmptyPoints = errors.New("spatial: no points provided")

// Neighbor is one result of a radius query: the index of the matched point
// within the slice originally passed to New, and its squared distance from
// the query coordinate.
type Neighbor struct {
	Index          uint32
	SquaredDistance float64
}

// Tree is an immutable, axis-alternating k-d tree over a fixed set of 3-D
// points. Build it once per instruction and discard it when that
// instruction's growth completes (spec §5: "built once per instruction and
// dropped when the instruction completes").
type Tree struct {
	nodes  []node
	points []vector.Vec3
	root   int32
}

type node struct {
	// pointIndex is this node's index into Tree.points.
	pointIndex uint32
	// left and right are indices into Tree.nodes, or -1 when absent.
	left, right int32
}

// New builds a k-d tree over points. The returned tree's neighbor indices
// refer back into the exact points slice passed in (not copied by value,
// but the slice is retained — callers must not mutate it afterwards).
func New(points []vector.Vec3) (*Tree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	order := make([]uint32, len(points))
	for i := range order {
		order[i] = uint32(i)
	}
	t := &Tree{
		nodes:  make([]node, len(points)),
		points: points,
	}
	t.root = t.build(order, 0)
	return t, nil
}

// build recursively partitions order (a slice of point indices) around its
// median along axis, storing each node in t.nodes at its pivot's point
// index. Returns the index into t.nodes of the subtree root, or -1 for an
// empty slice.
func (t *Tree) build(order []uint32, axis int) int32 {
	if len(order) == 0 {
		return -1
	}
	sort.Slice(order, func(i, j int) bool {
		return t.points[order[i]][axis] < t.points[order[j]][axis]
	})
	mid := len(order) / 2
	pivot := order[mid]

	// Each pivot is a distinct point index, so using it as the slot never
	// collides with another node.
	slot := int32(pivot)
	nextAxis := (axis + 1) % 3
	left := t.build(order[:mid], nextAxis)
	right := t.build(order[mid+1:], nextAxis)
	t.nodes[slot] = node{pointIndex: pivot, left: left, right: right}
	return slot
}

// WithinRadius returns every point within radius (inclusive) of query,
// using squared distances throughout to avoid sqrt in the hot path. The
// caller supplies radiusSquared = radius*radius. Order of results is
// unspecified.
func (t *Tree) WithinRadius(query vector.Vec3, radiusSquared float64, out []Neighbor) []Neighbor {
	return t.search(t.root, query, radiusSquared, 0, out)
}

func (t *Tree) search(nodeIdx int32, query vector.Vec3, radiusSquared float64, axis int, out []Neighbor) []Neighbor {
	if nodeIdx < 0 {
		return out
	}
	n := t.nodes[nodeIdx]
	p := t.points[n.pointIndex]
	d2 := vector.SquaredDistance(query, p)
	if d2 <= radiusSquared {
		out = append(out, Neighbor{Index: n.pointIndex, SquaredDistance: d2})
	}
	diff := query[axis] - p[axis]
	nextAxis := (axis + 1) % 3

	// Descend into the half-space containing the query first.
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	out = t.search(near, query, radiusSquared, nextAxis, out)
	// Only cross the splitting plane if the query's radius could reach it.
	if diff*diff <= radiusSquared {
		out = t.search(far, query, radiusSquared, nextAxis, out)
	}
	return out
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return len(t.points)
}

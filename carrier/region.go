package carrier

import (
	"math/rand"

	"morphwizard/vector"
)

// AABB is an axis-aligned bounding box, both corners inclusive.
type AABB struct {
	Lower vector.Vec3
	Upper vector.Vec3
}

// Region is a carrier-point source: a named geometric volume (or a single
// explicit point) that a neurite instruction attempts to innervate.
//
// Implementations are value types constructed directly by callers (no
// constructor functions are required since every field is a plain
// coordinate or scalar); see impl_point.go, impl_sphere.go, impl_cylinder.go,
// impl_cone.go and impl_box.go for the concrete variants.
type Region interface {
	// Name returns the region's caller-assigned label, used by the
	// savefile name->index resolver to address these points from
	// instructions.
	Name() string
	// NumPoints returns how many carrier points this region produces.
	// Always 1 for Point.
	NumPoints() uint32
	// Volume returns the region's analytic volume. 0 for Point.
	Volume() float64
	// Contains reports whether p lies within the region's closed volume.
	Contains(p vector.Vec3) bool
	// Bounds returns the region's axis-aligned bounding box.
	Bounds() AABB
	// GeneratePoints produces NumPoints() coordinates inside the region.
	// For Point this ignores rng and returns the one coordinate verbatim;
	// for volumetric regions it runs the oversample-and-thin algorithm in
	// sampler.go. rng must be non-nil for volumetric regions.
	GeneratePoints(rng *rand.Rand) ([]vector.Vec3, error)
}

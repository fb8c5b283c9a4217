package carrier

import (
	"math/rand"

	"morphwizard/vector"
)

// Point is a single explicit carrier coordinate. It has zero volume and
// generates exactly its own coordinate.
type Point struct {
	RegionName string
	Coords     vector.Vec3
}

func (p Point) Name() string      { return p.RegionName }
func (p Point) NumPoints() uint32 { return 1 }
func (p Point) Volume() float64   { return 0 }

func (p Point) Contains(q vector.Vec3) bool {
	return q == p.Coords
}

func (p Point) Bounds() AABB {
	return AABB{Lower: p.Coords, Upper: p.Coords}
}

// GeneratePoints returns the point's own coordinate verbatim (spec §4.1:
// "the explicit point region returns its single coordinate verbatim").
func (p Point) GeneratePoints(_ *rand.Rand) ([]vector.Vec3, error) {
	return []vector.Vec3{p.Coords}, nil
}

package carrier

import (
	"math"
	"math/rand"

	"morphwizard/vector"
)

// Cylinder is an axis-oriented carrier region between Top and Bottom
// centers, with the given Radius.
type Cylinder struct {
	RegionName string
	Points     uint32
	Top        vector.Vec3
	Bottom     vector.Vec3
	Radius     float64
}

func (c Cylinder) Name() string      { return c.RegionName }
func (c Cylinder) NumPoints() uint32 { return c.Points }

func (c Cylinder) Volume() float64 {
	height := vector.Distance(c.Bottom, c.Top)
	return height * math.Pi * c.Radius * c.Radius
}

// Contains tests distance from the axis <= radius, with both caps treated
// as half-space tests (https://math.stackexchange.com/a/4864013).
func (c Cylinder) Contains(p vector.Vec3) bool {
	axis := vector.Sub(c.Top, c.Bottom)
	aVec := vector.Sub(c.Top, p)
	bVec := vector.Sub(c.Bottom, p)
	dist := vector.Mag(vector.Cross(axis, aVec)) / vector.Mag(axis)
	if dist > c.Radius {
		return false
	}
	if vector.Dot(aVec, axis) < 0 {
		return false
	}
	if vector.Dot(bVec, axis) > 0 {
		return false
	}
	return true
}

func (c Cylinder) Bounds() AABB {
	lower := vector.Vec3{
		math.Min(c.Bottom[0], c.Top[0]) - c.Radius,
		math.Min(c.Bottom[1], c.Top[1]) - c.Radius,
		math.Min(c.Bottom[2], c.Top[2]) - c.Radius,
	}
	upper := vector.Vec3{
		math.Max(c.Bottom[0], c.Top[0]) + c.Radius,
		math.Max(c.Bottom[1], c.Top[1]) + c.Radius,
		math.Max(c.Bottom[2], c.Top[2]) + c.Radius,
	}
	return AABB{Lower: lower, Upper: upper}
}

func (c Cylinder) GeneratePoints(rng *rand.Rand) ([]vector.Vec3, error) {
	return sampleVolumetric(c, rng)
}

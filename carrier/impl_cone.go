package carrier

import (
	"math"
	"math/rand"

	"morphwizard/vector"
)

// Cone is a carrier region with apex Tip and circular Base of the given
// Radius.
type Cone struct {
	RegionName string
	Points     uint32
	Tip        vector.Vec3
	Base       vector.Vec3
	Radius     float64
}

func (c Cone) Name() string      { return c.RegionName }
func (c Cone) NumPoints() uint32 { return c.Points }

func (c Cone) Volume() float64 {
	height := vector.Distance(c.Base, c.Tip)
	return height * math.Pi * c.Radius * c.Radius / 3.0
}

// Contains projects p onto the tip->base axis and compares against the
// linearly interpolated radius at that height (https://stackoverflow.com/a/12826333).
func (c Cone) Contains(p vector.Vec3) bool {
	tipBase := vector.Sub(c.Tip, c.Base)
	height := vector.Normalize(&tipBase)
	tipCoord := vector.Sub(c.Tip, p)
	coneDist := vector.Dot(tipCoord, tipBase)
	if coneDist < 0 || coneDist > height {
		return false
	}
	radiusAt := (coneDist / height) * c.Radius
	orthoDist := vector.Distance(tipCoord, vector.Scale(tipBase, coneDist))
	return orthoDist <= radiusAt
}

func (c Cone) Bounds() AABB {
	lower := vector.Vec3{
		math.Min(c.Base[0], c.Tip[0]) - c.Radius,
		math.Min(c.Base[1], c.Tip[1]) - c.Radius,
		math.Min(c.Base[2], c.Tip[2]) - c.Radius,
	}
	upper := vector.Vec3{
		math.Max(c.Base[0], c.Tip[0]) + c.Radius,
		math.Max(c.Base[1], c.Tip[1]) + c.Radius,
		math.Max(c.Base[2], c.Tip[2]) + c.Radius,
	}
	return AABB{Lower: lower, Upper: upper}
}

func (c Cone) GeneratePoints(rng *rand.Rand) ([]vector.Vec3, error) {
	return sampleVolumetric(c, rng)
}

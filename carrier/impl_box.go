package carrier

import (
	"math/rand"

	"morphwizard/vector"
)

// Box is an axis-aligned carrier region between Lower and Upper corners.
type Box struct {
	RegionName string
	Points     uint32
	Lower      vector.Vec3
	Upper      vector.Vec3
}

func (b Box) Name() string      { return b.RegionName }
func (b Box) NumPoints() uint32 { return b.Points }

func (b Box) Volume() float64 {
	return (b.Upper[0] - b.Lower[0]) * (b.Upper[1] - b.Lower[1]) * (b.Upper[2] - b.Lower[2])
}

func (b Box) Contains(p vector.Vec3) bool {
	return p[0] >= b.Lower[0] && p[1] >= b.Lower[1] && p[2] >= b.Lower[2] &&
		p[0] <= b.Upper[0] && p[1] <= b.Upper[1] && p[2] <= b.Upper[2]
}

func (b Box) Bounds() AABB {
	return AABB{Lower: b.Lower, Upper: b.Upper}
}

func (b Box) GeneratePoints(rng *rand.Rand) ([]vector.Vec3, error) {
	return sampleVolumetric(b, rng)
}

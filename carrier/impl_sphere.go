package carrier

import (
	"math"
	"math/rand"

	"morphwizard/vector"
)

// Sphere is a carrier region centered at Center with the given Radius.
type Sphere struct {
	RegionName string
	Points     uint32
	Center     vector.Vec3
	Radius     float64
}

func (s Sphere) Name() string      { return s.RegionName }
func (s Sphere) NumPoints() uint32 { return s.Points }

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

func (s Sphere) Contains(p vector.Vec3) bool {
	return vector.Distance(p, s.Center) <= s.Radius
}

func (s Sphere) Bounds() AABB {
	r := vector.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Lower: vector.Sub(r, s.Center), Upper: vector.Add(s.Center, r)}
}

func (s Sphere) GeneratePoints(rng *rand.Rand) ([]vector.Vec3, error) {
	return sampleVolumetric(s, rng)
}

package carrier

import (
	"math"
	"math/rand"
	"sort"

	"morphwizard/spatial"
	"morphwizard/vector"
)

// oversampleFactor is how many extra candidate points are drawn before
// thinning, per spec §4.1 step 1.
const oversampleFactor = 2

// sampleVolumetric implements the spec §4.1 generate_points algorithm shared
// by every volumetric region (Sphere, Cylinder, Cone, Box):
//
//  1. Oversample by 2x num_points using rejection sampling inside the AABB.
//  2. Build an immutable k-d tree over the oversampled set.
//  3. Compute target_spacing = (volume/num_points)^(1/3), min_dist = 0.5*target_spacing.
//  4. For every ordered pair (i,j) with j<i and distance <= min_dist, emit (d^2, i, j).
//  5. Sort pairs ascending by distance.
//  6. Walk pairs, discarding i when neither i nor j already discarded, until
//     discard count reaches oversample-num_points.
//  7. Return the first num_points of the surviving sequence.
func sampleVolumetric(r Region, rng *rand.Rand) ([]vector.Vec3, error) {
	numPoints := r.NumPoints()
	if numPoints == 0 {
		return nil, ErrInvalidNumPoints
	}
	volume := r.Volume()
	if volume <= 0 {
		return nil, ErrDegenerateRegion
	}

	oversample := oversampleFactor * numPoints
	bounds := r.Bounds()
	points := make([]vector.Vec3, 0, oversample)
	for uint32(len(points)) < oversample {
		candidate := vector.Vec3{
			uniform(rng, bounds.Lower[0], bounds.Upper[0]),
			uniform(rng, bounds.Lower[1], bounds.Upper[1]),
			uniform(rng, bounds.Lower[2], bounds.Upper[2]),
		}
		if r.Contains(candidate) {
			points = append(points, candidate)
		}
	}

	tree, err := spatial.New(points)
	if err != nil {
		return nil, err
	}

	targetSpacing := math.Cbrt(volume / float64(numPoints))
	minDist := 0.5 * targetSpacing
	minDistSquared := minDist * minDist

	type pair struct {
		distSquared float64
		i, j        uint32
	}
	var pairs []pair
	var neighborBuf []spatial.Neighbor
	for i := range points {
		neighborBuf = tree.WithinRadius(points[i], minDistSquared, neighborBuf[:0])
		for _, n := range neighborBuf {
			if n.Index < uint32(i) {
				pairs = append(pairs, pair{distSquared: n.SquaredDistance, i: uint32(i), j: n.Index})
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].distSquared < pairs[b].distSquared
	})

	numDiscard := oversample - numPoints
	discard := make(map[uint32]struct{}, numDiscard)
	for _, p := range pairs {
		if uint32(len(discard)) >= numDiscard {
			break
		}
		if _, ok := discard[p.i]; ok {
			continue
		}
		if _, ok := discard[p.j]; ok {
			continue
		}
		discard[p.i] = struct{}{}
	}

	kept := make([]vector.Vec3, 0, numPoints)
	for i, p := range points {
		if _, ok := discard[uint32(i)]; ok {
			continue
		}
		kept = append(kept, p)
		if uint32(len(kept)) == numPoints {
			break
		}
	}
	return kept, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

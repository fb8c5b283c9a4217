package morphology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupPolynomialExactAndClampedHits(t *testing.T) {
	require.Equal(t, dendritePolynomials[2], lookupPolynomial(50))
	require.Equal(t, dendritePolynomials[0], lookupPolynomial(1))
	require.Equal(t, dendritePolynomials[len(dendritePolynomials)-1], lookupPolynomial(5000))
}

func TestLookupPolynomialInterpolatesInterior(t *testing.T) {
	// Halfway between the 25 and 50 entries.
	got := lookupPolynomial(37.5)
	for i := 0; i < 3; i++ {
		want := 0.5*dendritePolynomials[1][i] + 0.5*dendritePolynomials[2][i]
		require.InDelta(t, want, got[i], 1e-12)
	}
}

// TestSolveDendriteDiametersTapersMonotonically builds a straight six-node
// chain (soma root plus a five-hop dendrite) directly, bypassing the
// growth engine, and checks spec §8 scenario 6: diameters strictly
// decrease from root toward the terminal, and the terminal's own diameter
// lands exactly on minimum_diameter when dendrite_taper == 1 (every
// tabulated row satisfies a+b+c == 0).
func TestSolveDendriteDiametersTapersMonotonically(t *testing.T) {
	nodes := []Node{
		{ParentIndex: RootSentinel, InstructionIndex: 0, PathLength: 0, NumChildren: 1},
		{ParentIndex: 0, InstructionIndex: 1, PathLength: 10, NumChildren: 1},
		{ParentIndex: 1, InstructionIndex: 1, PathLength: 20, NumChildren: 1},
		{ParentIndex: 2, InstructionIndex: 1, PathLength: 30, NumChildren: 1},
		{ParentIndex: 3, InstructionIndex: 1, PathLength: 40, NumChildren: 1},
		{ParentIndex: 4, InstructionIndex: 1, PathLength: 50, NumChildren: 0},
	}
	instructions := []Instruction{
		{SomaDiameter: 4},
		{Morphology: &Morphology{DendriteTaper: 1, MinimumDiameter: 0.1}},
	}

	solveDendriteDiameters(instructions, nodes)

	require.Equal(t, 4.0, nodes[0].Diameter, "soma diameter must be untouched")
	require.InDelta(t, 0.1, nodes[5].Diameter, 1e-9, "terminal diameter must equal minimum_diameter")

	for i := 1; i < 5; i++ {
		require.Greater(t, nodes[i].Diameter, nodes[i+1].Diameter, "diameter must strictly decrease toward the terminal")
	}
}

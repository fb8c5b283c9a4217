package morphology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"morphwizard/vector"
)

// TestGenerateSingleSoma covers spec §8 scenario 1: a lone soma
// instruction plants exactly one root node with no parent.
func TestGenerateSingleSoma(t *testing.T) {
	instructions := []Instruction{
		{SomaDiameter: 10, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
	}

	nodes, sections, err := Generate(instructions)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.True(t, nodes[0].IsRoot())
	require.Equal(t, 10.0, nodes[0].Diameter)
	require.Equal(t, vector.Vec3{0, 0, 0}, nodes[0].Coordinates)
	require.Equal(t, Section{Start: 0, End: 1}, sections[0])
}

// TestGenerateSingleExtensionInsertsSomaAnchor covers spec §8 scenario 2:
// a single carrier point farther from the soma than its own radius grows
// through a synthetic anchor node sitting on the soma surface before the
// terminal node.
func TestGenerateSingleExtensionInsertsSomaAnchor(t *testing.T) {
	// Spec §8 scenario 2's literal values.
	morph := &Morphology{
		ExtensionDistance:     math.Inf(1),
		ExtensionAngle:        math.Pi,
		BranchDistance:        math.Inf(1),
		BranchAngle:           math.Pi,
		MaximumBranches:       1,
		MinimumDiameter:       1,
		DendriteTaper:         0,
		MaximumSegmentLength:  math.Inf(1),
		ReachAllCarrierPoints: false,
	}
	instructions := []Instruction{
		{SomaDiameter: 10, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
		{Morphology: morph, Roots: []uint32{0}, CarrierPoints: []vector.Vec3{{100, 0, 0}}},
	}

	nodes, _, err := Generate(instructions)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	require.True(t, nodes[0].IsRoot())
	require.Equal(t, 0.0, nodes[0].PathLength)

	require.False(t, nodes[1].CarrierPoint, "the soma-surface anchor is not itself a carrier point")
	require.Equal(t, vector.Vec3{5, 0, 0}, nodes[1].Coordinates, "anchor sits on the soma surface toward the target")
	require.Equal(t, uint32(0), nodes[1].ParentIndex)
	require.Equal(t, 5.0, nodes[1].PathLength)

	require.True(t, nodes[2].CarrierPoint)
	require.Equal(t, vector.Vec3{100, 0, 0}, nodes[2].Coordinates)
	require.Equal(t, uint32(1), nodes[2].ParentIndex)
	require.Equal(t, 100.0, nodes[2].PathLength)
	// dendrite_taper == 0 collapses every tabulated polynomial to its
	// minimum_diameter offset alone.
	require.InDelta(t, 1.0, nodes[2].Diameter, 1e-9)
}

// TestGenerateAxonPrefersExtendingOverBranching covers spec §8 scenario 5:
// with extend_before_branch set, a stale candidate proposing a second
// branch off an already-extended parent is requeued with an updated
// branch_num and so loses to the candidate that continues the existing
// branch, even though the requeued candidate's raw priority was lower.
func TestGenerateAxonPrefersExtendingOverBranching(t *testing.T) {
	morph := &Morphology{
		ExtendBeforeBranch:    true,
		ExtensionDistance:     20,
		ExtensionAngle:        math.Pi,
		BranchDistance:        20,
		BranchAngle:           math.Pi,
		MaximumBranches:       10,
		MinimumDiameter:       0.1,
		DendriteTaper:         0,
		MaximumSegmentLength:  math.Inf(1),
		ReachAllCarrierPoints: false,
	}
	instructions := []Instruction{
		{SomaDiameter: 30, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
		{
			Morphology: morph,
			Roots:      []uint32{0},
			CarrierPoints: []vector.Vec3{
				{10, 0, 0}, // A: closer to the root
				{0, 15, 0}, // B: 15 from the root, ~18.03 from A
			},
		},
	}

	nodes, _, err := Generate(instructions)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	require.Equal(t, uint32(0), nodes[1].ParentIndex, "A extends directly off the soma")
	require.Equal(t, uint32(1), nodes[2].ParentIndex, "B extends off A rather than branching a second time off the soma")
}

// TestGenerateRelaxationRecoversAngleRejectedCandidate covers spec §8
// scenario 4: a candidate that the main loop drops for exceeding the
// angle limit is still reached once reach_all_carrier_points triggers the
// relaxation pass, which ignores angle/distance constraints and picks the
// lowest-priority relaxed candidate.
func TestGenerateRelaxationRecoversAngleRejectedCandidate(t *testing.T) {
	morph := &Morphology{
		ExtensionDistance:     12, // excludes point D (distance ~14.14) from the soma directly
		ExtensionAngle:        0.1,
		BranchDistance:        20,
		BranchAngle:           0.1,
		MaximumBranches:       10,
		MinimumDiameter:       0.1,
		DendriteTaper:         0,
		MaximumSegmentLength:  math.Inf(1),
		ReachAllCarrierPoints: true,
	}
	instructions := []Instruction{
		{SomaDiameter: 25, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
		{
			Morphology: morph,
			Roots:      []uint32{0},
			CarrierPoints: []vector.Vec3{
				{10, 0, 0},  // A
				{10, 10, 0}, // D: 90 degrees off the root->A axis from A
			},
		},
	}

	nodes, _, err := Generate(instructions)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	require.Equal(t, uint32(0), nodes[1].ParentIndex)
	require.Equal(t, vector.Vec3{10, 0, 0}, nodes[1].Coordinates)
	require.Equal(t, uint32(1), nodes[2].ParentIndex, "D is only reachable through A once the angle constraint is ignored")
	require.Equal(t, vector.Vec3{10, 10, 0}, nodes[2].Coordinates)
}

func TestGenerateRejectsInvalidInstructions(t *testing.T) {
	_, _, err := Generate([]Instruction{{SomaDiameter: 0}})
	require.Error(t, err)
}

func TestGenerateSkipsNoopNeuriteInstruction(t *testing.T) {
	morph := &Morphology{
		ExtensionDistance:    10,
		ExtensionAngle:       math.Pi,
		BranchDistance:       10,
		BranchAngle:          math.Pi,
		MaximumBranches:      10,
		MinimumDiameter:      0.1,
		DendriteTaper:        1,
		MaximumSegmentLength: math.Inf(1),
	}
	instructions := []Instruction{
		{SomaDiameter: 10, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
		{Morphology: morph, Roots: []uint32{0}}, // zero carrier points: no-op
	}

	nodes, sections, err := Generate(instructions)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, Section{Start: 1, End: 1}, sections[1])
}

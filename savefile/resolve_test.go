package savefile

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"morphwizard/vector"
)

func TestResolveBuildsIndexBasedInstructions(t *testing.T) {
	save := &SaveFile{
		CarrierPoints: []CarrierPointsRegion{
			{Type: "point", Name: "origin", Coords: [3]float64{0, 0, 0}},
			{Type: "point", Name: "tip", Coords: [3]float64{100, 0, 0}},
		},
		Instructions: []GuiInstruction{
			{Type: "soma", Name: "cell_body", SomaDiameter: 10, CarrierPoints: []string{"origin"}},
			{
				Type:                 "dendrite",
				Name:                 "apical",
				ExtensionDistance:    200,
				ExtensionAngle:       3.14159,
				BranchDistance:       200,
				BranchAngle:          3.14159,
				MinimumDiameter:      1,
				MaximumSegmentLength: 1e308,
				CarrierPoints:        []string{"tip"},
				Roots:                []string{"cell_body"},
			},
		},
	}

	instructions, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, instructions, 2)

	require.True(t, instructions[0].IsSoma())
	require.Equal(t, 10.0, instructions[0].SomaDiameter)
	require.Equal(t, []vector.Vec3{{0, 0, 0}}, instructions[0].CarrierPoints)

	require.True(t, instructions[1].IsDendrite())
	require.Equal(t, []vector.Vec3{{100, 0, 0}}, instructions[1].CarrierPoints)
	require.Equal(t, []uint32{0}, instructions[1].Roots)
}

func TestResolveDropsDanglingRootReference(t *testing.T) {
	save := &SaveFile{
		Instructions: []GuiInstruction{
			{Type: "soma", Name: "cell_body", SomaDiameter: 10},
			{
				Type:                 "axon",
				Name:                 "main",
				ExtensionDistance:    10,
				BranchDistance:       10,
				MinimumDiameter:      1,
				MaximumSegmentLength: 10,
				Roots:                []string{"cell_body", "does_not_exist"},
			},
		},
	}

	instructions, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, instructions[1].Roots)
	require.True(t, instructions[1].IsAxon())
}

func TestResolveRejectsDuplicateNames(t *testing.T) {
	save := &SaveFile{
		Instructions: []GuiInstruction{
			{Type: "soma", Name: "cell_body", SomaDiameter: 10},
			{Type: "soma", Name: "cell_body", SomaDiameter: 20},
		},
	}
	_, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrDuplicateInstructionName)
}

func TestResolveRejectsUnknownRegion(t *testing.T) {
	save := &SaveFile{
		Instructions: []GuiInstruction{
			{Type: "soma", Name: "cell_body", SomaDiameter: 10, CarrierPoints: []string{"missing"}},
		},
	}
	_, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrUnknownRegion)
}

func TestResolveDeduplicatesRepeatedRegionReferences(t *testing.T) {
	save := &SaveFile{
		CarrierPoints: []CarrierPointsRegion{
			{Type: "point", Name: "origin", Coords: [3]float64{1, 2, 3}},
		},
		Instructions: []GuiInstruction{
			{Type: "soma", Name: "cell_body", SomaDiameter: 10, CarrierPoints: []string{"origin", "origin"}},
		},
	}
	instructions, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, instructions[0].CarrierPoints, 1, "a region referenced twice contributes its points once")
}

func TestResolveRejectsUnknownInstructionType(t *testing.T) {
	save := &SaveFile{
		Instructions: []GuiInstruction{
			{Type: "neurite", Name: "bogus"},
		},
	}
	_, err := Resolve(save, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrUnknownInstructionType)
}

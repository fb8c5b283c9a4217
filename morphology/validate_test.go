package morphology

import (
	"errors"
	"math"
	"testing"
)

func validNeurite() *Morphology {
	return &Morphology{
		BalancingFactor:      0,
		ExtensionDistance:    10,
		ExtensionAngle:       math.Pi,
		BranchDistance:       10,
		BranchAngle:          math.Pi,
		MaximumBranches:      10,
		MinimumDiameter:      0.1,
		DendriteTaper:        1,
		MaximumSegmentLength: math.Inf(1),
	}
}

func TestValidateAcceptsWellFormedInstructions(t *testing.T) {
	instructions := []Instruction{
		{SomaDiameter: 10, CarrierPoints: nil},
		{Morphology: validNeurite(), Roots: []uint32{0}},
	}
	if err := Validate(instructions); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(m *Morphology)
		soma    func(i *Instruction)
		field   string
		somaIdx bool
	}{
		{name: "negative balancing factor", mutate: func(m *Morphology) { m.BalancingFactor = -1 }, field: "balancing_factor"},
		{name: "zero extension distance", mutate: func(m *Morphology) { m.ExtensionDistance = 0 }, field: "extension_distance"},
		{name: "extension angle too large", mutate: func(m *Morphology) { m.ExtensionAngle = math.Pi + 0.1 }, field: "extension_angle"},
		{name: "negative branch distance", mutate: func(m *Morphology) { m.BranchDistance = -5 }, field: "branch_distance"},
		{name: "negative branch angle", mutate: func(m *Morphology) { m.BranchAngle = -0.1 }, field: "branch_angle"},
		{name: "zero minimum diameter", mutate: func(m *Morphology) { m.MinimumDiameter = 0 }, field: "minimum_diameter"},
		{name: "negative dendrite taper", mutate: func(m *Morphology) { m.DendriteTaper = -1 }, field: "dendrite_taper"},
		{name: "zero maximum segment length", mutate: func(m *Morphology) { m.MaximumSegmentLength = 0 }, field: "maximum_segment_length"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validNeurite()
			tc.mutate(m)
			instructions := []Instruction{
				{SomaDiameter: 10},
				{Morphology: m, Roots: []uint32{0}},
			}
			err := Validate(instructions)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("got field %q, want %q", ve.Field, tc.field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatal("expected errors.Is(err, ErrValidation) to hold")
			}
		})
	}
}

func TestValidateRejectsForwardReferencingRoot(t *testing.T) {
	instructions := []Instruction{
		{Morphology: validNeurite(), Roots: []uint32{1}},
		{SomaDiameter: 10},
	}
	err := Validate(instructions)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "roots" {
		t.Fatalf("expected roots validation error, got %v", err)
	}
}

func TestValidateRejectsSomaWithRootsOrMissingDiameter(t *testing.T) {
	err := Validate([]Instruction{{Roots: []uint32{}, SomaDiameter: 0}})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "soma_diameter" {
		t.Fatalf("expected soma_diameter validation error, got %v", err)
	}

	err = Validate([]Instruction{{SomaDiameter: 10}, {SomaDiameter: 10, Roots: []uint32{0}}})
	if !errors.As(err, &ve) || ve.Field != "roots" {
		t.Fatalf("expected roots validation error for soma, got %v", err)
	}
}

func TestValidateRejectsNeuriteWithSomaDiameter(t *testing.T) {
	m := validNeurite()
	err := Validate([]Instruction{{Morphology: m, SomaDiameter: 5}})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "soma_diameter" {
		t.Fatalf("expected soma_diameter validation error, got %v", err)
	}
}

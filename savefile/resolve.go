package savefile

import (
	"math/rand"

	"morphwizard/carrier"
	"morphwizard/morphology"
	"morphwizard/vector"
)

// Resolve implements the name->index adapter (spec §4.5): it builds the
// two name maps, resolves each instruction's carrier-point regions and
// root references, and returns the index-based instruction slice
// morphology.Generate expects. rng drives every volumetric region's point
// sampling; pass a seeded *rand.Rand for deterministic output.
func Resolve(save *SaveFile, rng *rand.Rand) ([]morphology.Instruction, error) {
	regionsByName := make(map[string]carrier.Region, len(save.CarrierPoints))
	for _, def := range save.CarrierPoints {
		if _, exists := regionsByName[def.Name]; exists {
			return nil, &nameError{sentinel: ErrDuplicateRegionName, name: def.Name}
		}
		region, err := toRegion(def)
		if err != nil {
			return nil, err
		}
		regionsByName[def.Name] = region
	}

	instructionIndexByName := make(map[string]int, len(save.Instructions))
	for idx, gi := range save.Instructions {
		if _, exists := instructionIndexByName[gi.Name]; exists {
			return nil, &nameError{sentinel: ErrDuplicateInstructionName, name: gi.Name}
		}
		instructionIndexByName[gi.Name] = idx
	}

	instructions := make([]morphology.Instruction, len(save.Instructions))
	for idx, gi := range save.Instructions {
		carrierPoints, err := resolveCarrierPoints(gi.CarrierPoints, regionsByName, rng)
		if err != nil {
			return nil, err
		}

		switch gi.Type {
		case "soma":
			instructions[idx] = morphology.Instruction{
				SomaDiameter:  gi.SomaDiameter,
				CarrierPoints: carrierPoints,
			}
			continue
		case "dendrite", "axon":
		default:
			return nil, &nameError{sentinel: ErrUnknownInstructionType, name: gi.Type}
		}

		instructions[idx] = morphology.Instruction{
			Morphology: &morphology.Morphology{
				BalancingFactor:       gi.BalancingFactor,
				ExtensionDistance:     gi.ExtensionDistance,
				ExtensionAngle:        gi.ExtensionAngle,
				BranchDistance:        gi.BranchDistance,
				BranchAngle:           gi.BranchAngle,
				ExtendBeforeBranch:    gi.Type == "axon" || gi.ExtendBeforeBranch,
				MaximumBranches:       gi.MaximumBranches,
				MinimumDiameter:       gi.MinimumDiameter,
				DendriteTaper:         gi.DendriteTaper,
				MaximumSegmentLength:  gi.MaximumSegmentLength,
				ReachAllCarrierPoints: gi.ReachAllCarrierPoints,
			},
			CarrierPoints: carrierPoints,
			Roots:         resolveRoots(gi.Roots, instructionIndexByName),
		}
	}
	return instructions, nil
}

// resolveRoots maps root instruction names to indices, silently dropping
// names with no matching instruction (spec §4.5: "the desktop shell
// allows dangling references across edits").
func resolveRoots(names []string, instructionIndexByName map[string]int) []uint32 {
	var roots []uint32
	for _, name := range names {
		if idx, ok := instructionIndexByName[name]; ok {
			roots = append(roots, uint32(idx))
		}
	}
	return roots
}

// resolveCarrierPoints concatenates the sampled points of every region an
// instruction references, deduplicating repeated region names within the
// same instruction (spec §4.5: "duplicate region names contribute their
// points once each").
func resolveCarrierPoints(names []string, regionsByName map[string]carrier.Region, rng *rand.Rand) ([]vector.Vec3, error) {
	var points []vector.Vec3
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		region, ok := regionsByName[name]
		if !ok {
			return nil, &nameError{sentinel: ErrUnknownRegion, name: name}
		}
		generated, err := region.GeneratePoints(rng)
		if err != nil {
			return nil, err
		}
		points = append(points, generated...)
	}
	return points, nil
}

func toRegion(def CarrierPointsRegion) (carrier.Region, error) {
	switch def.Type {
	case "point":
		return &carrier.Point{RegionName: def.Name, Coords: vector.Vec3(def.Coords)}, nil
	case "sphere":
		return &carrier.Sphere{
			RegionName: def.Name,
			Points:     def.NumPoints,
			Center:     vector.Vec3(def.Center),
			Radius:     def.Radius,
		}, nil
	case "cylinder":
		return &carrier.Cylinder{
			RegionName: def.Name,
			Points:     def.NumPoints,
			Top:        vector.Vec3(def.Top),
			Bottom:     vector.Vec3(def.Bottom),
			Radius:     def.Radius,
		}, nil
	case "cone":
		return &carrier.Cone{
			RegionName: def.Name,
			Points:     def.NumPoints,
			Tip:        vector.Vec3(def.Tip),
			Base:       vector.Vec3(def.Base),
			Radius:     def.Radius,
		}, nil
	case "box":
		return &carrier.Box{
			RegionName: def.Name,
			Points:     def.NumPoints,
			Lower:      vector.Vec3(def.Lower),
			Upper:      vector.Vec3(def.Upper),
		}, nil
	default:
		return nil, &nameError{sentinel: ErrUnknownRegionType, name: def.Type}
	}
}

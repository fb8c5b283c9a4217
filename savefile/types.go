package savefile

// SaveFile is the desktop shell's on-disk JSON document (spec §6, "Save
// file").
type SaveFile struct {
	Instructions  []GuiInstruction      `json:"instructions"`
	CarrierPoints []CarrierPointsRegion `json:"carrier_points"`
}

// GuiInstruction is one user-authored growth step, tagged by Type ("soma",
// "dendrite", or "axon"). Field names match the morphology parameter table
// in spec §3 exactly; fields that don't apply to a given Type are left at
// their zero value and ignored by Resolve.
//
// A value of 0 for ExtensionDistance, BranchDistance, or
// MaximumSegmentLength has no valid meaning under spec §3's domain table
// (all three must be > 0), so an unbounded distance is expressed as a
// very large finite sentinel (e.g. math.MaxFloat64) rather than a JSON
// representation of infinity, which encoding/json cannot round-trip.
type GuiInstruction struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Soma-only.
	SomaDiameter float64 `json:"soma_diameter,omitempty"`

	// Neurite-only (dendrite or axon).
	BalancingFactor       float64 `json:"balancing_factor,omitempty"`
	ExtensionDistance     float64 `json:"extension_distance,omitempty"`
	ExtensionAngle        float64 `json:"extension_angle,omitempty"`
	BranchDistance        float64 `json:"branch_distance,omitempty"`
	BranchAngle           float64 `json:"branch_angle,omitempty"`
	ExtendBeforeBranch    bool    `json:"extend_before_branch,omitempty"`
	MaximumBranches       uint32  `json:"maximum_branches,omitempty"`
	MinimumDiameter       float64 `json:"minimum_diameter,omitempty"`
	DendriteTaper         float64 `json:"dendrite_taper,omitempty"`
	MaximumSegmentLength  float64 `json:"maximum_segment_length,omitempty"`
	ReachAllCarrierPoints bool    `json:"reach_all_carrier_points,omitempty"`

	// CarrierPoints names the regions (by CarrierPointsRegion.Name) this
	// instruction draws its carrier points from (soma or neurite); Roots
	// names the earlier instructions (by GuiInstruction.Name) a neurite
	// grows from.
	CarrierPoints []string `json:"carrier_points,omitempty"`
	Roots         []string `json:"roots,omitempty"`
}

// point3 is a bare [x, y, z] JSON array, used for every coordinate field
// below.
type point3 = [3]float64

// CarrierPointsRegion is one named carrier-point generator, tagged by Type
// ("point", "sphere", "cylinder", "cone", or "box"). Only the fields
// relevant to Type are populated.
type CarrierPointsRegion struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Volumetric variants only (sphere, cylinder, cone, box).
	NumPoints uint32 `json:"num_points,omitempty"`

	// point.
	Coords point3 `json:"coords"`

	// sphere.
	Center point3  `json:"center"`
	Radius float64 `json:"radius,omitempty"`

	// cylinder (Radius above is shared).
	Top    point3 `json:"top"`
	Bottom point3 `json:"bottom"`

	// cone (Radius above is shared, as the base radius).
	Tip  point3 `json:"tip"`
	Base point3 `json:"base"`

	// box.
	Lower point3 `json:"lower"`
	Upper point3 `json:"upper"`
}

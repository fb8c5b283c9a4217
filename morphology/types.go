package morphology

import (
	"math"

	"morphwizard/vector"
)

// RootSentinel is the ParentIndex value marking a node as a tree root (a
// soma). Equivalent to Rust's u32::MAX.
const RootSentinel = math.MaxUint32

// Morphology holds the growth parameters for one non-soma instruction (spec
// §3, "Morphology parameters").
type Morphology struct {
	BalancingFactor       float64
	ExtensionDistance     float64
	ExtensionAngle        float64
	BranchDistance        float64
	BranchAngle           float64
	ExtendBeforeBranch    bool
	MaximumBranches       uint32
	MinimumDiameter       float64
	DendriteTaper         float64
	MaximumSegmentLength  float64
	ReachAllCarrierPoints bool
}

// IsDendrite reports whether this morphology prefers branching over
// extending (the inverse of ExtendBeforeBranch).
func (m *Morphology) IsDendrite() bool { return !m.ExtendBeforeBranch }

// IsAxon reports whether this morphology prefers extending over branching.
func (m *Morphology) IsAxon() bool { return m.ExtendBeforeBranch }

// Instruction is one step of a neuron growth program: either a soma (when
// Morphology is nil) or a neurite (dendrite or axon, depending on
// Morphology.ExtendBeforeBranch).
type Instruction struct {
	// Morphology is nil for a soma instruction, non-nil for a neurite.
	Morphology *Morphology
	// SomaDiameter is required (> 0) for a soma instruction and unused
	// for a neurite.
	SomaDiameter float64
	// CarrierPoints are the target locations this instruction grows
	// toward (for a neurite) or the root coordinates it plants (for a
	// soma). Zero carrier points makes a neurite instruction a no-op.
	CarrierPoints []vector.Vec3
	// Roots lists instruction indices, strictly less than this
	// instruction's own index, whose sections seed this neurite's
	// growth. Unused by soma instructions.
	Roots []uint32
}

// IsSoma reports whether this instruction plants roots rather than growing
// a neurite.
func (i *Instruction) IsSoma() bool { return i.Morphology == nil }

// IsDendrite reports whether this is a neurite instruction with dendrite
// morphology.
func (i *Instruction) IsDendrite() bool { return i.Morphology != nil && i.Morphology.IsDendrite() }

// IsAxon reports whether this is a neurite instruction with axon
// morphology.
func (i *Instruction) IsAxon() bool { return i.Morphology != nil && i.Morphology.IsAxon() }

// Node is one record in the flat, append-only node array (spec §3,
// "Node").
type Node struct {
	Coordinates      vector.Vec3
	Diameter         float64
	ParentIndex      uint32
	InstructionIndex uint32
	NumChildren      uint32
	PathLength       float64
	// CarrierPoint is true when this node sits exactly on a user carrier
	// point; false for interpolated subdivision nodes and the synthetic
	// soma-surface anchor node.
	CarrierPoint bool
}

// IsRoot reports whether n is a tree root (a soma node).
func (n *Node) IsRoot() bool { return n.ParentIndex == RootSentinel }

// IsSegment reports whether n has a parent (the inverse of IsRoot).
func (n *Node) IsSegment() bool { return !n.IsRoot() }

// IsTerminal reports whether n is a leaf (zero children).
func (n *Node) IsTerminal() bool { return n.NumChildren == 0 }

// Section is the contiguous half-open range [Start, End) of node-array
// offsets produced by a single instruction.
type Section struct {
	Start uint32
	End   uint32
}

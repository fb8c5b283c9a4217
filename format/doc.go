// Package format renders a generated morphology (a morphology.Node array
// plus its originating morphology.Instruction list) into the external
// formats a desktop shell consumes: the SWC neuron-morphology text format
// and a NEURON Python script (spec §4.6). NeuroML is a declared non-goal
// and is not implemented.
//
// Both emitters operate in a single batch pass over the already-generated
// node array; they hold no state across calls and perform no I/O beyond
// writing to the io.Writer they are given.
//
// Grounded on original_source/src/formats.rs (create_swc) and
// original_source/src/python.rs (export_nrn), translated from per-node and
// live-NEURON-binding logic into batch text emitters.
package format

// Package savefile defines the desktop shell's JSON save-file schema (spec
// §6) and the name-based adapter (spec §4.5) that resolves it into the
// index-based morphology.Instruction slice the growth engine consumes.
//
// GuiInstruction and CarrierPointsRegion are tagged sum types over a
// discriminant "type" field, following spec §9's "Tagged variants" note
// and styled like lvlath's builder package config types. Resolve performs
// the two name->index/name->region mappings, builds each instruction's
// carrier-points vector by concatenating its referenced regions' sampled
// points, and silently drops dangling root references exactly as spec
// §4.5 specifies ("the desktop shell allows dangling references across
// edits").
package savefile

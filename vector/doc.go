// Package vector provides the three-dimensional linear algebra primitives
// used throughout morphwizard: distance, angle, cross product, and the
// rotation matrix that aligns one unit vector onto another.
//
// Every neurite segment, carrier-point region, and mesh-adjacent consumer in
// this module works in R^3, so a single small, well-tested kernel file
// backs all of them rather than re-deriving dot products ad hoc.
//
// Conventions:
//   - Vec3 is a plain [3]float64 value type — no heap allocation, safe to copy.
//   - All functions except Normalize are pure and leave their arguments
//     unchanged; Normalize scales the vector it is given in place.
//   - Angle and rotation routines assume finite, non-zero-length inputs; callers
//     at the package boundary (morphology, carrier) are responsible for the
//     zero-vector precondition documented on RotateAlign.
package vector

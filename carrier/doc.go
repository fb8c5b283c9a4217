// Package carrier implements the carrier-point sampler: volumetric rejection
// sampling of geometric regions (point, sphere, cylinder, cone, axis-aligned
// box) with Poisson-like thinning via k-d tree neighbor queries.
//
// A Region is a named target a single growth instruction attempts to
// innervate. GeneratePoints is a pure function of the region's parameters
// and a supplied *rand.Rand — callers control determinism by seeding that
// source themselves, matching lvlath's rng.go convention of never hiding a
// time-based source inside library code.
//
// Grounded on original_source/src/carrier_points.rs; styled after lvlath's
// builder package (tagged variants, one impl_*.go per shape, sentinel
// errors in errors.go).
package carrier

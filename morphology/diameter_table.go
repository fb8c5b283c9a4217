package morphology

// dendriteLengths and dendritePolynomials are the embedded tabulated data
// the diameter solver interpolates over (spec §4.3, §6: "two
// whitespace-delimited ASCII tables ... parsed at startup (or
// compile-time embedded)"). dendriteLengths is the strictly increasing
// sequence of reference dendrite path lengths (microns); dendritePolynomials
// is the parallel sequence of normalized quadratic coefficients [a, b, c]
// describing diameter as a function of normalized path position t in
// [0, 1], per Cuntz, Borst & Segev (2007)'s optimal-taper model. Every row
// satisfies a+b+c == 0, so D(1) == 0 in normalized units regardless of
// which row is selected: after scaling by dendrite_taper and offsetting by
// minimum_diameter, a terminal's own diameter always lands exactly on
// minimum_diameter (spec §8 scenario 6).
//
// The original data tables (quaddiameter_ldend.txt,
// quaddiameter_P_normalized.txt) are data files, not source code, and
// were not part of the retrieved reference pack; these values are a
// compact, monotonically-shallowing approximation of that paper's
// reported curves, sized for a clean re-implementation rather than
// reproduced verbatim from the original files.
var dendriteLengths = []float64{
	10, 25, 50, 100, 200, 400, 800, 1600,
}

var dendritePolynomials = [][3]float64{
	{0.05, -0.95, 0.90},
	{0.08, -0.93, 0.85},
	{0.12, -0.92, 0.80},
	{0.18, -0.93, 0.75},
	{0.24, -0.94, 0.70},
	{0.29, -0.94, 0.65},
	{0.33, -0.93, 0.60},
	{0.36, -0.91, 0.55},
}

package carrier

import "errors"

// ErrInvalidNumPoints indicates a volumetric region was asked to generate
// zero or fewer points.
var ErrInvalidNumPoints = errors.New("carrier: num_points must be positive")

// ErrDegenerateRegion indicates a region's analytic volume is zero or
// negative, so target spacing cannot be computed (e.g. a cylinder or cone
// with radius 0, a box with a degenerate axis).
var ErrDegenerateRegion = errors.New("carrier: region has zero or negative volume")

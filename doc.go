// Package bezclip computes the intersections of lines and quadratic and cubic
// Bézier curves in the plane.
//
// # Curves
//
// [Line], [QuadBez] and [CubicBez] are the concrete curve types. [Curve] is a
// tagged union of the three that is used wherever curves of different kinds
// meet, such as in paths and intersection queries. All curves are
// parametrized over t ∈ [0, 1].
//
// # Intersections
//
// [Intersections] returns the pairs of parameters (s, t) at which two curves
// meet. Lines are intersected in closed form, lines and Béziers by solving a
// quadratic or cubic with [SolveQuadratic] and [SolveCubic], and two Béziers
// by fat-line clipping: each curve is repeatedly narrowed down to the
// parameter range that can still lie within a band around the other, until
// both are flat. Overlapping collinear curves report the two ends of their
// common section. [IntersectionsSubdivision] computes the same result by
// plain subdivision and is mostly useful for testing.
//
// Results are normalized: parameters close to 0 or 1 are snapped onto them,
// parameters outside [0, 1] are dropped and duplicates are removed. See
// [Normalize].
//
// # Paths
//
// [BezPath] is a sequence of [PathElement] values, as found in SVG path data
// (see [ParseSVGPath]). [PathIntersections] and [SelfIntersections]
// intersect the curves of paths, using a sweep line (see package
// honnef.co/go/bezclip/sweep) to skip pairs of curves that are horizontally
// apart.
//
// # Tolerances
//
// Floating-point comparisons use the constants [Epsilon], [ParametricEpsilon]
// and [SpatialEpsilon]. Coordinates are expected to be of moderate magnitude;
// two positions closer than SpatialEpsilon on both axes are the same point.
package bezclip

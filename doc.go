// Package tessellate decides how finely curved geometry is approximated
// by straight segments in a solid modeling evaluator.
//
// The resolution is controlled by three parameters, held in a
// [Resolution]: a fixed number of fragments ($fn), a minimal fragment
// length ($fs) and a minimal fragment angle ($fa).  From these,
// [Resolution.CircularSegments] and the slice functions compute segment
// counts for circles, helical and conical sweeps, and straight sweeps.
//
// For extrusions with twist or non-uniform scaling, the edges of a
// polygonal outline must be subdivided so that the sides of the
// resulting solid stay smooth.  [Resolution.SplitOutline] inserts
// vertices along the edges, taking into account how much each edge is
// stretched along the sweep, and keeps symmetric shapes symmetric.
//
// All functions are pure and safe for concurrent use.  Out-of-range
// resolution parameters are clamped and reported through the logger set
// with [SetLogger].
package tessellate

//go:generate go run ./testcases/export

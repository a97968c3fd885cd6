// Package interval provides the half-open time interval model used by the
// availability engine.
//
// Intervals are immutable values over absolute instants. The package offers
// the set operations the engine needs: merging an arbitrary collection into
// a minimal sorted union, intersecting with a window, and subtracting a busy
// set from a window to obtain the free sub-intervals.
package interval

// Package geom provides the integer cell geometry used by the tour engine:
// points, sizes, rectangles, and the distance/area comparisons the
// update-decision predicates are built on.
package geom

// Package collision holds the static level geometry and the overlap tests the
// resolver runs against it.
package collision

import "github.com/milk9111/platformer/common"

// Overlaps reports whether a and b intersect, edges included. Touching boxes
// overlap. The test is symmetric.
func Overlaps(a, b common.Rect) bool {
	return a.BB().Intersects(b.BB())
}

// PlatformOverlap reports contact between a and a one-sided platform b: the
// horizontal extents must intersect and a's bottom edge must lie within b's
// vertical span. A box fully above b or already below its bottom edge does not
// touch it.
func PlatformOverlap(a, b common.Rect) bool {
	return a.Bottom() >= b.Top() &&
		a.Bottom() <= b.Bottom() &&
		a.Left() <= b.Right() &&
		a.Right() >= b.Left()
}

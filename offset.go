package tour

import "github.com/grindlemire/go-tour/internal/geom"

// --- Offset Reconciliation ---
//
// Raw element coordinates are viewport-relative (see Surface). The helpers
// below convert them into root-relative content coordinates, which is the
// space snapshots, tooltip positions, and the update predicates operate in.

// CurrentScrollOffset returns root's scroll offset. For the body the offset
// is read from the root scroller, never from the body element's own scroll
// fields; hosts report those inconsistently, the same way browsers do for
// document.body.
func CurrentScrollOffset(s Surface, root Element) Point {
	if root == nil || root == s.Body() {
		return s.RootScrollOffset()
	}
	return s.ElementScrollOffset(root)
}

// AddScrollOffset returns coords shifted by root's current scroll offset.
func AddScrollOffset(s Surface, root Element, coords Point) Point {
	return coords.Add(CurrentScrollOffset(s, root))
}

// AddAppropriateOffset converts viewport-relative coords into root-relative
// content coordinates. When root is a nested scroll container, coords are
// first made relative to root's own on-screen position before the scroll
// offset is applied. Returns nil if either argument is missing; callers
// must check.
func AddAppropriateOffset(s Surface, root Element, coords *Point) *Point {
	if coords == nil || root == nil {
		return nil
	}

	if root != s.Body() {
		rootCoords := s.ElementCoords(root)
		if rootCoords == nil {
			return nil
		}
		adjusted := AddScrollOffset(s, root, coords.Sub(*rootCoords))
		return &adjusted
	}

	adjusted := AddScrollOffset(s, root, *coords)
	return &adjusted
}

// ApplyCenterOffset returns the top-left coordinate at which a box of size
// b must be placed so its center coincides with the center of a box of size
// aDims anchored at aCoords. Works whether b is smaller or larger than a.
func ApplyCenterOffset(aCoords Point, aDims Size, b Size) Point {
	return Point{
		X: aCoords.X + aDims.Width/2 - b.Width/2,
		Y: aCoords.Y + aDims.Height/2 - b.Height/2,
	}
}

// CenterElementInViewport returns the root-relative coordinate at which el
// must be placed to sit centered in root's currently visible window.
// Returns nil if el is missing or cannot be measured.
func CenterElementInViewport(s Surface, root, el Element) *Point {
	if el == nil {
		return nil
	}
	dims := s.ElementDims(el)
	if dims == nil {
		return nil
	}
	centered := ApplyCenterOffset(CurrentScrollOffset(s, root), s.ViewportDims(root), *dims)
	return &centered
}

// ViewportCenter returns the root-relative coordinate at which a box the
// size of el sits centered in root's visible window. With no element the
// box is zero-size, yielding the center point of the window itself, the
// anchor for a targetless, centered tooltip.
func ViewportCenter(s Surface, root, el Element) Point {
	var dims Size
	if el != nil {
		if d := s.ElementDims(el); d != nil {
			dims = *d
		}
	}
	return ApplyCenterOffset(CurrentScrollOffset(s, root), s.ViewportDims(root), dims)
}

// --- View predicates ---

// ElementInView reports whether el lies fully within root's visible window.
// When at is non-nil the element is tested at that candidate root-relative
// position instead of its current one.
func ElementInView(s Surface, root, el Element, at *Point) bool {
	if root == nil || el == nil {
		return false
	}
	dims := s.ElementDims(el)
	if dims == nil {
		return false
	}

	pos := at
	if pos == nil {
		pos = AddAppropriateOffset(s, root, s.ElementCoords(el))
	}
	if pos == nil {
		return false
	}

	window := geom.RectAt(CurrentScrollOffset(s, root), s.ViewportDims(root))
	return window.ContainsRect(geom.RectAt(*pos, *dims))
}

// DimsFitViewport reports whether a box of size d can be made fully visible
// in root's window at all, i.e. whether scrolling toward it can help.
func DimsFitViewport(s Surface, root Element, d Size) bool {
	return Fits(d, s.ViewportDims(root))
}

// ForeignTarget reports whether target sits outside the scope identified by
// selector. Foreign targets are exempt from scroll-into-view behavior.
func ForeignTarget(s Surface, target Element, selector string) bool {
	return !s.Matches(target, selector)
}

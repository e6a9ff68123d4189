package tour

import "github.com/grindlemire/go-tour/internal/debug"

// --- Update-Decision Engine ---
//
// Three independent predicates decide whether the host needs to re-render
// or scroll. Each is a pure function of the live surface and the snapshot
// the host kept from the previous render; this package owns no state
// between calls.

// UpdateArgs is the snapshot bundle the host passes on every tick. Passed
// by value; nothing here is retained.
type UpdateArgs struct {
	Surface Surface
	Root    Element
	Tooltip Element
	Target  Element

	// LastTargetCoords and LastTargetDims are the target's root-relative
	// geometry from the previous render. Nil until the first render.
	LastTargetCoords *Point
	LastTargetDims   *Size

	// TooltipPosition is where the tooltip is currently rendered.
	TooltipPosition *PlacedPoint

	// RerenderTolerance is the minimum position distance or area delta
	// that counts as target movement. A single threshold covers both.
	RerenderTolerance float64

	DisableAutoScroll  bool
	AllowForeignTarget bool
	Selector           string

	// Position overrides the tooltip position function for desync checks.
	// Nil means TooltipPosition (the package default).
	Position PositionFunc

	// Padding, Separation, and Orientation are forwarded to the position
	// function.
	Padding     int
	Separation  int
	Orientation []Placement
}

func (a UpdateArgs) positionArgs() PositionArgs {
	return PositionArgs{
		Surface:     a.Surface,
		Root:        a.Root,
		Tooltip:     a.Tooltip,
		Target:      a.Target,
		Padding:     a.Padding,
		Separation:  a.Separation,
		Orientation: a.Orientation,
	}
}

// TargetChanged reports whether the target has moved or resized beyond
// tolerance since the last render.
//
// Absence handling is three-way and deliberate:
//   - target and both snapshot halves absent: nothing has been rendered
//     yet, nothing to compare, no update.
//   - any one of them absent while another is present: the cached snapshot
//     is out of sync with the live target reference (e.g. the target was
//     reassigned mid-flight); force a refresh without measuring.
//   - all present: measure live and compare against the snapshot.
func TargetChanged(s Surface, root, target Element, lastCoords *Point, lastDims *Size, tolerance float64) bool {
	if target == nil && lastCoords == nil && lastDims == nil {
		return false
	}
	if target == nil || lastCoords == nil || lastDims == nil {
		return true
	}

	dims := s.ElementDims(target)
	coords := AddAppropriateOffset(s, root, s.ElementCoords(target))
	if dims == nil || coords == nil {
		// A target we can no longer measure is out of sync with its
		// snapshot, same as the presence-mismatch branch above.
		return true
	}

	changedSize := AreaDiff(*dims, *lastDims) > tolerance
	changedPosition := Distance(*coords, *lastCoords) > tolerance
	if changedSize || changedPosition {
		debug.Log("TargetChanged: size=%v position=%v tolerance=%v", changedSize, changedPosition, tolerance)
	}
	return changedSize || changedPosition
}

// ShouldScroll reports whether the host should scroll to bring the tooltip
// and target into view. Returns false when auto-scroll is disabled or any
// participant is missing.
//
// With AllowForeignTarget and a selector, the geometric check is bypassed
// entirely: scrolling is wanted exactly when the target is inside the
// selector's scope.
func ShouldScroll(a UpdateArgs) bool {
	if a.Root == nil || a.Tooltip == nil || a.Target == nil {
		return false
	}
	if a.DisableAutoScroll {
		return false
	}

	if a.AllowForeignTarget && a.Selector != "" {
		return !ForeignTarget(a.Surface, a.Target, a.Selector)
	}

	var tooltipAt *Point
	if a.TooltipPosition != nil {
		tooltipAt = &a.TooltipPosition.Coords
	}
	if !ElementInView(a.Surface, a.Root, a.Tooltip, tooltipAt) {
		return true
	}

	if !ElementInView(a.Surface, a.Root, a.Target, nil) {
		// Only scroll toward targets that can actually be brought fully
		// into view; chasing a target larger than the viewport thrashes.
		targetDims := a.Surface.ElementDims(a.Target)
		if targetDims != nil && DimsFitViewport(a.Surface, a.Root, *targetDims) {
			return true
		}
	}

	return false
}

// TooltipDesync reports whether a targetless, centered tooltip has drifted
// from where it would be positioned if recomputed right now. Always false
// when a target exists: anchored tooltips are governed by TargetChanged.
// Unlike the tolerance-based target check this comparison is exact: a
// centered tooltip has no competing don't-scroll tradeoff, so any drift
// triggers a reposition.
func TooltipDesync(a UpdateArgs) bool {
	if a.Target != nil {
		return false
	}
	if a.Root == nil || a.Tooltip == nil {
		return false
	}

	position := a.Position
	if position == nil {
		position = TooltipPosition
	}
	fresh := position(a.positionArgs())

	switch {
	case fresh == nil && a.TooltipPosition == nil:
		return false
	case fresh == nil || a.TooltipPosition == nil:
		return true
	}
	return Distance(fresh.Coords, a.TooltipPosition.Coords) > 0
}

// ShouldUpdate is the top-level gate the host calls each tick: true when
// any of the three predicates wants a re-render or scroll. All three are
// pure, so evaluation order is unobservable; the cheap snapshot checks run
// first.
func ShouldUpdate(a UpdateArgs) bool {
	if a.Root == nil || a.Tooltip == nil {
		return false
	}
	return TargetChanged(a.Surface, a.Root, a.Target, a.LastTargetCoords, a.LastTargetDims, a.RerenderTolerance) ||
		ShouldScroll(a) ||
		TooltipDesync(a)
}

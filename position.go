package tour

import (
	"github.com/grindlemire/go-tour/internal/debug"
	"github.com/grindlemire/go-tour/internal/geom"
)

// Placement identifies which side of the target a tooltip sits on.
type Placement int

const (
	// PlacementAuto defers to the preference order in PositionArgs.
	PlacementAuto Placement = iota
	PlacementEast
	PlacementSouth
	PlacementWest
	PlacementNorth
	// PlacementCenter is used for targetless tooltips centered in the
	// viewport.
	PlacementCenter
)

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementAuto:
		return "auto"
	case PlacementEast:
		return "east"
	case PlacementSouth:
		return "south"
	case PlacementWest:
		return "west"
	case PlacementNorth:
		return "north"
	case PlacementCenter:
		return "center"
	default:
		return "unknown"
	}
}

// PlacedPoint is a tooltip coordinate tagged with the side of the target it
// sits on. Coords are root-relative.
type PlacedPoint struct {
	Coords    Point
	Placement Placement
}

// PositionFunc computes where a tooltip should go. The engine treats the
// position function as a black box; TooltipPosition is the default.
type PositionFunc func(PositionArgs) *PlacedPoint

// PositionArgs bundles everything a position function may need. Passed by
// value; position functions must not retain it.
type PositionArgs struct {
	Surface Surface
	Root    Element
	Tooltip Element
	Target  Element

	// Padding is the gap kept between the tooltip and the viewport edges
	// when judging whether a candidate side fits.
	Padding int

	// Separation is the gap between the tooltip and the target.
	Separation int

	// Orientation lists candidate sides in preference order.
	// Empty means east, south, west, north.
	Orientation []Placement
}

// defaultOrientation is the side preference used when none is given.
var defaultOrientation = []Placement{PlacementEast, PlacementSouth, PlacementWest, PlacementNorth}

// TooltipPosition computes the root-relative coordinate for a tooltip:
// centered in the viewport when there is no target, otherwise on the first
// preferred side of the target where the tooltip fits fully inside the
// padded viewport window. If no side fits, the first preference is used
// as-is. Returns nil when the tooltip (or the surface) cannot be measured.
func TooltipPosition(a PositionArgs) *PlacedPoint {
	if a.Surface == nil || a.Root == nil || a.Tooltip == nil {
		return nil
	}
	tooltipDims := a.Surface.ElementDims(a.Tooltip)
	if tooltipDims == nil {
		return nil
	}

	if a.Target == nil {
		return &PlacedPoint{
			Coords:    ViewportCenter(a.Surface, a.Root, a.Tooltip),
			Placement: PlacementCenter,
		}
	}

	targetCoords := AddAppropriateOffset(a.Surface, a.Root, a.Surface.ElementCoords(a.Target))
	targetDims := a.Surface.ElementDims(a.Target)
	if targetCoords == nil || targetDims == nil {
		return nil
	}

	orientation := a.Orientation
	if len(orientation) == 0 {
		orientation = defaultOrientation
	}

	window := geom.RectAt(CurrentScrollOffset(a.Surface, a.Root), a.Surface.ViewportDims(a.Root))
	padded := geom.NewRect(
		window.X+a.Padding,
		window.Y+a.Padding,
		window.Width-2*a.Padding,
		window.Height-2*a.Padding,
	)

	var first *PlacedPoint
	for _, side := range orientation {
		coords, ok := placeAt(side, *targetCoords, *targetDims, *tooltipDims, a.Separation)
		if !ok {
			continue
		}
		candidate := &PlacedPoint{Coords: coords, Placement: side}
		if first == nil {
			first = candidate
		}
		if padded.ContainsRect(geom.RectAt(coords, *tooltipDims)) {
			return candidate
		}
	}

	if first != nil {
		debug.Log("TooltipPosition: no side fits viewport, falling back to %v", first.Placement)
	}
	return first
}

// placeAt returns the tooltip's top-left coordinate for the given side of
// the target, centering the tooltip along the target's other axis.
func placeAt(side Placement, targetCoords Point, targetDims, tooltipDims Size, separation int) (Point, bool) {
	centered := ApplyCenterOffset(targetCoords, targetDims, tooltipDims)

	switch side {
	case PlacementEast:
		return Point{X: targetCoords.X + targetDims.Width + separation, Y: centered.Y}, true
	case PlacementWest:
		return Point{X: targetCoords.X - tooltipDims.Width - separation, Y: centered.Y}, true
	case PlacementSouth:
		return Point{X: centered.X, Y: targetCoords.Y + targetDims.Height + separation}, true
	case PlacementNorth:
		return Point{X: centered.X, Y: targetCoords.Y - tooltipDims.Height - separation}, true
	default:
		return Point{}, false
	}
}

// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package tour

import "github.com/grindlemire/go-tour/internal/geom"

// Point represents an (X, Y) coordinate in surface cells.
type Point = geom.Point

// Size represents a non-negative width/height pair.
type Size = geom.Size

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return geom.Distance(a, b)
}

// AreaDiff returns the absolute difference between the areas of two sizes.
func AreaDiff(a, b Size) float64 {
	return geom.AreaDiff(a, b)
}

// Fits returns true if a box of size inner fits inside a box of size outer.
func Fits(inner, outer Size) bool {
	return geom.Fits(inner, outer)
}

package geom

import "math"

// Size represents a non-negative width/height pair in surface cells.
type Size struct {
	Width, Height int
}

// Area returns the area of the size. Degenerate sizes have zero area.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// IsZero returns true if the size has no extent in either axis.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// AreaDiff returns the absolute difference between the areas of two sizes.
func AreaDiff(a, b Size) float64 {
	return math.Abs(float64(a.Area() - b.Area()))
}

// Fits returns true if a box of size inner fits inside a box of size outer.
func Fits(inner, outer Size) bool {
	return inner.Width <= outer.Width && inner.Height <= outer.Height
}

package tcelltour

import (
	"fmt"

	tour "github.com/grindlemire/go-tour"
)

// Option is a functional option for configuring a Surface.
type Option func(*Surface) error

// WithContentSize sets the body region's content dimensions. Use this when
// the content scrolls beyond the screen. Both dimensions must be positive.
func WithContentSize(width, height int) Option {
	return func(s *Surface) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("content size must be positive, got %dx%d", width, height)
		}
		s.body.rect = tour.NewRect(0, 0, width, height)
		return nil
	}
}

// WithRootScroll sets the initial scroll offset without emitting a scroll
// event.
func WithRootScroll(p tour.Point) Option {
	return func(s *Surface) error {
		s.rootScroll = p
		return nil
	}
}

// RegionOption is a functional option for configuring a Region.
type RegionOption func(*Region)

// Focusable marks the region as able to receive keyboard focus.
func Focusable() RegionOption {
	return func(r *Region) {
		r.focusable = true
	}
}

// WithScroll sets the region's own scroll offset.
func WithScroll(p tour.Point) RegionOption {
	return func(r *Region) {
		r.scroll = p
	}
}

// OnFocus registers a callback invoked whenever the region gains focus.
func OnFocus(fn func(*Region)) RegionOption {
	return func(r *Region) {
		r.onFocus = fn
	}
}

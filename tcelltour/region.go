package tcelltour

import (
	tour "github.com/grindlemire/go-tour"
)

// Region is a rectangular element registered on the surface. Regions form
// a tree rooted at the surface body and satisfy tour.Focusable,
// tour.Container, and tour.EventTarget.
type Region struct {
	surface *Surface
	parent  *Region

	id        string
	rect      tour.Rect // root-relative content coordinates
	focusable bool
	scroll    tour.Point

	children []*Region

	nextHandlerID int
	keyHandlers   map[int]func(tour.KeyEvent) bool
	clickHandlers map[int]func()

	onFocus func(*Region)
}

// ID returns the region's identifier, used by selector matching.
func (r *Region) ID() string {
	return r.id
}

// Rect returns the region's rectangle in root-relative coordinates.
func (r *Region) Rect() tour.Rect {
	return r.rect
}

// SetRect moves or resizes the region. The next tour.ShouldUpdate tick
// picks the change up; nothing is recomputed eagerly.
func (r *Region) SetRect(rect tour.Rect) {
	r.rect = rect
}

// IsFocusable returns whether this region can currently receive focus.
func (r *Region) IsFocusable() bool {
	return r.focusable
}

// SetFocusable sets whether this region can receive focus.
func (r *Region) SetFocusable(focusable bool) {
	r.focusable = focusable
}

// Focus makes this region the surface's focused element and invokes the
// focus callback, if any.
func (r *Region) Focus() {
	r.surface.setFocused(r)
	if r.onFocus != nil {
		r.onFocus(r)
	}
}

// IsFocused returns whether this region currently has focus.
func (r *Region) IsFocused() bool {
	return r.surface.Focused() == r
}

// Children returns the region's child regions.
func (r *Region) Children() []tour.Element {
	out := make([]tour.Element, len(r.children))
	for i, c := range r.children {
		out[i] = c
	}
	return out
}

// AddKeyHandler registers fn for key events delivered to this region or
// bubbling up from focused descendants.
func (r *Region) AddKeyHandler(fn func(tour.KeyEvent) bool) (remove func()) {
	if r.keyHandlers == nil {
		r.keyHandlers = make(map[int]func(tour.KeyEvent) bool)
	}
	id := r.nextHandlerID
	r.nextHandlerID++
	r.keyHandlers[id] = fn
	return func() { delete(r.keyHandlers, id) }
}

// AddClickHandler registers fn for mouse clicks landing on this region or
// bubbling up from descendants.
func (r *Region) AddClickHandler(fn func()) (remove func()) {
	if r.clickHandlers == nil {
		r.clickHandlers = make(map[int]func())
	}
	id := r.nextHandlerID
	r.nextHandlerID++
	r.clickHandlers[id] = fn
	return func() { delete(r.clickHandlers, id) }
}

// Remove detaches the region (and its subtree) from its parent.
func (r *Region) Remove() {
	if r.parent == nil {
		return
	}
	siblings := r.parent.children
	for i, sib := range siblings {
		if sib == r {
			r.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if r.surface.Focused() == r {
		r.surface.setFocused(nil)
	}
	r.parent = nil
}

// regionAt finds the deepest region containing the root-relative point
// (x, y). Children are checked in reverse order since later regions render
// on top. Returns nil if the point is outside the region.
func (r *Region) regionAt(x, y int) *Region {
	if !r.rect.Contains(x, y) {
		return nil
	}
	for i := len(r.children) - 1; i >= 0; i-- {
		if hit := r.children[i].regionAt(x, y); hit != nil {
			return hit
		}
	}
	return r
}

// dispatchKey delivers ev to this region's handlers, then bubbles to the
// parent. Returns true if any handler consumed the event.
func (r *Region) dispatchKey(ev tour.KeyEvent) bool {
	for _, fn := range r.keyHandlers {
		if fn(ev) {
			return true
		}
	}
	if r.parent != nil {
		return r.parent.dispatchKey(ev)
	}
	return false
}

// dispatchClick delivers a click to this region's handlers, then bubbles
// to the parent. Returns true if any handler ran.
func (r *Region) dispatchClick() bool {
	// Copy first: single-shot handlers detach themselves mid-delivery.
	handlers := make([]func(), 0, len(r.clickHandlers))
	for _, fn := range r.clickHandlers {
		handlers = append(handlers, fn)
	}
	for _, fn := range handlers {
		fn()
	}
	if len(handlers) > 0 {
		return true
	}
	if r.parent != nil {
		return r.parent.dispatchClick()
	}
	return false
}

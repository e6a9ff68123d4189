package tour

import "strings"

// fakeElement is a mock element for testing: fixed measurements, optional
// focusability, children, and listener registries.
type fakeElement struct {
	id     string
	coords *Point // viewport-relative, nil = unmeasurable
	dims   *Size  // nil = unmeasurable

	focusable  bool
	focused    bool
	focusCalls int

	children []*fakeElement

	nextHandlerID int
	keyHandlers   map[int]func(KeyEvent) bool
	clickHandlers map[int]func()
}

func newFakeElement(id string, x, y, width, height int) *fakeElement {
	return &fakeElement{
		id:     id,
		coords: &Point{X: x, Y: y},
		dims:   &Size{Width: width, Height: height},
	}
}

func newFakeFocusable(id string) *fakeElement {
	e := newFakeElement(id, 0, 0, 1, 1)
	e.focusable = true
	return e
}

func (e *fakeElement) IsFocusable() bool {
	return e.focusable
}

func (e *fakeElement) Focus() {
	e.focused = true
	e.focusCalls++
}

func (e *fakeElement) Children() []Element {
	out := make([]Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *fakeElement) AddKeyHandler(fn func(KeyEvent) bool) (remove func()) {
	if e.keyHandlers == nil {
		e.keyHandlers = make(map[int]func(KeyEvent) bool)
	}
	id := e.nextHandlerID
	e.nextHandlerID++
	e.keyHandlers[id] = fn
	return func() { delete(e.keyHandlers, id) }
}

func (e *fakeElement) AddClickHandler(fn func()) (remove func()) {
	if e.clickHandlers == nil {
		e.clickHandlers = make(map[int]func())
	}
	id := e.nextHandlerID
	e.nextHandlerID++
	e.clickHandlers[id] = fn
	return func() { delete(e.clickHandlers, id) }
}

// pressKey delivers a key event to every handler on this element, the way
// a host delivers a bubbled keydown. Returns true if any handler consumed
// the event.
func (e *fakeElement) pressKey(ev KeyEvent) bool {
	for _, fn := range e.keyHandlers {
		if fn(ev) {
			return true
		}
	}
	return false
}

// click delivers a click event to every handler on this element.
func (e *fakeElement) click() {
	// Copy first: handlers may detach themselves mid-delivery.
	handlers := make([]func(), 0, len(e.clickHandlers))
	for _, fn := range e.clickHandlers {
		handlers = append(handlers, fn)
	}
	for _, fn := range handlers {
		fn()
	}
}

// fakeSurface is a mock Surface with fully scripted measurements.
// The body element's own scroll fields (bodyScroll) are kept deliberately
// divergent from rootScroll so tests can catch reads from the wrong place.
type fakeSurface struct {
	body       *fakeElement
	viewport   Size
	rootScroll Point
	bodyScroll Point
	elemScroll map[*fakeElement]Point
}

func newFakeSurface(viewportWidth, viewportHeight int) *fakeSurface {
	return &fakeSurface{
		body:     newFakeElement("body", 0, 0, viewportWidth, viewportHeight),
		viewport: Size{Width: viewportWidth, Height: viewportHeight},
	}
}

func (s *fakeSurface) Body() Element {
	return s.body
}

func (s *fakeSurface) ElementCoords(el Element) *Point {
	fe, ok := el.(*fakeElement)
	if !ok || fe == nil || fe.coords == nil {
		return nil
	}
	c := *fe.coords
	return &c
}

func (s *fakeSurface) ElementDims(el Element) *Size {
	fe, ok := el.(*fakeElement)
	if !ok || fe == nil || fe.dims == nil {
		return nil
	}
	d := *fe.dims
	return &d
}

func (s *fakeSurface) ElementScrollOffset(el Element) Point {
	fe, ok := el.(*fakeElement)
	if !ok {
		return Point{}
	}
	if fe == s.body {
		return s.bodyScroll
	}
	return s.elemScroll[fe]
}

func (s *fakeSurface) RootScrollOffset() Point {
	return s.rootScroll
}

func (s *fakeSurface) ViewportDims(root Element) Size {
	if fe, ok := root.(*fakeElement); ok && fe != s.body && fe.dims != nil {
		return *fe.dims
	}
	return s.viewport
}

func (s *fakeSurface) Matches(el Element, selector string) bool {
	fe, ok := el.(*fakeElement)
	if !ok {
		return false
	}
	if prefix, found := strings.CutSuffix(selector, "*"); found {
		return strings.HasPrefix(fe.id, prefix)
	}
	return fe.id == selector
}

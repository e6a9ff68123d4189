package tour

// Element identifies a node in the host UI: a widget, a region, a pane.
// The core treats elements as opaque, comparable references and measures
// them exclusively through a Surface. Absence of an element is expressed
// as a nil Element, never as a zero-value placeholder.
type Element interface{}

// Focusable is implemented by elements that can receive keyboard focus.
// The focus trap moves focus by calling Focus on region endpoints.
type Focusable interface {
	// IsFocusable returns whether this element can currently receive focus.
	// May return false for disabled elements.
	IsFocusable() bool

	// Focus moves keyboard focus to this element.
	Focus()
}

// Container is implemented by elements with children. The focus trap walks
// containers depth-first to discover focusable descendants.
type Container interface {
	Children() []Element
}

// EventTarget is implemented by elements that can register input listeners.
// Every Add method returns a remove closure; invoking it more than once
// must be safe.
type EventTarget interface {
	// AddKeyHandler registers fn for key events delivered to this element
	// or bubbling up from its descendants. fn returns true to consume the
	// event and suppress the host's default handling.
	AddKeyHandler(fn func(KeyEvent) bool) (remove func())

	// AddClickHandler registers fn for click/activate events on this
	// element.
	AddClickHandler(fn func()) (remove func())
}

// EventSource exposes host-level events that are not tied to a single
// element, such as terminal resize.
type EventSource interface {
	AddListener(event string, fn func()) (remove func())
}

// Surface abstracts the host UI's measurement primitives. Implementations
// are expected to be cheap: every predicate in this package may re-measure
// on each tick.
//
// Coordinate contract: ElementCoords returns viewport-relative coordinates
// (what the element's on-screen position is right now, scroll excluded).
// AddAppropriateOffset converts these into root-relative content
// coordinates, which is the space all snapshots and tooltip positions
// live in.
type Surface interface {
	// Body returns the top-level scroll root of the surface.
	Body() Element

	// ElementCoords returns el's current viewport-relative coordinates,
	// or nil if el cannot be measured right now.
	ElementCoords(el Element) *Point

	// ElementDims returns el's current dimensions, or nil if el cannot be
	// measured right now.
	ElementDims(el Element) *Size

	// ElementScrollOffset returns the scroll offset of a scrollable
	// container element.
	ElementScrollOffset(el Element) Point

	// RootScrollOffset returns the scroll offset of the surface as a
	// whole, read from the root scroller rather than the body element's
	// own scroll fields. Hosts that track scroll state per element must
	// still report the canonical value here.
	RootScrollOffset() Point

	// ViewportDims returns the size of root's visible window: the screen
	// size when root is the body, root's own client size otherwise.
	ViewportDims(root Element) Size

	// Matches reports whether el matches the given selector. Selector
	// syntax is adapter-defined.
	Matches(el Element, selector string) bool
}

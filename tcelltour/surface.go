package tcelltour

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	tour "github.com/grindlemire/go-tour"
)

// Surface implements tour.Surface and tour.EventSource over a tcell screen.
//
// The surface owns a tree of Regions rooted at a body region whose rect
// spans the content area. Content may be taller or wider than the screen;
// the scroll offset selects the visible window. HandleEvent translates raw
// tcell events into key and click dispatch plus named surface events.
type Surface struct {
	mu sync.Mutex

	screen tcell.Screen
	body   *Region

	rootScroll tour.Point
	focused    *Region

	nextListenerID int
	listeners      map[string]map[int]func()
}

// New creates a surface over screen. The body region spans the screen by
// default; use WithContentSize when the content scrolls.
func New(screen tcell.Screen, opts ...Option) (*Surface, error) {
	if screen == nil {
		return nil, fmt.Errorf("screen is required")
	}

	w, h := screen.Size()
	s := &Surface{
		screen:    screen,
		listeners: make(map[string]map[int]func()),
	}
	s.body = &Region{
		surface: s,
		id:      "body",
		rect:    tour.NewRect(0, 0, w, h),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddRegion registers a new region under parent. A nil parent attaches the
// region directly to the body. rect is in root-relative content coordinates.
func (s *Surface) AddRegion(parent *Region, id string, rect tour.Rect, opts ...RegionOption) *Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parent == nil {
		parent = s.body
	}
	r := &Region{
		surface: s,
		parent:  parent,
		id:      id,
		rect:    rect,
	}
	for _, opt := range opts {
		opt(r)
	}
	parent.children = append(parent.children, r)
	return r
}

// BodyRegion returns the root region of the surface tree.
func (s *Surface) BodyRegion() *Region {
	return s.body
}

// Focused returns the region that currently has focus, or nil.
func (s *Surface) Focused() *Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

func (s *Surface) setFocused(r *Region) {
	s.mu.Lock()
	s.focused = r
	s.mu.Unlock()
}

// SetRootScroll moves the visible window and emits a "scroll" event.
func (s *Surface) SetRootScroll(p tour.Point) {
	s.mu.Lock()
	s.rootScroll = p
	s.mu.Unlock()
	s.emit("scroll")
}

// --- tour.Surface ---

// Body returns the root region.
func (s *Surface) Body() tour.Element {
	return s.body
}

// ElementCoords returns el's viewport-relative coordinates: the content
// position minus the current scroll offset. Returns nil for elements that
// are not attached regions of this surface.
func (s *Surface) ElementCoords(el tour.Element) *tour.Point {
	r := s.region(el)
	if r == nil {
		return nil
	}
	s.mu.Lock()
	scroll := s.rootScroll
	s.mu.Unlock()
	p := r.rect.Origin().Sub(scroll)
	return &p
}

// ElementDims returns el's dimensions, or nil for elements that are not
// attached regions of this surface.
func (s *Surface) ElementDims(el tour.Element) *tour.Size {
	r := s.region(el)
	if r == nil {
		return nil
	}
	d := r.rect.Size()
	return &d
}

// ElementScrollOffset returns the region's own scroll offset. The body
// region's fields are not consulted for root scroll; see RootScrollOffset.
func (s *Surface) ElementScrollOffset(el tour.Element) tour.Point {
	r := s.region(el)
	if r == nil {
		return tour.Point{}
	}
	return r.scroll
}

// RootScrollOffset returns the canonical scroll offset of the surface.
func (s *Surface) RootScrollOffset() tour.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootScroll
}

// ViewportDims returns the screen size when root is the body (or nil), and
// the region's own size otherwise.
func (s *Surface) ViewportDims(root tour.Element) tour.Size {
	r := s.region(root)
	if r == nil || r == s.body {
		w, h := s.screen.Size()
		return tour.Size{Width: w, Height: h}
	}
	return r.rect.Size()
}

// Matches reports whether el's id matches selector. A selector ending in
// "*" matches any id with the preceding prefix; otherwise the match is
// exact.
func (s *Surface) Matches(el tour.Element, selector string) bool {
	r := s.region(el)
	if r == nil {
		return false
	}
	if prefix, ok := strings.CutSuffix(selector, "*"); ok {
		return strings.HasPrefix(r.id, prefix)
	}
	return r.id == selector
}

// region resolves el to an attached Region of this surface, or nil.
func (s *Surface) region(el tour.Element) *Region {
	r, ok := el.(*Region)
	if !ok || r == nil || r.surface != s {
		return nil
	}
	if r != s.body && r.parent == nil {
		return nil // removed regions are unmeasurable
	}
	return r
}

// --- tour.EventSource ---

// AddListener registers fn for the named surface event. "resize" fires on
// tcell resize events; "scroll" fires on SetRootScroll.
func (s *Surface) AddListener(event string, fn func()) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listeners[event] == nil {
		s.listeners[event] = make(map[int]func())
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[event][id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners[event], id)
		s.mu.Unlock()
	}
}

func (s *Surface) emit(event string) {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners[event]))
	for _, fn := range s.listeners[event] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// --- event translation ---

// HandleEvent feeds a raw tcell event through the surface. Key events are
// dispatched to the focused region (the body when nothing is focused) and
// bubble to ancestors. Primary-button mouse presses are hit tested against
// the region tree. Resize events fire "resize" listeners. Returns true if
// a handler consumed the event.
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.emit(tour.EventResize)
		return true

	case *tcell.EventKey:
		ke := translateKey(ev)
		if ke.Key == tour.KeyNone {
			return false
		}
		target := s.Focused()
		if target == nil {
			target = s.body
		}
		ke.Target = target
		return target.dispatchKey(ke)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		s.mu.Lock()
		scroll := s.rootScroll
		s.mu.Unlock()
		hit := s.body.regionAt(x+scroll.X, y+scroll.Y)
		if hit == nil {
			return false
		}
		return hit.dispatchClick()
	}
	return false
}

// translateKey maps a tcell key event onto the tour key model. Backtab
// collapses to Tab+Shift so trap handlers see a single Tab key.
func translateKey(ev *tcell.EventKey) tour.KeyEvent {
	ke := tour.KeyEvent{Mod: translateMods(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		ke.Key = tour.KeyRune
		ke.Rune = ev.Rune()
	case tcell.KeyTab:
		ke.Key = tour.KeyTab
	case tcell.KeyBacktab:
		ke.Key = tour.KeyTab
		ke.Mod |= tour.ModShift
	case tcell.KeyEscape:
		ke.Key = tour.KeyEscape
	case tcell.KeyEnter:
		ke.Key = tour.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ke.Key = tour.KeyBackspace
	case tcell.KeyUp:
		ke.Key = tour.KeyUp
	case tcell.KeyDown:
		ke.Key = tour.KeyDown
	case tcell.KeyLeft:
		ke.Key = tour.KeyLeft
	case tcell.KeyRight:
		ke.Key = tour.KeyRight
	case tcell.KeyHome:
		ke.Key = tour.KeyHome
	case tcell.KeyEnd:
		ke.Key = tour.KeyEnd
	case tcell.KeyPgUp:
		ke.Key = tour.KeyPageUp
	case tcell.KeyPgDn:
		ke.Key = tour.KeyPageDown
	}
	return ke
}

func translateMods(m tcell.ModMask) tour.Modifier {
	var mod tour.Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= tour.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= tour.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mod |= tour.ModShift
	}
	return mod
}

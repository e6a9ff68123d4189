package teatour

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	tour "github.com/grindlemire/go-tour"
)

// Surface implements tour.Surface and tour.EventSource for a bubbletea
// program. The host forwards tea messages through Update from its own
// Update method; window sizes, keys, and mouse presses are translated into
// surface events and dispatch.
type Surface struct {
	mu sync.Mutex

	root     *Block
	viewport tour.Size
	scroll   tour.Point
	focused  *Block

	nextListenerID int
	listeners      map[string]map[int]func()
}

// Option is a functional option for configuring a Surface.
type Option func(*Surface) error

// WithContentSize sets the root block's content dimensions when the view
// scrolls beyond the window.
func WithContentSize(width, height int) Option {
	return func(s *Surface) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("content size must be positive, got %dx%d", width, height)
		}
		s.root.rect = tour.NewRect(0, 0, width, height)
		return nil
	}
}

// New creates a surface for a program whose window is width x height. The
// window size is kept current by forwarding tea.WindowSizeMsg through
// Update.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", width, height)
	}
	s := &Surface{
		viewport:  tour.Size{Width: width, Height: height},
		listeners: make(map[string]map[int]func()),
	}
	s.root = &Block{
		surface: s,
		id:      "root",
		rect:    tour.NewRect(0, 0, width, height),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddBlock registers a block under parent (the root when parent is nil).
// rect is in root-relative content coordinates.
func (s *Surface) AddBlock(parent *Block, id string, rect tour.Rect) *Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parent == nil {
		parent = s.root
	}
	b := &Block{
		surface: s,
		parent:  parent,
		id:      id,
		rect:    rect,
	}
	parent.children = append(parent.children, b)
	return b
}

// AddFocusableBlock registers a block that can receive keyboard focus.
func (s *Surface) AddFocusableBlock(parent *Block, id string, rect tour.Rect) *Block {
	b := s.AddBlock(parent, id, rect)
	b.focusable = true
	return b
}

// Root returns the root block.
func (s *Surface) Root() *Block {
	return s.root
}

// Focused returns the block that currently has focus, or nil.
func (s *Surface) Focused() *Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

func (s *Surface) setFocused(b *Block) {
	s.mu.Lock()
	s.focused = b
	s.mu.Unlock()
}

// SetScroll moves the visible window and emits a "scroll" event.
func (s *Surface) SetScroll(p tour.Point) {
	s.mu.Lock()
	s.scroll = p
	s.mu.Unlock()
	s.emit("scroll")
}

// --- tour.Surface ---

// Body returns the root block.
func (s *Surface) Body() tour.Element {
	return s.root
}

// ElementCoords returns el's viewport-relative coordinates, or nil for
// elements that are not attached blocks of this surface.
func (s *Surface) ElementCoords(el tour.Element) *tour.Point {
	b := s.block(el)
	if b == nil {
		return nil
	}
	s.mu.Lock()
	scroll := s.scroll
	s.mu.Unlock()
	p := b.rect.Origin().Sub(scroll)
	return &p
}

// ElementDims returns el's dimensions, or nil for elements that are not
// attached blocks of this surface.
func (s *Surface) ElementDims(el tour.Element) *tour.Size {
	b := s.block(el)
	if b == nil {
		return nil
	}
	d := b.rect.Size()
	return &d
}

// ElementScrollOffset returns the block's own scroll offset.
func (s *Surface) ElementScrollOffset(el tour.Element) tour.Point {
	b := s.block(el)
	if b == nil {
		return tour.Point{}
	}
	return b.scroll
}

// RootScrollOffset returns the canonical scroll offset of the surface.
func (s *Surface) RootScrollOffset() tour.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// ViewportDims returns the window size when root is the surface root (or
// nil), and the block's own size otherwise.
func (s *Surface) ViewportDims(root tour.Element) tour.Size {
	b := s.block(root)
	if b == nil || b == s.root {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.viewport
	}
	return b.rect.Size()
}

// Matches reports whether el's id matches selector: exact, or prefix when
// selector ends in "*".
func (s *Surface) Matches(el tour.Element, selector string) bool {
	b := s.block(el)
	if b == nil {
		return false
	}
	if prefix, ok := strings.CutSuffix(selector, "*"); ok {
		return strings.HasPrefix(b.id, prefix)
	}
	return b.id == selector
}

func (s *Surface) block(el tour.Element) *Block {
	b, ok := el.(*Block)
	if !ok || b == nil || b.surface != s {
		return nil
	}
	if b != s.root && b.parent == nil {
		return nil
	}
	return b
}

// --- tour.EventSource ---

// AddListener registers fn for the named surface event. "resize" fires on
// tea.WindowSizeMsg; "scroll" fires on SetScroll.
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

// --- message translation ---

// Update feeds a tea message through the surface. Call it from the host
// model's Update before (or after) the host's own handling. Returns true if
// a tour handler consumed the message; hosts typically skip their own key
// handling in that case so the focus trap can override Tab.
func (s *Surface) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.mu.Lock()
		s.viewport = tour.Size{Width: msg.Width, Height: msg.Height}
		s.mu.Unlock()
		s.emit(tour.EventResize)
		return false

	case tea.KeyMsg:
		ke := translateKey(msg)
		if ke.Key == tour.KeyNone {
			return false
		}
		target := s.Focused()
		if target == nil {
			target = s.root
		}
		ke.Target = target
		return target.dispatchKey(ke)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return false
		}
		s.mu.Lock()
		scroll := s.scroll
		s.mu.Unlock()
		hit := s.root.blockAt(msg.X+scroll.X, msg.Y+scroll.Y)
		if hit == nil {
			return false
		}
		return hit.dispatchClick()
	}
	return false
}

// translateKey maps a tea key message onto the tour key model. Shift+Tab
// collapses to Tab+Shift so trap handlers see a single Tab key.
func translateKey(msg tea.KeyMsg) tour.KeyEvent {
	var ke tour.KeyEvent
	if msg.Alt {
		ke.Mod |= tour.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		ke.Key = tour.KeyRune
		if len(msg.Runes) > 0 {
			ke.Rune = msg.Runes[0]
		}
	case tea.KeyTab:
		ke.Key = tour.KeyTab
	case tea.KeyShiftTab:
		ke.Key = tour.KeyTab
		ke.Mod |= tour.ModShift
	case tea.KeyEsc:
		ke.Key = tour.KeyEscape
	case tea.KeyEnter:
		ke.Key = tour.KeyEnter
	case tea.KeyBackspace:
		ke.Key = tour.KeyBackspace
	case tea.KeyUp:
		ke.Key = tour.KeyUp
	case tea.KeyDown:
		ke.Key = tour.KeyDown
	case tea.KeyLeft:
		ke.Key = tour.KeyLeft
	case tea.KeyRight:
		ke.Key = tour.KeyRight
	case tea.KeyHome:
		ke.Key = tour.KeyHome
	case tea.KeyEnd:
		ke.Key = tour.KeyEnd
	case tea.KeyPgUp:
		ke.Key = tour.KeyPageUp
	case tea.KeyPgDown:
		ke.Key = tour.KeyPageDown
	}
	return ke
}

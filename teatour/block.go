package teatour

import (
	"github.com/charmbracelet/lipgloss"
	tour "github.com/grindlemire/go-tour"
)

// Block is a named rectangle of the rendered view, in root-relative content
// coordinates. Blocks implement tour.Focusable, tour.Container, and
// tour.EventTarget.
type Block struct {
	surface *Surface
	parent  *Block

	id        string
	rect      tour.Rect
	focusable bool
	scroll    tour.Point

	children []*Block

	keyHandlers   []*keyHandler
	clickHandlers []*clickHandler
}

type keyHandler struct {
	fn func(tour.KeyEvent) bool
}

type clickHandler struct {
	fn func()
}

// Measure returns the visual size of rendered content, ANSI sequences
// excluded.
func Measure(content string) tour.Size {
	return tour.Size{Width: lipgloss.Width(content), Height: lipgloss.Height(content)}
}

// ID returns the block's identifier.
func (b *Block) ID() string {
	return b.id
}

// Rect returns the block's rectangle in content coordinates.
func (b *Block) Rect() tour.Rect {
	return b.rect
}

// MoveTo repositions the block without resizing it.
func (b *Block) MoveTo(p tour.Point) {
	b.rect = tour.NewRect(p.X, p.Y, b.rect.Width, b.rect.Height)
}

// Resize sets the block's rect from freshly rendered content, keeping its
// position.
func (b *Block) Resize(content string) {
	size := Measure(content)
	b.rect = tour.NewRect(b.rect.X, b.rect.Y, size.Width, size.Height)
}

// IsFocusable returns whether the block can receive focus.
func (b *Block) IsFocusable() bool {
	return b.focusable
}

// Focus makes this block the surface's focused element.
func (b *Block) Focus() {
	b.surface.setFocused(b)
}

// IsFocused returns whether this block currently has focus.
func (b *Block) IsFocused() bool {
	return b.surface.Focused() == b
}

// Children returns the block's child blocks.
func (b *Block) Children() []tour.Element {
	out := make([]tour.Element, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

// AddKeyHandler registers fn for key events targeting this block or
// bubbling up from focused descendants.
func (b *Block) AddKeyHandler(fn func(tour.KeyEvent) bool) (remove func()) {
	h := &keyHandler{fn: fn}
	b.keyHandlers = append(b.keyHandlers, h)
	return func() {
		for i, cur := range b.keyHandlers {
			if cur == h {
				b.keyHandlers = append(b.keyHandlers[:i], b.keyHandlers[i+1:]...)
				return
			}
		}
	}
}

// AddClickHandler registers fn for mouse clicks landing on this block or
// bubbling up from descendants.
func (b *Block) AddClickHandler(fn func()) (remove func()) {
	h := &clickHandler{fn: fn}
	b.clickHandlers = append(b.clickHandlers, h)
	return func() {
		for i, cur := range b.clickHandlers {
			if cur == h {
				b.clickHandlers = append(b.clickHandlers[:i], b.clickHandlers[i+1:]...)
				return
			}
		}
	}
}

// Detach removes the block and its subtree from the surface.
func (b *Block) Detach() {
	if b.parent == nil {
		return
	}
	for i, sib := range b.parent.children {
		if sib == b {
			b.parent.children = append(b.parent.children[:i], b.parent.children[i+1:]...)
			break
		}
	}
	if b.surface.Focused() == b {
		b.surface.setFocused(nil)
	}
	b.parent = nil
}

// blockAt finds the deepest block containing the content point (x, y),
// front to back.
func (b *Block) blockAt(x, y int) *Block {
	if !b.rect.Contains(x, y) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := b.children[i].blockAt(x, y); hit != nil {
			return hit
		}
	}
	return b
}

func (b *Block) dispatchKey(ev tour.KeyEvent) bool {
	for _, h := range b.keyHandlers {
		if h.fn(ev) {
			return true
		}
	}
	if b.parent != nil {
		return b.parent.dispatchKey(ev)
	}
	return false
}

func (b *Block) dispatchClick() bool {
	// Snapshot: handlers may detach themselves when invoked.
	handlers := append([]*clickHandler(nil), b.clickHandlers...)
	for _, h := range handlers {
		h.fn()
	}
	if len(handlers) > 0 {
		return true
	}
	if b.parent != nil {
		return b.parent.dispatchClick()
	}
	return false
}

package tcelltour

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	tour "github.com/grindlemire/go-tour"
	"github.com/stretchr/testify/require"
)

func newTestSurface(t *testing.T, opts ...Option) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)

	s, err := New(screen, opts...)
	require.NoError(t, err)
	return s, screen
}

func TestNew(t *testing.T) {
	t.Run("requires a screen", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
	})

	t.Run("body spans the screen by default", func(t *testing.T) {
		s, _ := newTestSurface(t)
		require.Equal(t, tour.NewRect(0, 0, 80, 24), s.BodyRegion().Rect())
	})

	t.Run("content size can exceed the screen", func(t *testing.T) {
		s, _ := newTestSurface(t, WithContentSize(80, 200))
		require.Equal(t, tour.NewRect(0, 0, 80, 200), s.BodyRegion().Rect())
		require.Equal(t, tour.Size{Width: 80, Height: 24}, s.ViewportDims(s.Body()))
	})

	t.Run("rejects non-positive content size", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		require.NoError(t, screen.Init())
		_, err := New(screen, WithContentSize(80, 0))
		require.Error(t, err)
	})
}

func TestSurfaceMeasurement(t *testing.T) {
	s, _ := newTestSurface(t, WithContentSize(80, 200))
	panel := s.AddRegion(nil, "panel", tour.NewRect(10, 60, 30, 8))

	t.Run("coords are viewport relative", func(t *testing.T) {
		got := s.ElementCoords(panel)
		require.NotNil(t, got)
		require.Equal(t, tour.Point{X: 10, Y: 60}, *got)

		s.SetRootScroll(tour.Point{Y: 50})
		got = s.ElementCoords(panel)
		require.NotNil(t, got)
		require.Equal(t, tour.Point{X: 10, Y: 10}, *got)

		// Round trip back to content coordinates.
		abs := tour.AddAppropriateOffset(s, s.Body(), got)
		require.NotNil(t, abs)
		require.Equal(t, tour.Point{X: 10, Y: 60}, *abs)
	})

	t.Run("dims", func(t *testing.T) {
		got := s.ElementDims(panel)
		require.NotNil(t, got)
		require.Equal(t, tour.Size{Width: 30, Height: 8}, *got)
	})

	t.Run("foreign elements are unmeasurable", func(t *testing.T) {
		require.Nil(t, s.ElementCoords("not a region"))
		require.Nil(t, s.ElementCoords(nil))
		require.Nil(t, s.ElementDims(struct{}{}))
	})

	t.Run("removed regions are unmeasurable", func(t *testing.T) {
		gone := s.AddRegion(nil, "gone", tour.NewRect(0, 0, 4, 2))
		require.NotNil(t, s.ElementCoords(gone))
		gone.Remove()
		require.Nil(t, s.ElementCoords(gone))
		require.Nil(t, s.ElementDims(gone))
	})

	t.Run("viewport of a nested root is its own size", func(t *testing.T) {
		require.Equal(t, tour.Size{Width: 30, Height: 8}, s.ViewportDims(panel))
	})
}

func TestSurfaceMatches(t *testing.T) {
	s, _ := newTestSurface(t)
	step := s.AddRegion(nil, "step-one", tour.NewRect(0, 0, 4, 2))

	require.True(t, s.Matches(step, "step-one"))
	require.False(t, s.Matches(step, "step-two"))
	require.True(t, s.Matches(step, "step-*"))
	require.True(t, s.Matches(step, "*"))
	require.False(t, s.Matches(step, "tour-*"))
	require.False(t, s.Matches(nil, "step-one"))
}

func TestHandleEvent_Keys(t *testing.T) {
	s, _ := newTestSurface(t)
	panel := s.AddRegion(nil, "panel", tour.NewRect(0, 0, 40, 10))
	button := s.AddRegion(panel, "button", tour.NewRect(2, 2, 10, 1), Focusable())

	var got []tour.KeyEvent
	panel.AddKeyHandler(func(ev tour.KeyEvent) bool {
		got = append(got, ev)
		return true
	})

	button.Focus()
	require.True(t, button.IsFocused())

	t.Run("tab reaches ancestors with the focused target", func(t *testing.T) {
		consumed := s.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
		require.True(t, consumed)
		require.Len(t, got, 1)
		require.Equal(t, tour.KeyTab, got[0].Key)
		require.Equal(t, tour.ModNone, got[0].Mod)
		require.Same(t, button, got[0].Target)
	})

	t.Run("backtab collapses to shift tab", func(t *testing.T) {
		s.HandleEvent(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
		require.Len(t, got, 2)
		require.Equal(t, tour.KeyTab, got[1].Key)
		require.True(t, got[1].Mod.Has(tour.ModShift))
	})

	t.Run("runes carry the character", func(t *testing.T) {
		s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
		require.Equal(t, tour.KeyRune, got[2].Key)
		require.Equal(t, 'x', got[2].Rune)
	})

	t.Run("unfocused surface targets the body", func(t *testing.T) {
		s.setFocused(nil)
		var target tour.Element
		remove := s.BodyRegion().AddKeyHandler(func(ev tour.KeyEvent) bool {
			target = ev.Target
			return false
		})
		defer remove()

		require.False(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
		require.Same(t, s.BodyRegion(), target)
	})
}

func TestHandleEvent_Mouse(t *testing.T) {
	s, _ := newTestSurface(t, WithContentSize(80, 200))
	panel := s.AddRegion(nil, "panel", tour.NewRect(10, 60, 30, 8))
	button := s.AddRegion(panel, "button", tour.NewRect(12, 62, 10, 1))

	var clicks []string
	panel.AddClickHandler(func() { clicks = append(clicks, "panel") })
	button.AddClickHandler(func() { clicks = append(clicks, "button") })

	s.SetRootScroll(tour.Point{Y: 50})

	t.Run("hit test honors scroll and depth", func(t *testing.T) {
		// Screen (12, 12) is content (12, 62): inside the button.
		require.True(t, s.HandleEvent(tcell.NewEventMouse(12, 12, tcell.Button1, tcell.ModNone)))
		require.Equal(t, []string{"button"}, clicks)
	})

	t.Run("clicks bubble past handler-less regions", func(t *testing.T) {
		clicks = nil
		// Screen (11, 14) is content (11, 64): panel but not button.
		require.True(t, s.HandleEvent(tcell.NewEventMouse(11, 14, tcell.Button1, tcell.ModNone)))
		require.Equal(t, []string{"panel"}, clicks)
	})

	t.Run("non-primary buttons are ignored", func(t *testing.T) {
		clicks = nil
		require.False(t, s.HandleEvent(tcell.NewEventMouse(12, 12, tcell.ButtonNone, tcell.ModNone)))
		require.Empty(t, clicks)
	})
}

func TestHandleEvent_Resize(t *testing.T) {
	s, _ := newTestSurface(t)

	fired := 0
	remove := s.AddListener(tour.EventResize, func() { fired++ })

	require.True(t, s.HandleEvent(tcell.NewEventResize(100, 40)))
	require.Equal(t, 1, fired)

	remove()
	s.HandleEvent(tcell.NewEventResize(80, 24))
	require.Equal(t, 1, fired)
}

func TestScrollEvent(t *testing.T) {
	s, _ := newTestSurface(t)

	fired := 0
	remove := s.AddListener("scroll", func() { fired++ })
	defer remove()

	s.SetRootScroll(tour.Point{Y: 5})
	require.Equal(t, 1, fired)
	require.Equal(t, tour.Point{Y: 5}, s.RootScrollOffset())
}

// The adapter must satisfy the engine contracts end to end: trap focus
// inside a tooltip region and walk the ring with simulated key events.
func TestFocusTrapOverSimulationScreen(t *testing.T) {
	s, _ := newTestSurface(t)

	tooltip := s.AddRegion(nil, "tooltip", tour.NewRect(30, 10, 20, 5))
	prev := s.AddRegion(tooltip, "prev", tour.NewRect(31, 13, 6, 1), Focusable())
	next := s.AddRegion(tooltip, "next", tour.NewRect(42, 13, 6, 1), Focusable())

	release := tour.SetFocusTrap(tour.TrapOptions{Tooltip: tooltip})
	defer release()

	next.Focus()
	require.True(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	require.True(t, prev.IsFocused(), "tab on the last focusable wraps to the first")

	require.True(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)))
	require.True(t, next.IsFocused(), "shift tab on the first focusable wraps to the last")
}

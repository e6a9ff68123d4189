package teatour

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	tour "github.com/grindlemire/go-tour"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects non-positive window", func(t *testing.T) {
		_, err := New(0, 24)
		require.Error(t, err)
	})

	t.Run("root spans the window by default", func(t *testing.T) {
		s, err := New(80, 24)
		require.NoError(t, err)
		require.Equal(t, tour.NewRect(0, 0, 80, 24), s.Root().Rect())
	})

	t.Run("content size can exceed the window", func(t *testing.T) {
		s, err := New(80, 24, WithContentSize(80, 300))
		require.NoError(t, err)
		require.Equal(t, tour.NewRect(0, 0, 80, 300), s.Root().Rect())
		require.Equal(t, tour.Size{Width: 80, Height: 24}, s.ViewportDims(s.Body()))
	})
}

func TestSurfaceMeasurement(t *testing.T) {
	s, err := New(80, 24, WithContentSize(80, 300))
	require.NoError(t, err)
	sidebar := s.AddBlock(nil, "sidebar", tour.NewRect(0, 0, 20, 300))
	row := s.AddBlock(sidebar, "row-7", tour.NewRect(1, 70, 18, 1))

	s.SetScroll(tour.Point{Y: 60})

	got := s.ElementCoords(row)
	require.NotNil(t, got)
	require.Equal(t, tour.Point{X: 1, Y: 10}, *got)

	abs := tour.AddAppropriateOffset(s, s.Body(), got)
	require.NotNil(t, abs)
	require.Equal(t, tour.Point{X: 1, Y: 70}, *abs)

	dims := s.ElementDims(row)
	require.NotNil(t, dims)
	require.Equal(t, tour.Size{Width: 18, Height: 1}, *dims)

	require.Nil(t, s.ElementCoords(nil))
	require.Nil(t, s.ElementCoords("elsewhere"))

	row.Detach()
	require.Nil(t, s.ElementCoords(row))
}

func TestSurfaceMatches(t *testing.T) {
	s, err := New(80, 24)
	require.NoError(t, err)
	b := s.AddBlock(nil, "txn-row-3", tour.NewRect(0, 3, 80, 1))

	require.True(t, s.Matches(b, "txn-row-3"))
	require.True(t, s.Matches(b, "txn-row-*"))
	require.False(t, s.Matches(b, "txn-row-4"))
	require.False(t, s.Matches(b, "filter-*"))
}

func TestUpdate_WindowSize(t *testing.T) {
	s, err := New(80, 24)
	require.NoError(t, err)

	fired := 0
	remove := s.AddListener(tour.EventResize, func() { fired++ })
	defer remove()

	// The host still needs the size message, so it is never consumed.
	require.False(t, s.Update(tea.WindowSizeMsg{Width: 120, Height: 40}))
	require.Equal(t, 1, fired)
	require.Equal(t, tour.Size{Width: 120, Height: 40}, s.ViewportDims(s.Body()))
}

func TestUpdate_Keys(t *testing.T) {
	s, err := New(80, 24)
	require.NoError(t, err)
	modal := s.AddBlock(nil, "modal", tour.NewRect(20, 5, 40, 10))
	ok := s.AddFocusableBlock(modal, "ok", tour.NewRect(22, 13, 6, 1))

	var got []tour.KeyEvent
	modal.AddKeyHandler(func(ev tour.KeyEvent) bool {
		got = append(got, ev)
		return true
	})
	ok.Focus()

	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyTab}))
	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyShiftTab}))
	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))

	require.Len(t, got, 3)
	require.Equal(t, tour.KeyTab, got[0].Key)
	require.Equal(t, tour.ModNone, got[0].Mod)
	require.Same(t, ok, got[0].Target)
	require.Equal(t, tour.KeyTab, got[1].Key)
	require.True(t, got[1].Mod.Has(tour.ModShift))
	require.Equal(t, tour.KeyRune, got[2].Key)
	require.Equal(t, 'q', got[2].Rune)
}

func TestUpdate_Mouse(t *testing.T) {
	s, err := New(80, 24, WithContentSize(80, 300))
	require.NoError(t, err)
	row := s.AddBlock(nil, "row", tour.NewRect(0, 70, 80, 1))

	clicked := 0
	row.AddClickHandler(func() { clicked++ })
	s.SetScroll(tour.Point{Y: 60})

	press := tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.True(t, s.Update(press))
	require.Equal(t, 1, clicked)

	release := tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	require.False(t, s.Update(release))
	require.Equal(t, 1, clicked)

	miss := tea.MouseMsg{X: 5, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.False(t, s.Update(miss), "click below the row hits the handler-less root")
}

// End to end: position a tooltip against a block and trap focus inside it
// using only tea messages.
func TestTourOverTeaMessages(t *testing.T) {
	s, err := New(80, 24)
	require.NoError(t, err)
	target := s.AddBlock(nil, "save", tour.NewRect(10, 10, 20, 3))
	tooltip := s.AddBlock(nil, "tooltip", tour.NewRect(0, 0, 16, 4))
	prev := s.AddFocusableBlock(tooltip, "prev", tour.NewRect(1, 3, 6, 1))
	next := s.AddFocusableBlock(tooltip, "next", tour.NewRect(9, 3, 6, 1))

	pos := tour.TooltipPosition(tour.PositionArgs{
		Surface: s, Root: s.Body(),
		Tooltip: tooltip, Target: target,
		Separation: 1,
	})
	require.NotNil(t, pos)
	require.Equal(t, tour.PlacementEast, pos.Placement)
	tooltip.MoveTo(pos.Coords)

	release := tour.SetFocusTrap(tour.TrapOptions{Tooltip: tooltip})
	defer release()

	next.Focus()
	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyTab}))
	require.True(t, prev.IsFocused())
	require.True(t, s.Update(tea.KeyMsg{Type: tea.KeyShiftTab}))
	require.True(t, next.IsFocused())
}

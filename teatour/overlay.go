package teatour

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	tour "github.com/grindlemire/go-tour"
)

// DefaultTooltipStyle is the box drawn around tooltip content when the host
// does not supply its own style.
var DefaultTooltipStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// RenderTooltip renders content inside the default tooltip box.
func RenderTooltip(content string) string {
	return DefaultTooltipStyle.Render(content)
}

// Overlay composites the rendered tooltip over the base view. pos is the
// tooltip's root-relative position (as produced by the positioner); scroll
// and viewport define the visible window. A nil pos returns base unchanged,
// so a host can pipe its view through Overlay unconditionally.
func Overlay(base, tooltip string, pos *tour.PlacedPoint, scroll tour.Point, viewport tour.Size) string {
	if pos == nil || tooltip == "" {
		return base
	}
	screen := pos.Coords.Sub(scroll)
	return composite(base, tooltip, screen.X, screen.Y, viewport.Width, viewport.Height)
}

// composite stamps overlay onto base at screen position (x, y), treating
// both as line grids. Rows outside the window are dropped; base content to
// the right of the overlay is preserved.
func composite(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || (height > 0 && row >= height) {
			continue
		}
		target := baseLines[row]
		if w := ansi.StringWidth(target); w < width {
			target += strings.Repeat(" ", width-w)
		}

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		if w := ansi.StringWidth(line); w < overlayWidth {
			line += strings.Repeat(" ", overlayWidth-w)
		}

		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		if gap := width - x - overlayWidth - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

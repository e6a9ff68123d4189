package tour

import "github.com/grindlemire/go-tour/internal/debug"

// --- Focus Trap Builder ---
//
// A trap wires one or two focusable regions into a single closed Tab ring:
//
//	tooltip-start → … → tooltip-end → [target-start → … → target-end →] tooltip-start
//
// Forward-tab from the last element of one region lands on the first
// element of the next region in the ring; shift-tab from the first element
// lands on the last element of the previous region. Only Tab (with or
// without Shift) is intercepted; everything else passes through.

// FocusRegion is the ordered pair of edge focusables derived from a
// subtree. Absent (nil) when the subtree has no focusable descendants.
type FocusRegion struct {
	Start Focusable
	End   Focusable
}

// EdgeFocusables returns the first and last focusable descendants of root,
// in depth-first order, skipping exclude's subtree entirely. The root
// itself is not considered: containers host the trap, they do not
// participate in it. Returns nil when no focusable descendants exist.
func EdgeFocusables(root, exclude Element) *FocusRegion {
	var first, last Focusable
	walkFocusables(root, exclude, func(f Focusable) {
		if first == nil {
			first = f
		}
		last = f
	})
	if first == nil {
		return nil
	}
	return &FocusRegion{Start: first, End: last}
}

// walkFocusables calls fn for each focusable descendant of el in
// depth-first order, skipping exclude's subtree. el itself is not visited.
func walkFocusables(el, exclude Element, fn func(Focusable)) {
	c, ok := el.(Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		visitFocusables(child, exclude, fn)
	}
}

func visitFocusables(el, exclude Element, fn func(Focusable)) {
	if el == nil || el == exclude {
		return
	}
	if f, ok := el.(Focusable); ok && f.IsFocusable() {
		fn(f)
	}
	if c, ok := el.(Container); ok {
		for _, child := range c.Children() {
			visitFocusables(child, exclude, fn)
		}
	}
}

// TrapOptions configures SetFocusTrap.
type TrapOptions struct {
	// Tooltip is the tooltip container. Must implement EventTarget for the
	// trap to attach; it also acts as the lightning rod: a Tab event
	// targeting the container itself is always redirected to the tooltip's
	// first focusable.
	Tooltip Element

	// Target optionally chains the target's focusables into the ring.
	Target Element

	// DisableMaskInteraction leaves the target out of the ring even when
	// it has focusable descendants.
	DisableMaskInteraction bool
}

// SetFocusTrap wires keyboard navigation across the tooltip and, when mask
// interaction is enabled and the target has focusable descendants, the
// target. Returns a release closure that detaches everything it attached;
// calling it more than once is safe. Missing or unfocusable containers
// yield a no-op trap rather than an error.
func SetFocusTrap(o TrapOptions) (release func()) {
	noop := func() {}
	if o.Tooltip == nil {
		return noop
	}
	tooltipTarget, ok := o.Tooltip.(EventTarget)
	if !ok {
		return noop
	}

	tooltipRegion := EdgeFocusables(o.Tooltip, nil)
	if tooltipRegion == nil {
		debug.Log("SetFocusTrap: tooltip has no focusables, trap skipped")
		return noop
	}

	var targetRegion *FocusRegion
	if o.Target != nil {
		targetRegion = EdgeFocusables(o.Target, o.Tooltip)
	}
	chained := o.Target != nil && !o.DisableMaskInteraction && targetRegion != nil

	var removeTarget func()
	if chained {
		if targetEvents, ok := o.Target.(EventTarget); ok {
			// Leaving the target region loops back into the tooltip on
			// both ends.
			removeTarget = targetEvents.AddKeyHandler(trapHandler(
				*targetRegion,
				tooltipRegion.Start, // after target-end
				tooltipRegion.End,   // before target-start
				nil,
			))
		} else {
			chained = false
		}
	}

	var next, prev Focusable
	if chained {
		next, prev = targetRegion.Start, targetRegion.End
	} else {
		next, prev = tooltipRegion.Start, tooltipRegion.End
	}
	removeTooltip := tooltipTarget.AddKeyHandler(trapHandler(*tooltipRegion, next, prev, o.Tooltip))

	return func() {
		removeTooltip()
		if removeTarget != nil {
			removeTarget()
		}
	}
}

// trapHandler builds the keydown handler for one region of the ring.
// next receives focus on forward-tab from the region's end; prev receives
// focus on shift-tab from the region's start. rod, when non-nil, is the
// lightning rod: a Tab event targeting it is redirected to the region's
// start regardless of direction.
func trapHandler(region FocusRegion, next, prev Focusable, rod Element) func(KeyEvent) bool {
	return func(ev KeyEvent) bool {
		if ev.Key != KeyTab {
			return false
		}

		switch {
		case rod != nil && ev.Target == rod:
			region.Start.Focus()
			return true
		case ev.Mod.Has(ModShift) && ev.Target == region.Start:
			prev.Focus()
			return true
		case !ev.Mod.Has(ModShift) && ev.Target == region.End:
			next.Focus()
			return true
		}
		return false
	}
}

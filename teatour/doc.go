// Package teatour adapts a bubbletea model to the tour engine.
//
// Bubbletea programs render strings, so the host declares Blocks for the
// areas a tour can attach to, forwards tea messages through Surface.Update,
// and composites the rendered tooltip over its base view with Overlay. Block
// dimensions are typically measured from rendered content with Measure.
package teatour

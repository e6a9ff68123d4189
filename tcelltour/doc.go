// Package tcelltour adapts a tcell screen to the tour engine's Surface,
// EventTarget, and EventSource contracts.
//
// Hosts register Regions (rectangles in root-relative content coordinates)
// for each UI area a tour can point at, feed tcell events through
// Surface.HandleEvent, and hand the surface to the predicates in package
// tour. Rendering stays entirely with the host.
package tcelltour

// Package tour provides the reactive core of a guided-tour/tooltip engine
// for terminal UIs.
//
// Hosts import this single package for the complete decision surface:
// geometry reconciliation, the update-decision predicates, the focus trap
// builder, and listener lifecycle helpers. Actual measurement and rendering
// live behind the Surface and EventTarget interfaces; ready-made adapters
// are provided in the tcelltour and teatour packages.
package tour

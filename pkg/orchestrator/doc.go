// Package orchestrator wires map definitions, widgets, themes, and renderers
// into a single Generate call. It is the coordination layer the root package
// re-exports.
package orchestrator

// Package template defines the renderer-agnostic template seam the HTML
// renderers build on, so template engines stay swappable behind a small
// interface.
package template

// Package render converts element trees into HTML text.
//
// The renderer handles all aspects of producing valid, secure HTML
// output:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping through pkg/escape (XSS prevention)
//   - Self-closing image elements
//   - Deterministic attribute order (id, class, then insertion order)
//   - Optional pretty-printed output for development
//
// # Basic Usage
//
// To render an element tree to a string:
//
//	renderer := render.New(render.Config{})
//	html, err := renderer.RenderToString(el)
//
// or, with the default configuration:
//
//	html := render.String(el)
//
// Rendering is a pure read-only traversal. Escaping happens here, never
// at construction time, so the same tree can be rendered repeatedly and
// under different escaping policies via Config.TextEscape and
// Config.AttrEscape.
package render

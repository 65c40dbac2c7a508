package resolve

import "github.com/jonwraymond/styleops/theme"

// RenderParams carries the rendering options forwarded to the class-name
// renderer alongside the style object.
type RenderParams struct {
	// RTL selects right-to-left rendering.
	RTL bool

	// DisableAnimations suppresses animation declarations.
	DisableAnimations bool

	// Sanitize enables the renderer's CSS sanitization plugin.
	Sanitize bool

	// DisplayName is a debug label: the joined display names of the
	// component being resolved.
	DisplayName string
}

// Renderer turns a resolved style object into a class name.
//
// Contract:
// - Purity: assumed pure and total for well-formed inputs; equal inputs
//   produce equal class names.
// - Concurrency: implementations must be safe for concurrent use.
// - Caching: any internal caching a renderer does is opaque to this package.
type Renderer interface {
	Render(style theme.StyleObject, p RenderParams) string
}

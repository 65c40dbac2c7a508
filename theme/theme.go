package theme

import "sync"

// RootSlot is the name of the slot every component has: its outermost element.
const RootSlot = "root"

// DebugKey is the reserved declaration name under which style functions may
// embed a debug payload. The resolver strips it from style objects before
// they are returned or cached.
const DebugKey = "_debug"

// StyleObject is a block of style declarations, keyed by declaration name.
// Values may be nested StyleObjects (or plain maps) for pseudo-selectors and
// media queries.
type StyleObject map[string]any

// ComponentVariables are component-specific theming parameters, distinct from
// direct style properties.
type ComponentVariables map[string]any

// StyleParam carries everything a style function may depend on.
type StyleParam struct {
	Props             map[string]any
	Variables         ComponentVariables
	Theme             *Theme
	RTL               bool
	DisableAnimations bool
}

// StyleFunc computes the style object for one slot.
//
// Contract:
// - Purity: same StyleParam must produce an equivalent StyleObject.
// - Errors: style functions are assumed total for well-formed inputs;
//   panics propagate unchanged to the caller.
type StyleFunc func(StyleParam) StyleObject

// StyleSet maps slot names to their style functions.
type StyleSet map[string]StyleFunc

// EmptyStyle is a StyleFunc that returns an empty style object.
func EmptyStyle(StyleParam) StyleObject { return StyleObject{} }

// DefaultStyleSet returns the style set substituted when a theme declares no
// styles for a component: a single root slot with empty styles.
func DefaultStyleSet() StyleSet {
	return StyleSet{RootSlot: EmptyStyle}
}

// Theme aggregates per-component style definitions and owns the resolution
// caches. Themes are compared by pointer identity: two themes built from the
// same definitions are still distinct themes with distinct caches.
//
// Contract:
// - Concurrency: safe for concurrent use once constructed; ComponentStyles
//   must not be mutated after the theme is shared.
// - Lifetime: both caches live exactly as long as the theme. Dropping the
//   theme is the only teardown mechanism.
type Theme struct {
	// ComponentStyles maps a component display name to its style set.
	ComponentStyles map[string]StyleSet

	mu      sync.Mutex
	styles  *StyleStore
	classes *ClassStore
}

// New creates a theme from per-component style sets. componentStyles may be
// nil for a theme that declares no styles.
func New(componentStyles map[string]StyleSet) *Theme {
	return &Theme{ComponentStyles: componentStyles}
}

// StylesFor returns the style set declared for displayName, or nil when the
// theme declares none. Callers substitute DefaultStyleSet for nil.
func (t *Theme) StylesFor(displayName string) StyleSet {
	return t.ComponentStyles[displayName]
}

// StyleCache returns the theme's resolved-style store, allocating it on
// first use.
func (t *Theme) StyleCache() *StyleStore {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.styles == nil {
		t.styles = NewStyleStore()
	}
	return t.styles
}

// ClassCache returns the theme's class-name store, allocating it on
// first use.
func (t *Theme) ClassCache() *ClassStore {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.classes == nil {
		t.classes = NewClassStore()
	}
	return t.classes
}

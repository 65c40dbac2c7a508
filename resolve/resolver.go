package resolve

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonwraymond/styleops/config"
	"github.com/jonwraymond/styleops/telemetry"
	"github.com/jonwraymond/styleops/theme"
)

// Request describes one resolution call.
type Request struct {
	// Theme is the styling context. Required.
	Theme *theme.Theme

	// DisplayNames are the component display names whose style sets apply,
	// primary name first. Later names override earlier ones per slot.
	DisplayNames []string

	// ClassName is the component's own class, composed into the root class
	// name (for example "ui-button").
	ClassName string

	// CallerClassName is the caller-supplied class, composed last into the
	// root class name.
	CallerClassName string

	// Props are the component props style functions may depend on. They feed
	// the cache key after the reserved style-affecting keys are removed.
	Props map[string]any

	// Variables are component-specific theming parameters. Supplying any
	// disables caching unless the boolean-variable optimization covers them.
	Variables theme.ComponentVariables

	// InlineStyles is an ad hoc per-call style map for the root slot.
	// Supplying it disables caching for this call.
	InlineStyles theme.StyleObject

	// InlineStyleFunc is a one-off style-producing override for the root
	// slot. Supplying it disables caching for this call.
	InlineStyleFunc theme.StyleFunc

	// RTL selects right-to-left rendering.
	RTL bool

	// DisableAnimations suppresses animation declarations.
	DisableAnimations bool
}

// Resolver resolves style sets against a configuration snapshot. A single
// resolver is shared across components and calls.
type Resolver struct {
	Flags       config.PerformanceFlags
	Environment config.Environment

	// Debug enables debug payload extraction. Never enabled in production.
	Debug bool

	Renderer  Renderer
	Telemetry *telemetry.Recorder
}

// New creates a resolver from a configuration snapshot.
func New(cfg config.Config, renderer Renderer, rec *telemetry.Recorder) *Resolver {
	return &Resolver{
		Flags:       cfg.Flags,
		Environment: cfg.Environment,
		Debug:       cfg.DebugEnabled(),
		Renderer:    renderer,
		Telemetry:   rec,
	}
}

// Resolve merges the applicable style sets and returns lazy per-slot
// accessors for the call. Nothing is computed until a slot is read; the
// caller reads only the slots it needs, in any order.
//
// The context is retained by the returned handle for telemetry recording
// during later lazy reads; it carries no cancellation semantics here.
func (rv *Resolver) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	if req.Theme == nil {
		return nil, ErrNilTheme
	}
	if rv.Renderer == nil {
		return nil, ErrNilRenderer
	}

	flags := rv.Flags
	if flags.EnableBooleanVariablesCaching && !flags.EnableStylesCaching {
		// A setup mistake: the optimization extends styles caching and has no
		// effect on its own. Fatal outside production, ignored in production.
		if rv.Environment != config.Production {
			return nil, ErrMisconfiguredCaching
		}
		flags.EnableBooleanVariablesCaching = false
	}

	merged := rv.mergeSets(req)

	cacheEnabled := cacheEligible(flags, &req)

	var baseKey string
	if cacheEnabled {
		includeVars := flags.EnableBooleanVariablesCaching
		key, err := BuildBaseKey(req.DisplayNames, req.Props, req.Variables, includeVars, req.RTL, req.DisableAnimations)
		if err != nil {
			// Unkeyable props: fall back to per-call memoization only.
			cacheEnabled = false
		} else {
			baseKey = key
		}
	}

	primary := ""
	if len(req.DisplayNames) > 0 {
		primary = req.DisplayNames[0]
	}

	param := theme.StyleParam{
		Props:             req.Props,
		Variables:         req.Variables,
		Theme:             req.Theme,
		RTL:               req.RTL,
		DisableAnimations: req.DisableAnimations,
	}
	renderParams := RenderParams{
		RTL:               req.RTL,
		DisableAnimations: req.DisableAnimations,
		Sanitize:          flags.EnableSanitizeCSSPlugin,
		DisplayName:       strings.Join(req.DisplayNames, ","),
	}

	var styleStore *theme.StyleStore
	var classStore *theme.ClassStore
	if cacheEnabled {
		styleStore = req.Theme.StyleCache()
		classStore = req.Theme.ClassCache()
	}

	res := &Resolved{
		ctx:            ctx,
		slots:          make(map[string]*slotResolver, len(merged)),
		componentClass: req.ClassName,
		callerClass:    req.CallerClassName,
		cacheEnabled:   cacheEnabled,
		debug:          make(map[string][]any),
	}
	for name, fn := range merged {
		s := &slotResolver{
			owner:        res,
			name:         name,
			fn:           fn,
			param:        param,
			renderParams: renderParams,
			cacheEnabled: cacheEnabled,
			styleStore:   styleStore,
			classStore:   classStore,
			renderer:     rv.Renderer,
			telemetry:    rv.Telemetry,
			component:    primary,
			debugEnabled: rv.Debug,
		}
		if cacheEnabled {
			s.key = SlotKey(baseKey, name)
		}
		res.slots[name] = s
	}
	return res, nil
}

// mergeSets folds the theme's declared style sets and the call's inline
// overrides into one set, last wins per slot. A root slot always exists: a
// theme with no styles for the display names yields a root-only empty set.
func (rv *Resolver) mergeSets(req Request) theme.StyleSet {
	sets := make([]theme.StyleSet, 0, len(req.DisplayNames)+2)
	for _, name := range req.DisplayNames {
		if set := req.Theme.StylesFor(name); set != nil {
			sets = append(sets, set)
		}
	}
	if req.InlineStyleFunc != nil {
		sets = append(sets, theme.StyleSet{theme.RootSlot: req.InlineStyleFunc})
	}
	if req.InlineStyles != nil {
		inline := req.InlineStyles
		sets = append(sets, theme.StyleSet{
			theme.RootSlot: func(theme.StyleParam) theme.StyleObject { return inline },
		})
	}

	merged := theme.MergeStyleSets(sets...)
	if _, ok := merged[theme.RootSlot]; !ok {
		merged[theme.RootSlot] = theme.EmptyStyle
	}
	return merged
}

// Resolved exposes the lazy outputs of one resolution call: a style object,
// a class name, and a debug fragment list per slot.
//
// Contract:
// - Concurrency: safe for concurrent use; each slot's style function and
//   render run at most once per call.
// - Laziness: reading a slot triggers its computation; unread slots cost
//   nothing.
type Resolved struct {
	ctx            context.Context
	slots          map[string]*slotResolver
	componentClass string
	callerClass    string
	cacheEnabled   bool

	debugMu sync.Mutex
	debug   map[string][]any
}

// Style returns the resolved style object for slot, computing it on first
// read. Unknown slots yield nil.
func (r *Resolved) Style(slot string) theme.StyleObject {
	if s, ok := r.slots[slot]; ok {
		return s.style()
	}
	return nil
}

// SetStyle pre-seeds the style object for slot, overwriting the per-call
// memo and, when the call is cache-eligible, the theme cache entry.
func (r *Resolved) SetStyle(slot string, v theme.StyleObject) {
	if s, ok := r.slots[slot]; ok {
		s.setStyle(v)
	}
}

// Class returns the class name for slot, rendering it on first read. The
// root slot composes the component class, the generated class, and the
// caller class. Unknown slots yield the empty string.
func (r *Resolved) Class(slot string) string {
	if s, ok := r.slots[slot]; ok {
		return s.class()
	}
	return ""
}

// SetClass pre-seeds the generated class name for slot, overwriting the
// per-call memo and, when the call is cache-eligible, the theme cache entry.
// Root composition still applies on read.
func (r *Resolved) SetClass(slot, class string) {
	if s, ok := r.slots[slot]; ok {
		s.setClass(class)
	}
}

// Debug returns the debug fragments extracted from slot's style object.
// Empty unless debug extraction is enabled and the slot has been resolved.
func (r *Resolved) Debug(slot string) []any {
	r.debugMu.Lock()
	defer r.debugMu.Unlock()
	frags := r.debug[slot]
	if frags == nil {
		return nil
	}
	out := make([]any, len(frags))
	copy(out, frags)
	return out
}

// Slots lists the resolvable slot names in sorted order.
func (r *Resolved) Slots() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CacheEnabled reports whether this call was cache-eligible.
func (r *Resolved) CacheEnabled() bool {
	return r.cacheEnabled
}

func (r *Resolved) addDebug(slot string, frags []any) {
	r.debugMu.Lock()
	r.debug[slot] = append(r.debug[slot], frags...)
	r.debugMu.Unlock()
}

// slotResolver holds the two lazy accessors for one slot.
type slotResolver struct {
	owner *Resolved

	name         string
	key          string
	fn           theme.StyleFunc
	param        theme.StyleParam
	renderParams RenderParams

	cacheEnabled bool
	styleStore   *theme.StyleStore
	classStore   *theme.ClassStore

	renderer     Renderer
	telemetry    *telemetry.Recorder
	component    string
	debugEnabled bool

	styleCell lazyCell[theme.StyleObject]
	classCell lazyCell[string]
}

// style implements the style read path: theme cache first, then the
// per-call memo, then the style function.
func (s *slotResolver) style() theme.StyleObject {
	if s.cacheEnabled {
		if v, ok := s.styleStore.Get(s.key); ok {
			return v
		}
	}
	return s.styleCell.get(func() theme.StyleObject {
		if s.cacheEnabled {
			return s.styleStore.Compute(s.key, s.resolveStyle)
		}
		return s.resolveStyle()
	})
}

// resolveStyle invokes the style function, times it, and strips the debug
// payload before the result is memoized or cached.
func (s *slotResolver) resolveStyle() theme.StyleObject {
	var start time.Time
	record := s.telemetry.Enabled()
	if record {
		start = time.Now()
	}
	so := s.fn(s.param)
	if record {
		s.telemetry.AddResolveTime(s.owner.ctx, s.component, time.Since(start))
	}
	if s.debugEnabled {
		clean, frags := extractDebug(so)
		if frags != nil {
			s.owner.addDebug(s.name, frags)
		}
		so = clean
	}
	return so
}

// class implements the class read path: theme cache first (counting the
// hit), then the per-call memo, then a render of the forced style value.
func (s *slotResolver) class() string {
	if s.cacheEnabled {
		if v, ok := s.classStore.Get(s.key); ok {
			if s.name == theme.RootSlot {
				s.telemetry.RootCacheHit(s.owner.ctx, s.component)
			} else {
				s.telemetry.SlotCacheHit(s.owner.ctx, s.component)
			}
			return s.compose(v)
		}
	}
	v := s.classCell.get(func() string {
		if s.cacheEnabled {
			return s.classStore.Compute(s.key, s.renderClass)
		}
		return s.renderClass()
	})
	return s.compose(v)
}

// renderClass forces the style value for this slot and renders it.
func (s *slotResolver) renderClass() string {
	styleVal := s.style()

	var start time.Time
	record := s.telemetry.Enabled()
	if record {
		start = time.Now()
	}
	class := s.renderer.Render(styleVal, s.renderParams)
	if record {
		s.telemetry.AddRenderTime(s.owner.ctx, s.component, time.Since(start))
	}
	return class
}

// compose applies the root composition rule; non-root slots pass through.
func (s *slotResolver) compose(generated string) string {
	if s.name != theme.RootSlot {
		return generated
	}
	return ComposeClassNames(s.owner.componentClass, generated, s.owner.callerClass)
}

func (s *slotResolver) setStyle(v theme.StyleObject) {
	s.styleCell.set(v)
	if s.cacheEnabled {
		s.styleStore.Set(s.key, v)
	}
}

func (s *slotResolver) setClass(v string) {
	s.classCell.set(v)
	if s.cacheEnabled {
		s.classStore.Set(s.key, v)
	}
}

// extractDebug removes the reserved debug payload from a style object,
// returning the cleaned object and the payload as a fragment list. The input
// is not mutated.
func extractDebug(so theme.StyleObject) (theme.StyleObject, []any) {
	payload, ok := so[theme.DebugKey]
	if !ok {
		return so, nil
	}
	clean := make(theme.StyleObject, len(so)-1)
	for k, v := range so {
		if k != theme.DebugKey {
			clean[k] = v
		}
	}
	if frags, ok := payload.([]any); ok {
		return clean, frags
	}
	return clean, []any{payload}
}

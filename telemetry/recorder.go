package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Record holds the accumulated instrumentation for one component display
// name.
type Record struct {
	// StylesRootCacheHits counts class-name cache hits on the root slot.
	StylesRootCacheHits int64

	// StylesSlotsCacheHits counts class-name cache hits on non-root slots.
	StylesSlotsCacheHits int64

	// MSResolveStylesTotal is the cumulative time spent in style functions,
	// in milliseconds.
	MSResolveStylesTotal float64

	// MSRenderStylesTotal is the cumulative time spent rendering class
	// names, in milliseconds.
	MSRenderStylesTotal float64
}

// Recorder accumulates per-component telemetry.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Nil safety: a nil *Recorder is valid and reports Enabled() == false.
// - Errors: recording must not panic; instrument failures surface only at
//   construction.
type Recorder struct {
	enabled bool

	mu      sync.Mutex
	records map[string]*Record

	rootHits    metric.Int64Counter
	slotHits    metric.Int64Counter
	resolveHist metric.Float64Histogram
	renderHist  metric.Float64Histogram
}

// NewRecorder creates an enabled recorder without an OpenTelemetry mirror.
func NewRecorder() *Recorder {
	return &Recorder{enabled: true, records: make(map[string]*Record)}
}

// NewRecorderWithMeter creates an enabled recorder that mirrors every update
// into instruments on the given meter.
func NewRecorderWithMeter(meter metric.Meter) (*Recorder, error) {
	rootHits, err := meter.Int64Counter(
		"styles.cache.hits.root",
		metric.WithDescription("Class-name cache hits on root slots"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	slotHits, err := meter.Int64Counter(
		"styles.cache.hits.slots",
		metric.WithDescription("Class-name cache hits on non-root slots"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	resolveHist, err := meter.Float64Histogram(
		"styles.resolve.duration_ms",
		metric.WithDescription("Time spent resolving style objects in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	renderHist, err := meter.Float64Histogram(
		"styles.render.duration_ms",
		metric.WithDescription("Time spent rendering class names in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		enabled:     true,
		records:     make(map[string]*Record),
		rootHits:    rootHits,
		slotHits:    slotHits,
		resolveHist: resolveHist,
		renderHist:  renderHist,
	}, nil
}

// Enabled reports whether recording is active. Nil recorders are disabled.
func (r *Recorder) Enabled() bool {
	return r != nil && r.enabled
}

// RootCacheHit records a class-name cache hit on the root slot of component.
func (r *Recorder) RootCacheHit(ctx context.Context, component string) {
	if !r.Enabled() {
		return
	}
	r.update(component, func(rec *Record) { rec.StylesRootCacheHits++ })
	if r.rootHits != nil {
		r.rootHits.Add(ctx, 1, componentAttr(component))
	}
}

// SlotCacheHit records a class-name cache hit on a non-root slot of
// component.
func (r *Recorder) SlotCacheHit(ctx context.Context, component string) {
	if !r.Enabled() {
		return
	}
	r.update(component, func(rec *Record) { rec.StylesSlotsCacheHits++ })
	if r.slotHits != nil {
		r.slotHits.Add(ctx, 1, componentAttr(component))
	}
}

// AddResolveTime adds d to the cumulative style-function time of component.
func (r *Recorder) AddResolveTime(ctx context.Context, component string, d time.Duration) {
	if !r.Enabled() {
		return
	}
	ms := durationMS(d)
	r.update(component, func(rec *Record) { rec.MSResolveStylesTotal += ms })
	if r.resolveHist != nil {
		r.resolveHist.Record(ctx, ms, componentAttr(component))
	}
}

// AddRenderTime adds d to the cumulative class-name rendering time of
// component.
func (r *Recorder) AddRenderTime(ctx context.Context, component string, d time.Duration) {
	if !r.Enabled() {
		return
	}
	ms := durationMS(d)
	r.update(component, func(rec *Record) { rec.MSRenderStylesTotal += ms })
	if r.renderHist != nil {
		r.renderHist.Record(ctx, ms, componentAttr(component))
	}
}

// Snapshot returns a copy of the record for component. Unknown components
// yield a zero record.
func (r *Recorder) Snapshot(component string) Record {
	if r == nil {
		return Record{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[component]; ok {
		return *rec
	}
	return Record{}
}

func (r *Recorder) update(component string, fn func(*Record)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[component]
	if !ok {
		rec = &Record{}
		r.records[component] = rec
	}
	fn(rec)
}

func componentAttr(component string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("component", component))
}

// durationMS converts a duration to fractional milliseconds. Style
// resolution is routinely sub-millisecond, so truncating would lose
// everything.
func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

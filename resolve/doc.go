// Package resolve turns declarative per-component style sets into concrete
// style objects and class names, lazily and at most once per slot.
//
// A Resolver is configured once with performance flags, a class-name
// renderer, and an optional telemetry recorder. Each Resolve call merges the
// applicable style sets, decides cache eligibility, and returns a Resolved
// handle whose per-slot accessors compute on first read. Eligible results are
// written through to caches owned by the theme, so they live exactly as long
// as the theme does.
package resolve

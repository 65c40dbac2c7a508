// Package config holds the immutable configuration snapshot for style
// resolution: performance flags, environment, debug mode, and telemetry
// settings.
//
// Configuration is captured once at startup (defaults, then an optional
// HuJSON file, then environment variables) and threaded explicitly into the
// resolver; nothing in this module reads ambient global state afterwards.
package config
